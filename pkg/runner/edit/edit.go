// Package edit rewrites one field of a stored session.
package edit

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/ilm/pkg/app"
	"tableflip.dev/ilm/pkg/entry"
	"tableflip.dev/ilm/pkg/printers"
)

type Edit struct {
	Service *app.Service

	Date    string
	Subject string
	Book    string
	Session string

	// Field names the record key to rewrite, e.g. "Page" or "Notes".
	Field string

	// Start and End feed range fields.
	Start string
	End   string

	// Hours and Minutes feed the Time Spent field.
	Hours   int
	Minutes int

	// Value feeds text fields.
	Value string
}

func (n *Edit) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not edit, no journal loaded")
	}

	loc := app.Locator{Date: n.Date, Subject: n.Subject, Book: n.Book, Session: n.Session}
	if loc.Date == "" || loc.Date == "today" {
		loc.Date = n.Service.Today()
	}

	if err := n.apply(loc); err != nil {
		return err
	}
	if err := n.Service.Save(); err != nil {
		return err
	}

	e, ok := n.Service.Entry(loc)
	if !ok {
		return fmt.Errorf("session %q vanished after edit", loc.Session)
	}
	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.Title(loc.Subject + " / " + loc.Book)
	pp.Fields(e)
	pp.NewLine()
	return nil
}

func (n *Edit) apply(loc app.Locator) error {
	switch n.Field {
	case entry.KeyPage, entry.KeyAyah, entry.KeyRuku, entry.KeySurah, entry.KeyUnit:
		start, err := entry.ParseNumber(n.Start)
		if err != nil {
			return fmt.Errorf("%s start: %w", n.Field, err)
		}
		end, err := entry.ParseNumber(n.End)
		if err != nil {
			return fmt.Errorf("%s end: %w", n.Field, err)
		}
		return n.Service.EditRange(loc, n.Field, start, end)
	case entry.KeyTimeSpent:
		return n.Service.EditTime(loc, n.Hours*60+n.Minutes)
	case entry.KeyNotes, entry.KeyReadingMode, entry.KeyRevision, entry.KeyChapter:
		return n.Service.EditText(loc, n.Field, n.Value)
	case "":
		return errors.New("no field given")
	default:
		return fmt.Errorf("field %q is not editable", n.Field)
	}
}
