// Package remove deletes sessions, days, or the whole journal.
package remove

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"

	"tableflip.dev/ilm/pkg/app"
)

// Remove deletes at the finest scope its fields select: a single session
// when Session is set, a whole day when only Date is set, and everything
// when All is set. Deleting everything requires the journal password.
type Remove struct {
	Service *app.Service

	Date    string
	Subject string
	Book    string
	Session string

	All      bool
	Password string
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not delete, no journal loaded")
	}

	if n.All {
		if err := n.Service.DeleteAll(n.Password); err != nil {
			return err
		}
		if err := n.Service.Save(); err != nil {
			return err
		}
		confirm("Deleted every entry.")
		return nil
	}

	date := n.Date
	if date == "" || date == "today" {
		date = n.Service.Today()
	}

	if n.Session != "" {
		loc := app.Locator{Date: date, Subject: n.Subject, Book: n.Book, Session: n.Session}
		if !n.Service.DeleteEntry(loc) {
			return fmt.Errorf("no session %q for %s / %s on %s", n.Session, n.Subject, n.Book, date)
		}
		if err := n.Service.Save(); err != nil {
			return err
		}
		confirm(fmt.Sprintf("Deleted %s from %s.", n.Session, date))
		return nil
	}

	if !n.Service.DeleteDay(date) {
		return fmt.Errorf("no entries recorded for %s", date)
	}
	if err := n.Service.Save(); err != nil {
		return err
	}
	confirm(fmt.Sprintf("Deleted all entries for %s.", date))
	return nil
}

func confirm(msg string) {
	g := color.New(color.FgGreen)
	_, _ = g.Fprintln(color.Output, msg)
}
