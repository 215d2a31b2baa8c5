// Package add logs a new learning session from CLI flag values.
package add

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"tableflip.dev/ilm/pkg/app"
	"tableflip.dev/ilm/pkg/entry"
	"tableflip.dev/ilm/pkg/printers"
)

// Add builds one entry from collected flag values, folds it into the
// journal and saves. Range endpoints arrive as raw strings so the user can
// type either "5" or "5.5"; validation happens here, before anything is
// logged.
type Add struct {
	Service *app.Service

	Kind    entry.Kind
	Subject string
	Book    string

	PageStart string
	PageEnd   string

	Surah     string
	AyahStart string
	AyahEnd   string
	RukuStart string
	RukuEnd   string

	Unit    string
	Chapter string

	Hours   int
	Minutes int

	Notes    string
	Mode     string
	Revision bool
}

var quotes = []string{
	"A day without Qur'an is a day Wasted.",
	"Even a small step with the Qur'an brightens the day.",
	"Remember, a day without Qur'an feels incomplete.",
}

const motivation = "READ! even if just ONE LETTER. Don't waste this day."

func (n *Add) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not add, no journal loaded")
	}
	if n.Book == "" {
		return errors.New("can not add, no book given")
	}

	e, err := n.build()
	if err != nil {
		return err
	}

	date, label := n.Service.Add(e)
	if err := n.Service.Save(); err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.Added(date, e.Subject, e.Book, label)
	if n.Kind != entry.Other {
		pp.Quote(quotes[rand.Intn(len(quotes))] + "\n\n" + motivation)
	}
	return nil
}

func (n *Add) build() (*entry.Entry, error) {
	e := entry.New(n.Kind, n.Subject, n.Book)

	if err := n.setRange(e, entry.KeyPage, n.PageStart, n.PageEnd); err != nil {
		return nil, err
	}

	switch n.Kind {
	case entry.Tafseer:
		if n.Surah != "" {
			s, err := entry.ParseNumber(n.Surah)
			if err != nil {
				return nil, fmt.Errorf("surah: %w", err)
			}
			if s.Float || s.Value < 1 || s.Value > 114 {
				return nil, fmt.Errorf("surah must be a whole number from 1 to 114, got %q", n.Surah)
			}
		}
		if err := n.setRange(e, entry.KeySurah, n.Surah, ""); err != nil {
			return nil, err
		}
		if err := n.setRange(e, entry.KeyAyah, n.AyahStart, n.AyahEnd); err != nil {
			return nil, err
		}
		fallthrough
	case entry.Tilawat:
		if err := n.setRange(e, entry.KeyRuku, n.RukuStart, n.RukuEnd); err != nil {
			return nil, err
		}
	case entry.Other:
		if err := n.setRange(e, entry.KeyUnit, n.Unit, ""); err != nil {
			return nil, err
		}
		if err := e.SetText(entry.KeyChapter, n.Chapter); err != nil {
			return nil, err
		}
	}

	e.SetTimeSpent(n.Hours*60 + n.Minutes)
	if err := e.SetText(entry.KeyNotes, n.Notes); err != nil {
		return nil, err
	}
	if n.Mode != "" {
		if err := e.SetText(entry.KeyReadingMode, n.Mode); err != nil {
			return nil, err
		}
	}
	if n.Revision {
		if err := e.SetText(entry.KeyRevision, "Yes"); err != nil {
			return nil, err
		}
	}
	return e, nil
}

// setRange parses two endpoint strings and applies them as one range
// field. Both endpoints empty leaves the entry's default in place.
func (n *Add) setRange(e *entry.Entry, field, start, end string) error {
	if start == "" && end == "" {
		return nil
	}
	s, err := entry.ParseNumber(start)
	if err != nil {
		return fmt.Errorf("%s start: %w", field, err)
	}
	t, err := entry.ParseNumber(end)
	if err != nil {
		return fmt.Errorf("%s end: %w", field, err)
	}
	label, total := entry.RangeLabel(s, t)
	return e.SetRange(field, label, total)
}
