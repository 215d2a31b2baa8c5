// Package get renders one day of the journal.
package get

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/ilm/pkg/app"
	"tableflip.dev/ilm/pkg/dates"
	"tableflip.dev/ilm/pkg/journal"
	"tableflip.dev/ilm/pkg/printers"
)

type Get struct {
	Service *app.Service

	// Date selects the day to show, as a DD-Mon-YYYY key. "today" and ""
	// resolve to the current day; "all" walks the whole log.
	Date string

	// Subjects lists the autocompletion cache instead of a day.
	Subjects bool
}

func (n *Get) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not get, no journal loaded")
	}
	pp := printers.PrettyPrint{}
	fmt.Println("")

	if n.Subjects {
		pp.Subjects(n.Service.Engine.Subjects, n.Service.SubjectNames())
		return nil
	}

	if n.Date == "all" {
		if len(n.Service.Log) == 0 {
			pp.Title("Entry Log")
			pp.None()
			return nil
		}
		for _, date := range n.Service.Log.Dates() {
			day, _ := n.Service.Day(date)
			pp.Day(date, day)
		}
		return nil
	}

	date := n.Date
	if date == "" || date == "today" {
		date = n.Service.Today()
	} else if _, err := dates.ParseDay(date); err != nil {
		return fmt.Errorf("bad date %q, want DD-Mon-YYYY: %w", n.Date, err)
	}

	day, ok := n.Service.Day(date)
	if !ok {
		day = journal.Day{}
	}
	pp.Day(date, day)
	return nil
}
