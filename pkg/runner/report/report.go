// Package report renders the weekly activity report.
package report

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/ilm/pkg/app"
	"tableflip.dev/ilm/pkg/printers"
	"tableflip.dev/ilm/pkg/stats"
)

type Report struct {
	Service *app.Service

	// IncludeToday shifts the seven-day window to end today instead of
	// yesterday.
	IncludeToday bool
}

func (n *Report) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not report, no journal loaded")
	}

	var r stats.WeeklyReport
	if n.IncludeToday {
		r = stats.WeeklyIncludingToday(n.Service.Clock, n.Service.Log)
	} else {
		r = n.Service.Weekly()
	}

	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.Weekly(r)
	return nil
}
