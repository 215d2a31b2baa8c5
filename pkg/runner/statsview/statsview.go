// Package statsview renders the all-time statistics cache.
package statsview

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/ilm/pkg/app"
	"tableflip.dev/ilm/pkg/printers"
)

type Stats struct {
	Service *app.Service

	// Subject and Book narrow the output to one pair's entry dates.
	Subject string
	Book    string
}

func (n *Stats) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not show statistics, no journal loaded")
	}
	pp := printers.PrettyPrint{}
	fmt.Println("")

	if n.Subject != "" || n.Book != "" {
		if n.Subject == "" || n.Book == "" {
			return errors.New("subject and book must be given together")
		}
		pp.Dates(n.Subject, n.Book, n.Service.Engine.Stats)
		return nil
	}

	pp.Stats(n.Service.Engine.Stats)
	return nil
}
