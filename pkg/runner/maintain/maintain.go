// Package maintain holds the journal's housekeeping verbs.
package maintain

import (
	"context"
	"errors"

	"github.com/fatih/color"

	"tableflip.dev/ilm/pkg/app"
)

// Rebuild recomputes both derived caches from the entry log and saves the
// result. Useful after hand-editing the JSON document.
type Rebuild struct {
	Service *app.Service
}

func (n *Rebuild) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not rebuild, no journal loaded")
	}
	n.Service.Rebuild()
	if err := n.Service.Save(); err != nil {
		return err
	}
	confirm("Statistics rebuilt from the entry log.")
	return nil
}

// Save forces a write of the current in-memory state.
type Save struct {
	Service *app.Service
}

func (n *Save) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not save, no journal loaded")
	}
	if err := n.Service.Save(); err != nil {
		return err
	}
	confirm("Journal saved.")
	return nil
}

// Password stores or replaces the delete-all password.
type Password struct {
	Service *app.Service
	New     string
	Confirm string
}

func (n *Password) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not set password, no journal loaded")
	}
	if err := n.Service.Gate.Set(n.New, n.Confirm); err != nil {
		return err
	}
	confirm("Password set.")
	return nil
}

func confirm(msg string) {
	g := color.New(color.FgGreen)
	_, _ = g.Fprintln(color.Output, msg)
}
