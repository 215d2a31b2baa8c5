// Package backup archives and restores the persisted journal.
package backup

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"

	"tableflip.dev/ilm/pkg/app"
)

// Backup writes a zip archive of the journal document into Dir.
type Backup struct {
	Service *app.Service
	Dir     string
}

func (n *Backup) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not back up, no journal loaded")
	}
	// Flush pending state first so the archive matches memory.
	if n.Service.Dirty() {
		if err := n.Service.Save(); err != nil {
			return err
		}
	}
	path, err := n.Service.Backup(n.Dir)
	if err != nil {
		return err
	}
	g := color.New(color.FgGreen)
	_, _ = g.Fprintf(color.Output, "Backup written to %s\n", path)
	return nil
}

// Restore replaces the journal with the contents of a backup archive.
type Restore struct {
	Service *app.Service
	Archive string
}

func (n *Restore) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not restore, no journal loaded")
	}
	if n.Archive == "" {
		return errors.New("can not restore, no archive given")
	}
	if err := n.Service.Restore(n.Archive); err != nil {
		return err
	}
	if err := n.Service.Save(); err != nil {
		return err
	}
	g := color.New(color.FgGreen)
	_, _ = g.Fprintln(color.Output, fmt.Sprintf("Restored journal from %s.", n.Archive))
	return nil
}
