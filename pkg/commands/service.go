package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/ilm/pkg/app"
	"tableflip.dev/ilm/pkg/store"
)

// loadService opens the configured journal. Each command invocation loads
// fresh; the process is short-lived.
func loadService() (*app.Service, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}
	p, err := store.Load(cfg)
	if err != nil {
		return nil, err
	}
	return app.New(p, nil)
}

func subjectCompletions(toComplete string) ([]string, cobra.ShellCompDirective) {
	s, err := loadService()
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return s.SubjectNames(), cobra.ShellCompDirectiveNoFileComp
}
