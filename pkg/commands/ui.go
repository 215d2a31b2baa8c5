package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/ilm/pkg/tui"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "Browse the journal in a text interface",
		Example: `
ilm ui
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadService()
			if err != nil {
				return err
			}
			return tui.Run(s)
		},
	}

	topLevel.AddCommand(cmd)
}
