package commands

import (
	"context"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/ilm/pkg/runner/report"
)

func addReport(topLevel *cobra.Command) {
	var includeToday bool

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Show the weekly activity report",
		Example: `
ilm report
ilm report --include-today
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadService()
			if err != nil {
				return err
			}
			r := report.Report{
				Service:      s,
				IncludeToday: includeToday,
			}
			return output.HandleError(r.Do(context.Background()))
		},
	}

	cmd.Flags().BoolVar(&includeToday, "include-today", false,
		"End the seven-day window today instead of yesterday.")
	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
