package commands

import (
	"context"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/ilm/pkg/runner/get"
)

func addGet(topLevel *cobra.Command) {
	var subjects bool
	date := "today"

	cmd := &cobra.Command{
		Use:   "get [date]",
		Short: "Show one day of the journal",
		Example: `
ilm get
ilm get 05-Jan-2025
ilm get all
ilm get --subjects
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				date = args[0]
			}
			return cobra.MaximumNArgs(1)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadService()
			if err != nil {
				return err
			}
			r := get.Get{
				Service:  s,
				Date:     date,
				Subjects: subjects,
			}
			return output.HandleError(r.Do(context.Background()))
		},
	}

	cmd.Flags().BoolVar(&subjects, "subjects", false, "List known subjects and their books instead.")
	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
