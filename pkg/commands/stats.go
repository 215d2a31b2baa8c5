package commands

import (
	"context"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/ilm/pkg/runner/statsview"
)

func addStats(topLevel *cobra.Command) {
	var subject, book string

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show all-time totals per subject and book",
		Example: `
ilm stats
ilm stats --subject Physics --book "HC Verma 1"
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadService()
			if err != nil {
				return err
			}
			r := statsview.Stats{
				Service: s,
				Subject: subject,
				Book:    book,
			}
			return output.HandleError(r.Do(context.Background()))
		},
	}

	cmd.Flags().StringVarP(&subject, "subject", "s", "", "Narrow to one subject's entry dates.")
	cmd.Flags().StringVarP(&book, "book", "b", "", "Book to narrow to, with --subject.")
	_ = cmd.RegisterFlagCompletionFunc("subject", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return subjectCompletions(toComplete)
	})

	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
