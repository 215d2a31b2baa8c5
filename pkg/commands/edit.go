package commands

import (
	"context"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/ilm/pkg/commands/options"
	"tableflip.dev/ilm/pkg/runner/edit"
)

func addEdit(topLevel *cobra.Command) {
	lo := &options.LocatorOptions{}
	eo := &options.EditOptions{}

	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Rewrite one field of a stored session",
		Example: `
ilm edit -s Physics -b "HC Verma 1" --session "Entry 08:15:00 PM" -f Page --start 10 --end 24
ilm edit -s "Al-Qur'an (Tilawat)" -b "Para no. 2" --session "Entry 09:00:00 AM" -f Notes --value "revised"
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadService()
			if err != nil {
				return err
			}
			r := edit.Edit{
				Service: s,
				Date:    lo.Date,
				Subject: lo.Subject,
				Book:    lo.Book,
				Session: lo.Session,
				Field:   eo.Field,
				Start:   eo.Start,
				End:     eo.End,
				Hours:   eo.Hours,
				Minutes: eo.Minutes,
				Value:   eo.Value,
			}
			return output.HandleError(r.Do(context.Background()))
		},
	}

	options.AddLocatorArgs(cmd, lo)
	options.AddEditArgs(cmd, eo)
	_ = cmd.RegisterFlagCompletionFunc("subject", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return subjectCompletions(toComplete)
	})

	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
