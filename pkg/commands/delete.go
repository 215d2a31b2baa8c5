package commands

import (
	"context"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/ilm/pkg/commands/options"
	"tableflip.dev/ilm/pkg/runner/remove"
)

func addDelete(topLevel *cobra.Command) {
	lo := &options.LocatorOptions{}
	var all bool
	var password string

	cmd := &cobra.Command{
		Use:     "delete",
		Aliases: []string{"del", "rm"},
		Short:   "Delete a session, a day, or everything",
		Example: `
ilm delete -s Physics -b "HC Verma 1" --session "Entry 08:15:00 PM"
ilm delete --date 05-Jan-2025
ilm delete --all --password s3cret
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadService()
			if err != nil {
				return err
			}
			r := remove.Remove{
				Service:  s,
				Date:     lo.Date,
				Subject:  lo.Subject,
				Book:     lo.Book,
				Session:  lo.Session,
				All:      all,
				Password: password,
			}
			return output.HandleError(r.Do(context.Background()))
		},
	}

	options.AddLocatorArgs(cmd, lo)
	cmd.Flags().BoolVar(&all, "all", false, "Delete the whole journal. Requires the password.")
	cmd.Flags().StringVar(&password, "password", "", "Journal password, for --all.")

	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
