package commands

import (
	"context"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/ilm/pkg/runner/maintain"
)

func addSave(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "save",
		Short: "Write the journal and its Markdown mirror to disk",
		Example: `
ilm save
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadService()
			if err != nil {
				return err
			}
			r := maintain.Save{Service: s}
			return output.HandleError(r.Do(context.Background()))
		},
	}

	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}

func addRebuild(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "rebuild",
		Short: "Recompute statistics from the entry log",
		Example: `
ilm rebuild
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadService()
			if err != nil {
				return err
			}
			r := maintain.Rebuild{Service: s}
			return output.HandleError(r.Do(context.Background()))
		},
	}

	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}

func addPassword(topLevel *cobra.Command) {
	var newPassword, confirm string

	cmd := &cobra.Command{
		Use:   "password",
		Short: "Set the password guarding delete --all",
		Example: `
ilm password --new s3cret1 --confirm s3cret1
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadService()
			if err != nil {
				return err
			}
			r := maintain.Password{
				Service: s,
				New:     newPassword,
				Confirm: confirm,
			}
			return output.HandleError(r.Do(context.Background()))
		},
	}

	cmd.Flags().StringVar(&newPassword, "new", "", "New password, at least 6 characters.")
	cmd.Flags().StringVar(&confirm, "confirm", "", "The same password again.")

	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
