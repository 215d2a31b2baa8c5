package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/ilm/pkg/runner/backup"
)

func addBackup(topLevel *cobra.Command) {
	var dir string

	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Archive the journal into a zip file",
		Example: `
ilm backup
ilm backup --dir ~/backups
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadService()
			if err != nil {
				return err
			}
			r := backup.Backup{Service: s, Dir: dir}
			return output.HandleError(r.Do(context.Background()))
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "Directory to write the archive into.")
	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}

func addRestore(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "restore ARCHIVE",
		Short: "Replace the journal with a backup archive",
		Example: `
ilm restore ilm-backup-20250105-101530.zip
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires the archive path")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadService()
			if err != nil {
				return err
			}
			r := backup.Restore{Service: s, Archive: args[0]}
			return output.HandleError(r.Do(context.Background()))
		},
	}

	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
