// Package commands wires the ilm CLI surface.
package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
)

var (
	output = &base.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "ilm",
		Short: base.Wrap80("A personal learning journal for Qur'an study and self-paced subjects."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addAdd(topLevel)
	addGet(topLevel)
	addStats(topLevel)
	addReport(topLevel)
	addEdit(topLevel)
	addDelete(topLevel)
	addSave(topLevel)
	addRebuild(topLevel)
	addBackup(topLevel)
	addRestore(topLevel)
	addPassword(topLevel)
	addUI(topLevel)
	addVersion(topLevel)
}
