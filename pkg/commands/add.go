package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/ilm/pkg/commands/options"
	"tableflip.dev/ilm/pkg/entry"
	"tableflip.dev/ilm/pkg/runner/add"
)

func addAdd(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Log a learning session",
		Example: `
ilm add tilawat --para 2 --ruku-start 1 --ruku-end 4 -m 25
ilm add other Physics "HC Verma 1" --page-start 10 --page-end 24 -m 45
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addTilawat(cmd)
	addTafseer(cmd)
	addOther(cmd)

	topLevel.AddCommand(cmd)
}

func addTilawat(topLevel *cobra.Command) {
	qo := &options.QuranOptions{}
	co := &options.CommonOptions{}

	cmd := &cobra.Command{
		Use:   "tilawat",
		Short: "Log a Qur'an recitation session",
		Example: `
ilm add tilawat --para 2 --ruku-start 1 --ruku-end 4 --hours 1 -m 10
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			book, err := paraTitle(qo.Para)
			if err != nil {
				return output.HandleError(err)
			}
			s, err := loadService()
			if err != nil {
				return err
			}
			r := add.Add{
				Service:   s,
				Kind:      entry.Tilawat,
				Subject:   entry.SubjectTilawat,
				Book:      book,
				RukuStart: qo.RukuStart,
				RukuEnd:   qo.RukuEnd,
			}
			fillCommon(&r, co)
			return output.HandleError(r.Do(context.Background()))
		},
	}

	options.AddQuranArgs(cmd, qo)
	options.AddCommonArgs(cmd, co)
	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}

func addTafseer(topLevel *cobra.Command) {
	qo := &options.QuranOptions{}
	to := &options.TafseerOptions{}
	co := &options.CommonOptions{}

	cmd := &cobra.Command{
		Use:   "tafseer",
		Short: "Log a Qur'an study session",
		Example: `
ilm add tafseer --para 1 --surah 2 --ayah-start 30 --ayah-end 39 -m 40
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			book, err := paraTitle(qo.Para)
			if err != nil {
				return output.HandleError(err)
			}
			s, err := loadService()
			if err != nil {
				return err
			}
			r := add.Add{
				Service:   s,
				Kind:      entry.Tafseer,
				Subject:   entry.SubjectTafseer,
				Book:      book,
				Surah:     to.Surah,
				AyahStart: to.AyahStart,
				AyahEnd:   to.AyahEnd,
				RukuStart: qo.RukuStart,
				RukuEnd:   qo.RukuEnd,
			}
			fillCommon(&r, co)
			return output.HandleError(r.Do(context.Background()))
		},
	}

	options.AddQuranArgs(cmd, qo)
	options.AddTafseerArgs(cmd, to)
	options.AddCommonArgs(cmd, co)
	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}

func addOther(topLevel *cobra.Command) {
	so := &options.SubjectOptions{}
	co := &options.CommonOptions{}

	var subject, book string

	cmd := &cobra.Command{
		Use:   "other SUBJECT BOOK",
		Short: "Log a session for any other subject",
		Example: `
ilm add other Physics "HC Verma 1" --unit 3 --chapter Kinematics -m 45
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 2 {
				return errors.New("requires a subject and a book")
			}
			subject = args[0]
			book = strings.Join(args[1:], " ")
			if entry.BuiltinSubject(subject) {
				return fmt.Errorf("%q is logged with its own subcommand", subject)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadService()
			if err != nil {
				return err
			}
			r := add.Add{
				Service: s,
				Kind:    entry.Other,
				Subject: subject,
				Book:    book,
				Unit:    so.Unit,
				Chapter: so.Chapter,
			}
			fillCommon(&r, co)
			return output.HandleError(r.Do(context.Background()))
		},
	}

	options.AddSubjectArgs(cmd, so)
	options.AddCommonArgs(cmd, co)
	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}

func fillCommon(r *add.Add, co *options.CommonOptions) {
	r.PageStart = co.PageStart
	r.PageEnd = co.PageEnd
	r.Hours = co.Hours
	r.Minutes = co.Minutes
	r.Notes = co.Notes
	r.Mode = co.Mode
	r.Revision = co.Revision
}

// paraTitle renders the Para flag as its stored book title. Zero means the
// flag was not given, which Add rejects as a missing book.
func paraTitle(n int) (string, error) {
	if n == 0 {
		return "", nil
	}
	if n < 1 || n > 30 {
		return "", fmt.Errorf("para must be 1 through 30, got %d", n)
	}
	return entry.ParaBook(n), nil
}
