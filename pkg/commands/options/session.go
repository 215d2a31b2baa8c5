// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/spf13/cobra"
)

// CommonOptions carries the fields every logged session shares.
type CommonOptions struct {
	PageStart string
	PageEnd   string
	Hours     int
	Minutes   int
	Notes     string
	Mode      string
	Revision  bool
}

func AddCommonArgs(cmd *cobra.Command, o *CommonOptions) {
	cmd.Flags().StringVar(&o.PageStart, "page-start", "", "First page covered, e.g. 12 or 12.5.")
	cmd.Flags().StringVar(&o.PageEnd, "page-end", "", "Last page covered.")
	cmd.Flags().IntVar(&o.Hours, "hours", 0, "Hours spent.")
	cmd.Flags().IntVarP(&o.Minutes, "minutes", "m", 0, "Minutes spent.")
	cmd.Flags().StringVarP(&o.Notes, "notes", "n", "", "Session notes.")
	cmd.Flags().StringVar(&o.Mode, "mode", "", `Reading mode, "Sequential" or "Random".`)
	cmd.Flags().BoolVar(&o.Revision, "revision", false, "Mark the session as revision.")
}

// QuranOptions selects the Para and its Ruku range.
type QuranOptions struct {
	Para      int
	RukuStart string
	RukuEnd   string
}

func AddQuranArgs(cmd *cobra.Command, o *QuranOptions) {
	cmd.Flags().IntVarP(&o.Para, "para", "p", 0, "Para number, 1 through 30.")
	cmd.Flags().StringVar(&o.RukuStart, "ruku-start", "", "First Ruku of the Para covered.")
	cmd.Flags().StringVar(&o.RukuEnd, "ruku-end", "", "Last Ruku covered.")
}

// TafseerOptions adds the Surah and Ayah coordinates.
type TafseerOptions struct {
	Surah     string
	AyahStart string
	AyahEnd   string
}

func AddTafseerArgs(cmd *cobra.Command, o *TafseerOptions) {
	cmd.Flags().StringVar(&o.Surah, "surah", "", "Surah number, 1 through 114.")
	cmd.Flags().StringVar(&o.AyahStart, "ayah-start", "", "First Ayah covered.")
	cmd.Flags().StringVar(&o.AyahEnd, "ayah-end", "", "Last Ayah covered.")
}

// SubjectOptions adds the free-form subject extras.
type SubjectOptions struct {
	Unit    string
	Chapter string
}

func AddSubjectArgs(cmd *cobra.Command, o *SubjectOptions) {
	cmd.Flags().StringVar(&o.Unit, "unit", "", "Unit number worked through.")
	cmd.Flags().StringVar(&o.Chapter, "chapter", "", "Chapter name or number.")
}
