package options

import (
	"github.com/spf13/cobra"
)

// LocatorOptions addresses one stored session.
type LocatorOptions struct {
	Date    string
	Subject string
	Book    string
	Session string
}

func AddLocatorArgs(cmd *cobra.Command, o *LocatorOptions) {
	cmd.Flags().StringVarP(&o.Date, "date", "d", "today",
		`Day to address, as DD-Mon-YYYY, e.g. "05-Jan-2025".`)
	cmd.Flags().StringVarP(&o.Subject, "subject", "s", "", "Subject the session was logged under.")
	cmd.Flags().StringVarP(&o.Book, "book", "b", "", `Book title, e.g. "Para no. 2".`)
	cmd.Flags().StringVar(&o.Session, "session", "", `Session label, e.g. "Entry 08:15:00 PM".`)
}

// EditOptions carries the replacement value for one field.
type EditOptions struct {
	Field   string
	Start   string
	End     string
	Hours   int
	Minutes int
	Value   string
}

func AddEditArgs(cmd *cobra.Command, o *EditOptions) {
	cmd.Flags().StringVarP(&o.Field, "field", "f", "", `Field to rewrite, e.g. "Page" or "Notes".`)
	cmd.Flags().StringVar(&o.Start, "start", "", "New range start, for range fields.")
	cmd.Flags().StringVar(&o.End, "end", "", "New range end.")
	cmd.Flags().IntVar(&o.Hours, "hours", 0, `New hours, for "Time Spent".`)
	cmd.Flags().IntVarP(&o.Minutes, "minutes", "m", 0, `New minutes, for "Time Spent".`)
	cmd.Flags().StringVar(&o.Value, "value", "", "New value, for text fields.")
}
