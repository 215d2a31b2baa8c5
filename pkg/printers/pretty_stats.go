package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/ilm/pkg/dates"
	"tableflip.dev/ilm/pkg/stats"
	"tableflip.dev/ilm/pkg/timeutil"
)

// Stats renders the all-time totals, one row per subject/book pair.
func (pp *PrettyPrint) Stats(st stats.Stats) {
	if len(st) == 0 {
		pp.Title("Statistics")
		pp.None()
		return
	}

	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Subject"), bold.Sprint("Book"), bold.Sprint("Pages"), bold.Sprint("Time Spent"), bold.Sprint("Entries"), bold.Sprint("Days"))
	for _, subject := range st.SortedSubjects() {
		for _, book := range st.SortedBooks(subject) {
			b := st[subject][book]
			tbl.AddRow(subject, book, trimFloat(b.Pages), b.TimeSpent(), b.TotalEntries, len(b.EntryDates))
		}
	}
	tbl.RightAlign(2)
	tbl.RightAlign(4)
	tbl.RightAlign(5)

	pp.Title("Statistics")
	_, _ = fmt.Fprintln(color.Output, tbl)
}

// Dates lists the days a subject/book pair was touched.
func (pp *PrettyPrint) Dates(subject, book string, st stats.Stats) {
	b, ok := st[subject][book]
	if !ok || len(b.EntryDates) == 0 {
		pp.Title(subject + " / " + book)
		pp.None()
		return
	}
	pp.TitleWithCount(subject+" / "+book, b.TotalEntries)
	f := color.New(color.Faint)
	for _, d := range b.EntryDates {
		_, _ = f.Fprintf(color.Output, "  %s\n", d)
	}
	pp.NewLine()
}

// Weekly renders a seven-day activity table followed by the summary
// sentence.
func (pp *PrettyPrint) Weekly(r stats.WeeklyReport) {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Day"), bold.Sprint("Date"), bold.Sprint("Entries"), bold.Sprint("Pages"), bold.Sprint("Time Spent"))
	for _, d := range r.Days {
		tbl.AddRow(weekday(d.Date), d.Date, d.Entries, trimFloat(d.Pages), timeutil.FormatMinutes(d.Minutes))
	}
	tbl.AddRow(bold.Sprint("Total"), "", bold.Sprint(r.TotalEntries), bold.Sprint(trimFloat(r.TotalPages)), bold.Sprint(r.TotalTime()))
	tbl.RightAlign(2)
	tbl.RightAlign(3)

	pp.Title("Weekly Report")
	_, _ = fmt.Fprintln(color.Output, tbl)

	s := color.New(color.Italic)
	_, _ = s.Fprintf(color.Output, "\n%s\n", r.Summary())
}

// Subjects renders the autocompletion cache.
func (pp *PrettyPrint) Subjects(subjects map[string][]string, names []string) {
	pp.Title("Subjects")
	if len(names) == 0 {
		pp.None()
		return
	}
	n := color.New(color.FgHiCyan)
	f := color.New(color.Faint)
	for _, name := range names {
		_, _ = n.Fprintln(color.Output, name)
		for _, book := range subjects[name] {
			_, _ = f.Fprintf(color.Output, "  %s\n", book)
		}
	}
	pp.NewLine()
}

// trimFloat drops a trailing ".0" so whole-number page counts read as
// integers.
func trimFloat(v float64) string {
	s := fmt.Sprintf("%.1f", v)
	return strings.TrimSuffix(s, ".0")
}

func weekday(date string) string {
	t, err := dates.ParseDay(date)
	if err != nil {
		return ""
	}
	return t.Weekday().String()
}
