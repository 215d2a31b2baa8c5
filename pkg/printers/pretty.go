package printers

import (
	"fmt"

	"github.com/fatih/color"

	"tableflip.dev/ilm/pkg/entry"
	"tableflip.dev/ilm/pkg/journal"
)

type PrettyPrint struct{}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(color.Output, "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(color.Output, title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Fprint(color.Output, title)
	_, _ = c.Fprintf(color.Output, " - %d", count)

	switch count {
	case 1:
		_, _ = c.Fprintln(color.Output, " entry")
	default:
		_, _ = c.Fprintln(color.Output, " entries")
	}
}

// Day renders one journal day: subject and book headings with each
// session's fields as bullets, in logged-clock order.
func (pp *PrettyPrint) Day(date string, day journal.Day) {
	pp.Title(date)
	if len(day) == 0 {
		pp.None()
		return
	}

	subject := color.New(color.FgHiCyan, color.Bold)
	book := color.New(color.FgHiYellow)
	session := color.New(color.Italic)

	for _, s := range day.Subjects() {
		pp.NewLine()
		_, _ = subject.Fprintln(color.Output, s)
		for _, b := range day.BookTitles(s) {
			_, _ = book.Fprintf(color.Output, "  %s\n", b)
			sessions := day[s][b]
			for _, label := range sessions.Labels() {
				_, _ = session.Fprintf(color.Output, "    %s\n", label)
				e := entry.FromRecord(s, b, sessions[label])
				pp.Fields(e)
			}
		}
	}
	pp.NewLine()
}

// Fields prints one entry's records as indented bullets.
func (pp *PrettyPrint) Fields(e *entry.Entry) {
	k := color.New(color.Faint)
	v := color.New()
	for _, f := range e.Fields() {
		_, _ = k.Fprintf(color.Output, "      %s: ", f.Key)
		_, _ = v.Fprintf(color.Output, "%v\n", f.Value)
	}
}

// Added confirms a freshly logged session.
func (pp *PrettyPrint) Added(date, subject, book, label string) {
	g := color.New(color.FgGreen)
	f := color.New(color.Faint)
	_, _ = g.Fprintf(color.Output, "Logged %s / %s", subject, book)
	_, _ = f.Fprintf(color.Output, " (%s, %s)\n", date, label)
}

// Quote prints a short encouragement after Qur'an sessions.
func (pp *PrettyPrint) Quote(text string) {
	q := color.New(color.FgHiGreen, color.Italic)
	_, _ = q.Fprintf(color.Output, "\n%s\n", text)
}

func (pp *PrettyPrint) None() {
	f := color.New(color.Faint, color.Italic)
	_, _ = f.Fprint(color.Output, " none\n\n")
}
