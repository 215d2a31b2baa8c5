package tui

import (
	"fmt"
	"strings"

	"tableflip.dev/ilm/pkg/entry"
	"tableflip.dev/ilm/pkg/timeutil"
)

// renderDays shows the day picker on the left column of the content and
// the selected day's sessions below it.
func (m *Model) renderDays() string {
	if len(m.dates) == 0 {
		return "No entries logged yet."
	}

	var b strings.Builder
	for i, date := range m.dates {
		cursor := "  "
		style := mutedStyle
		if i == m.dateIdx {
			cursor = "> "
			style = selectedStyle
		}
		b.WriteString(cursor + style.Render(date) + "\n")
	}
	b.WriteString("\n")

	date := m.dates[m.dateIdx]
	day, ok := m.svc.Day(date)
	if !ok {
		return b.String()
	}

	b.WriteString(dateStyle.Render(date) + "\n")
	for _, subject := range day.Subjects() {
		b.WriteString("\n" + subjectStyle.Render(subject) + "\n")
		for _, book := range day.BookTitles(subject) {
			b.WriteString("  " + bookStyle.Render(book) + "\n")
			sessions := day[subject][book]
			for _, label := range sessions.Labels() {
				b.WriteString("    " + sessionStyle.Render(label) + "\n")
				e := entry.FromRecord(subject, book, sessions[label])
				for _, f := range e.Fields() {
					b.WriteString(fmt.Sprintf("      %s %v\n", fieldKeyStyle.Render(f.Key+":"), f.Value))
				}
			}
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m *Model) renderStats() string {
	st := m.svc.Engine.Stats
	if len(st) == 0 {
		return "No statistics yet."
	}
	var b strings.Builder
	for _, subject := range st.SortedSubjects() {
		b.WriteString(subjectStyle.Render(subject) + "\n")
		for _, book := range st.SortedBooks(subject) {
			v := st[subject][book]
			b.WriteString(fmt.Sprintf("  %s\n", bookStyle.Render(book)))
			b.WriteString(fmt.Sprintf("    %s %v\n", fieldKeyStyle.Render("Pages:"), v.Pages))
			b.WriteString(fmt.Sprintf("    %s %s\n", fieldKeyStyle.Render("Time Spent:"), v.TimeSpent()))
			b.WriteString(fmt.Sprintf("    %s %d over %d day(s)\n", fieldKeyStyle.Render("Entries:"), v.TotalEntries, len(v.EntryDates)))
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m *Model) renderWeekly() string {
	r := m.svc.Weekly()
	var b strings.Builder
	for _, d := range r.Days {
		b.WriteString(fmt.Sprintf("%s  %s\n", selectedStyle.Render(d.Date),
			mutedStyle.Render(fmt.Sprintf("%d entries, %v pages, %s", d.Entries, d.Pages, timeutil.FormatMinutes(d.Minutes)))))
	}
	b.WriteString("\n" + summaryStyle.Render(r.Summary()) + "\n")
	return strings.TrimRight(b.String(), "\n")
}
