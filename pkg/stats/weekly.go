package stats

import (
	"fmt"

	"tableflip.dev/ilm/pkg/dates"
	"tableflip.dev/ilm/pkg/entry"
	"tableflip.dev/ilm/pkg/journal"
	"tableflip.dev/ilm/pkg/timeutil"
)

// DayTotals is one day's aggregate inside the weekly window.
type DayTotals struct {
	Date    string
	Entries int
	Minutes int
	Pages   float64
}

// WeeklyReport covers the seven days ending yesterday, oldest first. A day
// absent from the log contributes zeros. The report replays the log each
// time; the window is small enough that nothing is maintained between
// calls.
type WeeklyReport struct {
	Days         []DayTotals
	TotalEntries int
	TotalMinutes int
	TotalPages   float64
}

// Weekly computes the report for the last seven days, excluding today.
func Weekly(c dates.Clock, log journal.Log) WeeklyReport {
	return reportFor(dates.LastSevenDays(c), log)
}

// WeeklyIncludingToday shifts the window to end today instead.
func WeeklyIncludingToday(c dates.Clock, log journal.Log) WeeklyReport {
	return reportFor(dates.WindowIncludingToday(c), log)
}

func reportFor(window []string, log journal.Log) WeeklyReport {
	r := WeeklyReport{Days: make([]DayTotals, 0, len(window))}
	for _, date := range window {
		totals := DayTotals{Date: date}
		if day, ok := log.Day(date); ok {
			totals.Entries, totals.Minutes, totals.Pages = DayAggregate(day)
		}
		r.Days = append(r.Days, totals)
		r.TotalEntries += totals.Entries
		r.TotalMinutes += totals.Minutes
		r.TotalPages += totals.Pages
	}
	return r
}

// DayAggregate sums one day's record across all subjects, books and
// sessions.
func DayAggregate(day journal.Day) (entries, minutes int, pages float64) {
	for _, books := range day {
		for _, sessions := range books {
			entries += len(sessions)
			for _, rec := range sessions {
				minutes += entry.RecordMinutes(rec)
				pages += entry.RecordPages(rec)
			}
		}
	}
	return entries, minutes, pages
}

// TotalTime renders the window's minute total in the journal's wire form.
func (r WeeklyReport) TotalTime() string {
	return timeutil.FormatMinutes(r.TotalMinutes)
}

// Summary returns the report's one-line message. The wording has exactly
// two variants, chosen by whether any activity was recorded.
func (r WeeklyReport) Summary() string {
	if r.TotalMinutes > 0 {
		return fmt.Sprintf(
			"You spent a total of %s on learning activities during the previous week (excluding today).",
			r.TotalTime(),
		)
	}
	return "No learning activity was recorded during the previous week (excluding today)."
}
