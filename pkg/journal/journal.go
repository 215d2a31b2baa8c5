// Package journal holds the entry log: every session ever recorded, keyed
// by date, then subject, then book, then session label. The log is the
// ground truth; all statistics are derived from it.
package journal

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"tableflip.dev/ilm/pkg/dates"
	"tableflip.dev/ilm/pkg/entry"
)

// Sessions maps a session label to the entry's stored record.
type Sessions map[string]entry.Record

// Books maps a book title to its sessions for one day.
type Books map[string]Sessions

// Day maps a subject to its books for one day.
type Day map[string]Books

// Log maps a date key to that day's record.
type Log map[string]Day

// sessionPrefix starts every session label.
const sessionPrefix = "Entry "

// NewLog returns an empty entry log.
func NewLog() Log {
	return Log{}
}

// Day returns the record for a date. Absence is a normal outcome.
func (l Log) Day(date string) (Day, bool) {
	d, ok := l[date]
	return d, ok
}

// AddEntry inserts an entry under today's date with a fresh session label
// and returns where it landed. Labels carry the 12-hour clock reading; a
// second entry within the same second gets a numeric suffix instead of
// overwriting the first.
func (l Log) AddEntry(c dates.Clock, e *entry.Entry) (date, label string) {
	date = dates.Today(c)
	day, ok := l[date]
	if !ok {
		day = Day{}
		l[date] = day
	}
	if day[e.Subject] == nil {
		day[e.Subject] = Books{}
	}
	if day[e.Subject][e.Book] == nil {
		day[e.Subject][e.Book] = Sessions{}
	}

	sessions := day[e.Subject][e.Book]
	label = sessionPrefix + dates.TimeOfDay(c)
	for n := 2; ; n++ {
		if _, taken := sessions[label]; !taken {
			break
		}
		label = fmt.Sprintf("%s%s (%d)", sessionPrefix, dates.TimeOfDay(c), n)
	}
	sessions[label] = e.Record()
	return date, label
}

// SetDay replaces a date's record. An empty record removes the date key
// entirely; the log never retains an empty day.
func (l Log) SetDay(date string, d Day) {
	if len(d) == 0 {
		delete(l, date)
		return
	}
	l[date] = d
}

// DeleteDay removes an entire date. It reports whether the date existed.
func (l Log) DeleteDay(date string) bool {
	if _, ok := l[date]; !ok {
		return false
	}
	delete(l, date)
	return true
}

// Clear drops all recorded history.
func (l Log) Clear() {
	for date := range l {
		delete(l, date)
	}
}

// Dates returns the log's date keys in chronological order.
func (l Log) Dates() []string {
	keys := make([]string, 0, len(l))
	for date := range l {
		keys = append(keys, date)
	}
	sort.Slice(keys, func(i, j int) bool {
		ti, erri := dates.ParseDay(keys[i])
		tj, errj := dates.ParseDay(keys[j])
		if erri != nil || errj != nil {
			return keys[i] < keys[j]
		}
		return ti.Before(tj)
	})
	return keys
}

// Session looks up one stored record.
func (d Day) Session(subject, book, label string) (entry.Record, bool) {
	rec, ok := d[subject][book][label]
	return rec, ok
}

// Sessions returns all sessions for a subject/book pair that day.
func (d Day) Sessions(subject, book string) (Sessions, bool) {
	s, ok := d[subject][book]
	return s, ok
}

// Remove deletes one session and prunes the book and subject nodes if the
// deletion left them empty. It reports whether the session existed.
func (d Day) Remove(subject, book, label string) bool {
	sessions, ok := d[subject][book]
	if !ok {
		return false
	}
	if _, ok := sessions[label]; !ok {
		return false
	}
	delete(sessions, label)
	d.Prune(subject, book)
	return true
}

// Prune removes the book node if empty, then the subject node if that left
// it empty. Pruning stops at the first non-empty ancestor.
func (d Day) Prune(subject, book string) {
	books, ok := d[subject]
	if !ok {
		return
	}
	if sessions, ok := books[book]; ok && len(sessions) == 0 {
		delete(books, book)
	}
	if len(books) == 0 {
		delete(d, subject)
	}
}

// Subjects returns the day's subjects in display order.
func (d Day) Subjects() []string {
	keys := make([]string, 0, len(d))
	for s := range d {
		keys = append(keys, s)
	}
	SortTitles(keys)
	return keys
}

// BookTitles returns a subject's books for the day in display order.
func (d Day) BookTitles(subject string) []string {
	keys := make([]string, 0, len(d[subject]))
	for b := range d[subject] {
		keys = append(keys, b)
	}
	SortTitles(keys)
	return keys
}

// Labels returns session labels in clock order. Labels that do not parse
// fall back to plain string order.
func (s Sessions) Labels() []string {
	keys := make([]string, 0, len(s))
	for label := range s {
		keys = append(keys, label)
	}
	sort.Slice(keys, func(i, j int) bool {
		ti, oki := labelTime(keys[i])
		tj, okj := labelTime(keys[j])
		if oki && okj && !ti.Equal(tj) {
			return ti.Before(tj)
		}
		return keys[i] < keys[j]
	})
	return keys
}

func labelTime(label string) (time.Time, bool) {
	s := strings.TrimPrefix(label, sessionPrefix)
	if idx := strings.Index(s, " ("); idx >= 0 {
		s = s[:idx]
	}
	t, err := time.Parse(dates.ClockLayout, s)
	return t, err == nil
}
