// Package stats maintains the two derived views over the entry log: the
// per-subject/per-book running statistics and the all-time subjects cache
// used for autocompletion. Both are rebuildable projections; the log stays
// the ground truth.
package stats

import (
	"encoding/json"

	"tableflip.dev/ilm/pkg/dates"
	"tableflip.dev/ilm/pkg/entry"
	"tableflip.dev/ilm/pkg/journal"
	"tableflip.dev/ilm/pkg/timeutil"
)

// Book holds the running totals for one subject/book pair. Minutes is the
// canonical internal representation; the persisted form carries the
// formatted "Time Spent" string instead.
type Book struct {
	Pages        float64
	Minutes      int
	TotalEntries int
	EntryDates   []string
}

// TimeSpent renders the running minutes in the journal's wire form.
func (b *Book) TimeSpent() string {
	return timeutil.FormatMinutes(b.Minutes)
}

func (b *Book) hasDate(date string) bool {
	for _, d := range b.EntryDates {
		if d == date {
			return true
		}
	}
	return false
}

func (b *Book) removeDate(date string) {
	for i, d := range b.EntryDates {
		if d == date {
			b.EntryDates = append(b.EntryDates[:i], b.EntryDates[i+1:]...)
			return
		}
	}
}

type bookJSON struct {
	Pages        float64  `json:"Pages"`
	TimeSpent    string   `json:"Time Spent"`
	TotalEntries int      `json:"Total Entries"`
	EntryDates   []string `json:"Entry Dates"`
}

func (b Book) MarshalJSON() ([]byte, error) {
	dates := b.EntryDates
	if dates == nil {
		dates = []string{}
	}
	return json.Marshal(bookJSON{
		Pages:        b.Pages,
		TimeSpent:    b.TimeSpent(),
		TotalEntries: b.TotalEntries,
		EntryDates:   dates,
	})
}

func (b *Book) UnmarshalJSON(data []byte) error {
	var bj bookJSON
	if err := json.Unmarshal(data, &bj); err != nil {
		return err
	}
	b.Pages = bj.Pages
	b.Minutes = timeutil.ParseMinutes(bj.TimeSpent)
	b.TotalEntries = bj.TotalEntries
	b.EntryDates = bj.EntryDates
	if b.EntryDates == nil {
		b.EntryDates = []string{}
	}
	return nil
}

// Stats maps subject → book → running totals.
type Stats map[string]map[string]*Book

// Subjects is the all-time autocompletion cache: subject → sorted book
// titles. The built-in Qur'an subjects never appear here.
type Subjects map[string][]string

// SortedSubjects returns the stat subjects in display order.
func (s Stats) SortedSubjects() []string {
	keys := make([]string, 0, len(s))
	for subject := range s {
		keys = append(keys, subject)
	}
	journal.SortTitles(keys)
	return keys
}

// SortedBooks returns a subject's books in display order.
func (s Stats) SortedBooks(subject string) []string {
	keys := make([]string, 0, len(s[subject]))
	for book := range s[subject] {
		keys = append(keys, book)
	}
	journal.SortTitles(keys)
	return keys
}

// SortedSubjects returns the cached subjects in display order.
func (s Subjects) SortedSubjects() []string {
	keys := make([]string, 0, len(s))
	for subject := range s {
		keys = append(keys, subject)
	}
	journal.SortTitles(keys)
	return keys
}

// Engine applies incremental updates to both caches as the log mutates.
// A caller that mutates the log without the matching engine call corrupts
// the caches; the only recovery is Rebuild.
type Engine struct {
	Clock    dates.Clock
	Stats    Stats
	Subjects Subjects
}

// NewEngine returns an engine over empty caches.
func NewEngine(c dates.Clock) *Engine {
	return &Engine{
		Clock:    c,
		Stats:    Stats{},
		Subjects: Subjects{},
	}
}

func (g *Engine) book(subject, book string) *Book {
	if g.Stats[subject] == nil {
		g.Stats[subject] = map[string]*Book{}
	}
	b, ok := g.Stats[subject][book]
	if !ok {
		b = &Book{EntryDates: []string{}}
		g.Stats[subject][book] = b
	}
	return b
}

// OnEntryAdded folds a newly logged entry into both caches. The date is
// appended to the book's entry dates only once per day, however many
// sessions that day holds.
func (g *Engine) OnEntryAdded(e *entry.Entry) {
	today := dates.Today(g.Clock)
	b := g.book(e.Subject, e.Book)

	b.TotalEntries++
	if !b.hasDate(today) {
		b.EntryDates = append(b.EntryDates, today)
	}
	b.Pages += e.TotalPages
	b.Minutes += e.Minutes()

	g.updateSubjects(e.Subject, e.Book)
}

func (g *Engine) updateSubjects(subject, book string) {
	if entry.BuiltinSubject(subject) {
		return
	}
	list := g.Subjects[subject]
	for _, have := range list {
		if have == book {
			g.Subjects[subject] = list
			return
		}
	}
	list = append(list, book)
	journal.SortTitles(list)
	g.Subjects[subject] = list
}

// ApplyEdit adjusts the running totals for a single-field edit. Only the
// page range and time spent fields carry aggregate weight; the old value
// is subtracted before the new one is added, so repeated edits of the same
// entry always land on the rebuild result. Any other field is a no-op.
func (g *Engine) ApplyEdit(subject, book, field string, before, after *entry.Entry) {
	b := g.book(subject, book)
	switch field {
	case entry.KeyPage:
		b.Pages -= before.TotalPages
		b.Pages += after.TotalPages
	case entry.KeyTimeSpent:
		b.Minutes -= before.Minutes()
		b.Minutes += after.Minutes()
	}
}

// RemoveEntry subtracts one deleted session. The date leaves the book's
// entry dates only when no sibling session for that subject/book remains
// on that date; siblings is the count left after the removal.
func (g *Engine) RemoveEntry(date, subject, book string, rec entry.Record, siblings int) {
	b := g.book(subject, book)
	b.Pages -= entry.RecordPages(rec)
	b.Minutes -= entry.RecordMinutes(rec)
	b.TotalEntries--
	if siblings == 0 {
		b.removeDate(date)
	}
}

// RemoveDay subtracts every session of a whole deleted day, touching each
// subject/book pair that day once. It must run before the day leaves the
// log, while the session list is still readable.
func (g *Engine) RemoveDay(date string, day journal.Day) {
	for subject, books := range day {
		for book, sessions := range books {
			b, ok := g.Stats[subject][book]
			if !ok || !b.hasDate(date) {
				continue
			}
			b.removeDate(date)
			b.TotalEntries -= len(sessions)
			for _, rec := range sessions {
				b.Pages -= entry.RecordPages(rec)
				b.Minutes -= entry.RecordMinutes(rec)
			}
		}
	}
}

// Clear empties both caches; used when all history is deleted so the
// projections stay derivable from the (now empty) log.
func (g *Engine) Clear() {
	g.Stats = Stats{}
	g.Subjects = Subjects{}
}
