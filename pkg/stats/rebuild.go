package stats

import (
	"tableflip.dev/ilm/pkg/entry"
	"tableflip.dev/ilm/pkg/journal"
)

// Rebuild folds the entire entry log into fresh statistics. It is
// idempotent and order-independent, and serves as the ground truth the
// incremental updates are validated against.
func Rebuild(log journal.Log) Stats {
	s := Stats{}
	for _, date := range log.Dates() {
		day := log[date]
		for subject, books := range day {
			for book, sessions := range books {
				if s[subject] == nil {
					s[subject] = map[string]*Book{}
				}
				b, ok := s[subject][book]
				if !ok {
					b = &Book{EntryDates: []string{}}
					s[subject][book] = b
				}
				b.TotalEntries += len(sessions)
				if !b.hasDate(date) {
					b.EntryDates = append(b.EntryDates, date)
				}
				for _, rec := range sessions {
					b.Pages += entry.RecordPages(rec)
					b.Minutes += entry.RecordMinutes(rec)
				}
			}
		}
	}
	return s
}

// BuildSubjects rescans the log into a fresh subjects cache, skipping the
// built-in Qur'an subjects.
func BuildSubjects(log journal.Log) Subjects {
	sub := Subjects{}
	for _, day := range log {
		for subject, books := range day {
			if entry.BuiltinSubject(subject) {
				continue
			}
			list := sub[subject]
			for book := range books {
				found := false
				for _, have := range list {
					if have == book {
						found = true
						break
					}
				}
				if !found {
					list = append(list, book)
				}
			}
			journal.SortTitles(list)
			sub[subject] = list
		}
	}
	return sub
}

// Rebuild replaces the engine's caches with a full rescan of the log.
func (g *Engine) Rebuild(log journal.Log) {
	g.Stats = Rebuild(log)
	g.Subjects = BuildSubjects(log)
}
