// Package app coordinates the entry log, the aggregation engine and
// persistence so CLIs and UIs share one set of journal operations. Every
// log mutation goes through the Service, which keeps the derived caches in
// lockstep; nothing here touches disk until Save.
package app

import (
	"errors"
	"fmt"

	"tableflip.dev/ilm/pkg/dates"
	"tableflip.dev/ilm/pkg/entry"
	"tableflip.dev/ilm/pkg/journal"
	"tableflip.dev/ilm/pkg/password"
	"tableflip.dev/ilm/pkg/stats"
	"tableflip.dev/ilm/pkg/store"
)

// ErrWrongPassword rejects a delete-all attempt.
var ErrWrongPassword = errors.New("app: wrong password")

// Locator addresses one stored session.
type Locator struct {
	Date    string
	Subject string
	Book    string
	Session string
}

// Service owns the in-memory journal state for one process.
type Service struct {
	Persistence store.Persistence
	Clock       dates.Clock
	Gate        *password.Gate

	Log    journal.Log
	Engine *stats.Engine

	dirty bool
}

// New loads the persisted journal into a ready service. A missing file is
// first run; corrupt data refuses to load.
func New(p store.Persistence, c dates.Clock) (*Service, error) {
	if p == nil {
		return nil, errors.New("app: no persistence configured")
	}
	if c == nil {
		c = dates.System{}
	}
	doc, err := p.Document()
	if err != nil {
		return nil, err
	}
	engine := stats.NewEngine(c)
	engine.Stats = doc.Statistics
	engine.Subjects = doc.Subjects
	return &Service{
		Persistence: p,
		Clock:       c,
		Gate:        password.New(p.BasePath()),
		Log:         doc.EntryLog,
		Engine:      engine,
	}, nil
}

// Dirty reports whether in-memory state has diverged from disk. Unsaved
// work is lost if the process exits without Save.
func (s *Service) Dirty() bool {
	return s.dirty
}

// Today returns the current day key.
func (s *Service) Today() string {
	return dates.Today(s.Clock)
}

// Add logs an entry under today and folds it into the running statistics.
func (s *Service) Add(e *entry.Entry) (date, label string) {
	date, label = s.Log.AddEntry(s.Clock, e)
	s.Engine.OnEntryAdded(e)
	s.dirty = true
	return date, label
}

// Day returns one day's record. Absence is a normal outcome.
func (s *Service) Day(date string) (journal.Day, bool) {
	return s.Log.Day(date)
}

// Entry returns one stored session as an entry.
func (s *Service) Entry(loc Locator) (*entry.Entry, bool) {
	day, ok := s.Log.Day(loc.Date)
	if !ok {
		return nil, false
	}
	rec, ok := day.Session(loc.Subject, loc.Book, loc.Session)
	if !ok {
		return nil, false
	}
	return entry.FromRecord(loc.Subject, loc.Book, rec), true
}

// editEntry rebuilds the addressed entry, snapshots it, applies the
// mutation, pushes the old/new pair through the engine, and writes the
// result back. The subtract-old, mutate, add-new ordering is preserved
// inside the engine so edits always audit against a rebuild.
func (s *Service) editEntry(loc Locator, field string, mutate func(*entry.Entry) error) error {
	day, ok := s.Log.Day(loc.Date)
	if !ok {
		return fmt.Errorf("app: no entries recorded for %s", loc.Date)
	}
	rec, ok := day.Session(loc.Subject, loc.Book, loc.Session)
	if !ok {
		return fmt.Errorf("app: no session %q for %s / %s", loc.Session, loc.Subject, loc.Book)
	}

	e := entry.FromRecord(loc.Subject, loc.Book, rec)
	before := e.Clone()
	if err := mutate(e); err != nil {
		return err
	}
	s.Engine.ApplyEdit(loc.Subject, loc.Book, field, before, e)
	day[loc.Subject][loc.Book][loc.Session] = e.Record()
	s.dirty = true
	return nil
}

// EditRange replaces a range-valued field (pages, ayah, ruku, surah, unit).
func (s *Service) EditRange(loc Locator, field string, start, end entry.Number) error {
	label, total := entry.RangeLabel(start, end)
	return s.editEntry(loc, field, func(e *entry.Entry) error {
		return e.SetRange(field, label, total)
	})
}

// EditTime replaces a session's time spent.
func (s *Service) EditTime(loc Locator, minutes int) error {
	return s.editEntry(loc, entry.KeyTimeSpent, func(e *entry.Entry) error {
		e.SetTimeSpent(minutes)
		return nil
	})
}

// EditText replaces a free-text field (notes, revision, reading mode,
// chapter). These carry no aggregate weight.
func (s *Service) EditText(loc Locator, field, value string) error {
	return s.editEntry(loc, field, func(e *entry.Entry) error {
		return e.SetText(field, value)
	})
}

// DeleteEntry removes one session, adjusting statistics first and pruning
// emptied book/subject/day nodes afterwards. It reports whether the
// session existed.
func (s *Service) DeleteEntry(loc Locator) bool {
	day, ok := s.Log.Day(loc.Date)
	if !ok {
		return false
	}
	rec, ok := day.Session(loc.Subject, loc.Book, loc.Session)
	if !ok {
		return false
	}
	sessions, _ := day.Sessions(loc.Subject, loc.Book)
	s.Engine.RemoveEntry(loc.Date, loc.Subject, loc.Book, rec, len(sessions)-1)
	day.Remove(loc.Subject, loc.Book, loc.Session)
	s.Log.SetDay(loc.Date, day)
	s.dirty = true
	return true
}

// DeleteDay removes an entire day. Statistics are adjusted before the day
// leaves the log, while its session list is still readable.
func (s *Service) DeleteDay(date string) bool {
	day, ok := s.Log.Day(date)
	if !ok {
		return false
	}
	s.Engine.RemoveDay(date, day)
	s.Log.DeleteDay(date)
	s.dirty = true
	return true
}

// DeleteAll clears the log and both derived caches together, behind the
// password gate.
func (s *Service) DeleteAll(pw string) error {
	if s.Gate == nil || !s.Gate.IsSet() {
		return errors.New("app: no password set; set one before deleting all history")
	}
	if !s.Gate.Verify(pw) {
		return ErrWrongPassword
	}
	s.Log.Clear()
	s.Engine.Clear()
	s.dirty = true
	return nil
}

// Weekly reports the last seven days, excluding today.
func (s *Service) Weekly() stats.WeeklyReport {
	return stats.Weekly(s.Clock, s.Log)
}

// Rebuild replaces both caches with a full rescan of the log, the
// recovery path when a cache is suspected stale.
func (s *Service) Rebuild() {
	s.Engine.Rebuild(s.Log)
	s.dirty = true
}

// SubjectNames lists the cached free-form subjects for autocompletion.
func (s *Service) SubjectNames() []string {
	return s.Engine.Subjects.SortedSubjects()
}

// SubjectBooks lists the cached books for one subject.
func (s *Service) SubjectBooks(subject string) []string {
	books := make([]string, len(s.Engine.Subjects[subject]))
	copy(books, s.Engine.Subjects[subject])
	return books
}

// Save persists the document and its Markdown mirror. A markdown-only
// failure still counts the JSON half as saved; the error says which half
// broke and nothing is rolled back.
func (s *Service) Save() error {
	err := s.Persistence.Save(&store.Document{
		EntryLog:   s.Log,
		Subjects:   s.Engine.Subjects,
		Statistics: s.Engine.Stats,
	})
	if err == nil || errors.Is(err, store.ErrMarkdownSave) {
		s.dirty = false
	}
	return err
}

// Backup archives the persisted document into dir.
func (s *Service) Backup(dir string) (string, error) {
	return s.Persistence.Backup(dir)
}

// Restore replaces the in-memory state with a backup's contents. The
// result is unsaved until the next Save.
func (s *Service) Restore(zipPath string) error {
	doc, err := s.Persistence.Restore(zipPath)
	if err != nil {
		return err
	}
	s.Log = doc.EntryLog
	s.Engine.Stats = doc.Statistics
	s.Engine.Subjects = doc.Subjects
	s.dirty = true
	return nil
}
