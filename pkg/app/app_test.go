package app

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"tableflip.dev/ilm/pkg/dates"
	"tableflip.dev/ilm/pkg/entry"
	"tableflip.dev/ilm/pkg/stats"
	"tableflip.dev/ilm/pkg/store"
)

type memoryPersistence struct {
	basePath string
	saved    *store.Document
	saveErr  error
	loadDoc  *store.Document
	loadErr  error
}

func (m *memoryPersistence) Document() (*store.Document, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	if m.loadDoc != nil {
		return m.loadDoc, nil
	}
	return store.NewDocument(), nil
}

func (m *memoryPersistence) Save(doc *store.Document) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saved = doc
	return nil
}

func (m *memoryPersistence) Backup(string) (string, error) {
	return "", errors.New("memory: no backups")
}

func (m *memoryPersistence) Restore(string) (*store.Document, error) {
	return nil, errors.New("memory: no backups")
}

func (m *memoryPersistence) BasePath() string { return m.basePath }

var clock5 = dates.Fixed{Time: time.Date(2025, time.January, 5, 10, 15, 30, 0, time.UTC)}

func testService(t *testing.T) (*Service, *memoryPersistence) {
	t.Helper()
	mp := &memoryPersistence{basePath: t.TempDir()}
	s, err := New(mp, clock5)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return s, mp
}

func addTafseer(s *Service, pages float64, minutes int) (string, string) {
	e := entry.New(entry.Tafseer, entry.SubjectTafseer, entry.ParaBook(1))
	e.Pages = "1 - 5"
	e.TotalPages = pages
	e.SetTimeSpent(minutes)
	return s.Add(e)
}

func addOther(s *Service, subject, book string, pages float64, minutes int) (string, string) {
	e := entry.New(entry.Other, subject, book)
	e.TotalPages = pages
	e.SetTimeSpent(minutes)
	return s.Add(e)
}

func assertConsistent(t *testing.T, s *Service) {
	t.Helper()
	got, err := json.Marshal(s.Engine.Stats)
	if err != nil {
		t.Fatalf("marshal incremental: %v", err)
	}
	// Zeroed leftovers are allowed incrementally but never rebuilt, so
	// compare after dropping them.
	var gotMap map[string]map[string]map[string]any
	if err := json.Unmarshal(got, &gotMap); err != nil {
		t.Fatalf("unmarshal incremental: %v", err)
	}
	for subject, books := range gotMap {
		for book, totals := range books {
			if totals["Total Entries"] == float64(0) {
				delete(books, book)
			}
			if len(gotMap[subject]) == 0 {
				delete(gotMap, subject)
			}
		}
	}
	want, err := json.Marshal(stats.Rebuild(s.Log))
	if err != nil {
		t.Fatalf("marshal rebuild: %v", err)
	}
	var wantMap map[string]map[string]map[string]any
	if err := json.Unmarshal(want, &wantMap); err != nil {
		t.Fatalf("unmarshal rebuild: %v", err)
	}
	gotJSON, _ := json.Marshal(gotMap)
	wantJSON, _ := json.Marshal(wantMap)
	if string(gotJSON) != string(wantJSON) {
		t.Fatalf("caches diverged from log:\n incremental %s\n rebuild     %s", gotJSON, wantJSON)
	}
}

func TestNewRefusesCorruptData(t *testing.T) {
	mp := &memoryPersistence{basePath: t.TempDir(), loadErr: store.ErrCorrupt}
	if _, err := New(mp, clock5); !errors.Is(err, store.ErrCorrupt) {
		t.Fatalf("expected corrupt error, got %v", err)
	}
}

func TestAddMarksDirtyAndUpdatesCaches(t *testing.T) {
	s, _ := testService(t)
	if s.Dirty() {
		t.Fatalf("fresh service must be clean")
	}
	date, label := addTafseer(s, 5, 30)
	if date != "05-Jan-2025" || label == "" {
		t.Fatalf("unexpected placement: %s %s", date, label)
	}
	if !s.Dirty() {
		t.Fatalf("add must mark state dirty")
	}
	assertConsistent(t, s)
}

func TestEditFieldKeepsCachesInLockstep(t *testing.T) {
	s, _ := testService(t)
	date, label := addOther(s, "Physics", "HC Verma 1", 5, 30)
	loc := Locator{Date: date, Subject: "Physics", Book: "HC Verma 1", Session: label}

	if err := s.EditRange(loc, entry.KeyPage, entry.Int(1), entry.Int(12)); err != nil {
		t.Fatalf("edit range: %v", err)
	}
	if err := s.EditTime(loc, 75); err != nil {
		t.Fatalf("edit time: %v", err)
	}
	if err := s.EditText(loc, entry.KeyNotes, "revisited"); err != nil {
		t.Fatalf("edit text: %v", err)
	}

	e, ok := s.Entry(loc)
	if !ok {
		t.Fatalf("entry lost after edits")
	}
	if e.Pages != "1 - 12" || e.TotalPages != 12 || e.Minutes() != 75 || e.Notes != "revisited" {
		t.Fatalf("edits not applied: %+v", e)
	}
	assertConsistent(t, s)
}

func TestEditMissingSessionIsError(t *testing.T) {
	s, _ := testService(t)
	loc := Locator{Date: "01-Jan-2020", Subject: "Physics", Book: "X", Session: "Entry 01:00:00 PM"}
	if err := s.EditTime(loc, 10); err == nil {
		t.Fatalf("expected error for missing session")
	}
}

func TestDeleteEntryPrunesAndAdjusts(t *testing.T) {
	s, _ := testService(t)
	date, label := addOther(s, "Physics", "HC Verma 1", 5, 30)
	addOther(s, "History", "Khilafat 2", 3, 20)

	if !s.DeleteEntry(Locator{Date: date, Subject: "Physics", Book: "HC Verma 1", Session: label}) {
		t.Fatalf("existing session must delete")
	}
	day, ok := s.Day(date)
	if !ok {
		t.Fatalf("day with remaining subjects must survive")
	}
	if _, ok := day["Physics"]; ok {
		t.Fatalf("emptied subject must be pruned")
	}
	assertConsistent(t, s)

	if s.DeleteEntry(Locator{Date: date, Subject: "Physics", Book: "HC Verma 1", Session: label}) {
		t.Fatalf("missing session must report false")
	}
}

func TestDeleteLastEntryRemovesDay(t *testing.T) {
	s, _ := testService(t)
	date, label := addOther(s, "Physics", "HC Verma 1", 5, 30)
	s.DeleteEntry(Locator{Date: date, Subject: "Physics", Book: "HC Verma 1", Session: label})
	if _, ok := s.Day(date); ok {
		t.Fatalf("empty day must not be retained")
	}
}

func TestDeleteDayBeforeStatsWouldCorrupt(t *testing.T) {
	s, _ := testService(t)
	date, _ := addTafseer(s, 5, 30)
	addTafseer(s, 3, 15)

	if !s.DeleteDay(date) {
		t.Fatalf("existing day must delete")
	}
	b := s.Engine.Stats[entry.SubjectTafseer][entry.ParaBook(1)]
	if b.Pages != 0 || b.Minutes != 0 || b.TotalEntries != 0 || len(b.EntryDates) != 0 {
		t.Fatalf("day deletion must cascade into stats: %+v", b)
	}
	if s.DeleteDay(date) {
		t.Fatalf("absent day must report false")
	}
}

func TestDeleteAllRequiresPassword(t *testing.T) {
	s, _ := testService(t)
	addTafseer(s, 5, 30)

	if err := s.DeleteAll("whatever"); err == nil {
		t.Fatalf("delete-all without a stored password must fail")
	}
	if err := s.Gate.Set("secret123", "secret123"); err != nil {
		t.Fatalf("set password: %v", err)
	}
	if err := s.DeleteAll("wrong"); !errors.Is(err, ErrWrongPassword) {
		t.Fatalf("expected ErrWrongPassword, got %v", err)
	}
	if err := s.DeleteAll("secret123"); err != nil {
		t.Fatalf("delete all: %v", err)
	}
	if len(s.Log) != 0 || len(s.Engine.Stats) != 0 || len(s.Engine.Subjects) != 0 {
		t.Fatalf("log and caches must clear together")
	}
}

func TestSaveClearsDirty(t *testing.T) {
	s, mp := testService(t)
	addTafseer(s, 5, 30)
	if err := s.Save(); err != nil {
		t.Fatalf("save: %v", err)
	}
	if s.Dirty() {
		t.Fatalf("successful save must clear dirty")
	}
	if mp.saved == nil || len(mp.saved.EntryLog) != 1 {
		t.Fatalf("document not handed to persistence")
	}
}

func TestSaveJSONFailureStaysDirty(t *testing.T) {
	s, mp := testService(t)
	addTafseer(s, 5, 30)
	mp.saveErr = store.ErrJSONSave
	if err := s.Save(); !errors.Is(err, store.ErrJSONSave) {
		t.Fatalf("expected json save error, got %v", err)
	}
	if !s.Dirty() {
		t.Fatalf("failed json save must stay dirty")
	}
}

func TestRebuildRecoversFromStaleCache(t *testing.T) {
	s, _ := testService(t)
	addOther(s, "Physics", "HC Verma 1", 5, 30)

	// Simulate caller misuse: log mutated without the matching stats call.
	s.Engine.Stats["Physics"]["HC Verma 1"].Pages = 999

	s.Rebuild()
	assertConsistent(t, s)
	if got := s.Engine.Stats["Physics"]["HC Verma 1"].Pages; got != 5 {
		t.Fatalf("rebuild must restore ground truth, got %v", got)
	}
}

func TestSubjectAutocompletion(t *testing.T) {
	s, _ := testService(t)
	addOther(s, "Physics", "HC Verma 2", 1, 5)
	addOther(s, "Physics", "HC Verma 1", 1, 5)
	addTafseer(s, 5, 30)

	if got := s.SubjectNames(); len(got) != 1 || got[0] != "Physics" {
		t.Fatalf("unexpected subjects: %v", got)
	}
	books := s.SubjectBooks("Physics")
	if len(books) != 2 || books[0] != "HC Verma 1" || books[1] != "HC Verma 2" {
		t.Fatalf("unexpected books: %v", books)
	}
}
