package stats

import (
	"encoding/json"
	"reflect"
	"testing"
	"time"

	"tableflip.dev/ilm/pkg/dates"
	"tableflip.dev/ilm/pkg/entry"
	"tableflip.dev/ilm/pkg/journal"
)

var day5 = dates.Fixed{Time: time.Date(2025, time.January, 5, 10, 0, 0, 0, time.UTC)}

func quranEntry(pages float64, minutes int) *entry.Entry {
	e := entry.New(entry.Tafseer, entry.SubjectTafseer, entry.ParaBook(1))
	e.Pages = "1 - 5"
	e.TotalPages = pages
	e.SetTimeSpent(minutes)
	e.Quran.Surah = "1"
	e.Quran.Ayah = "1 - 7"
	e.Quran.TotalAayat = 7
	e.Quran.Ruku = "1"
	e.Quran.TotalRuku = 1
	return e
}

func otherEntry(subject, book string, pages float64, minutes int) *entry.Entry {
	e := entry.New(entry.Other, subject, book)
	e.TotalPages = pages
	e.SetTimeSpent(minutes)
	return e
}

// addThrough logs the entry and notifies the engine, the way the
// orchestration layer does.
func addThrough(g *Engine, log journal.Log, e *entry.Entry) (string, string) {
	date, label := log.AddEntry(g.Clock, e)
	g.OnEntryAdded(e)
	return date, label
}

func statsEqual(t *testing.T, got, want Stats) {
	t.Helper()
	gotJSON, err := json.Marshal(got)
	if err != nil {
		t.Fatalf("marshal got: %v", err)
	}
	wantJSON, err := json.Marshal(want)
	if err != nil {
		t.Fatalf("marshal want: %v", err)
	}
	var g, w map[string]map[string]map[string]any
	if err := json.Unmarshal(gotJSON, &g); err != nil {
		t.Fatalf("unmarshal got: %v", err)
	}
	if err := json.Unmarshal(wantJSON, &w); err != nil {
		t.Fatalf("unmarshal want: %v", err)
	}
	if !reflect.DeepEqual(g, w) {
		t.Fatalf("stats diverged:\n got  %s\n want %s", gotJSON, wantJSON)
	}
}

func TestTwoEntriesSameBookSameDay(t *testing.T) {
	g := NewEngine(day5)
	log := journal.NewLog()
	addThrough(g, log, quranEntry(5, 30))
	addThrough(g, log, quranEntry(3, 15))

	b := g.Stats[entry.SubjectTafseer][entry.ParaBook(1)]
	if b.Pages != 8 {
		t.Fatalf("expected 8 pages, got %v", b.Pages)
	}
	if b.TimeSpent() != "45 min(s)" {
		t.Fatalf("expected 45 min(s), got %s", b.TimeSpent())
	}
	if b.TotalEntries != 2 {
		t.Fatalf("expected 2 entries, got %d", b.TotalEntries)
	}
	if !reflect.DeepEqual(b.EntryDates, []string{"05-Jan-2025"}) {
		t.Fatalf("date must appear once, got %v", b.EntryDates)
	}
}

func TestBuiltinSubjectsStayOutOfSubjectsCache(t *testing.T) {
	g := NewEngine(day5)
	log := journal.NewLog()
	addThrough(g, log, quranEntry(5, 30))
	addThrough(g, log, otherEntry("Physics", "HC Verma 1", 4, 20))

	if _, ok := g.Subjects[entry.SubjectTafseer]; ok {
		t.Fatalf("quran subjects must not enter the cache")
	}
	if !reflect.DeepEqual(g.Subjects["Physics"], []string{"HC Verma 1"}) {
		t.Fatalf("unexpected cache: %v", g.Subjects)
	}
}

func TestSubjectsCacheSortsBooks(t *testing.T) {
	g := NewEngine(day5)
	log := journal.NewLog()
	addThrough(g, log, otherEntry("Physics", "Book 10", 1, 5))
	addThrough(g, log, otherEntry("Physics", "Alpha", 1, 5))
	addThrough(g, log, otherEntry("Physics", "book 1", 1, 5))
	addThrough(g, log, otherEntry("Physics", "Book 2", 1, 5))
	addThrough(g, log, otherEntry("Physics", "Book 2", 1, 5))

	want := []string{"book 1", "Book 2", "Book 10", "Alpha"}
	if !reflect.DeepEqual(g.Subjects["Physics"], want) {
		t.Fatalf("expected %v, got %v", want, g.Subjects["Physics"])
	}
}

func TestIncrementalMatchesRebuild(t *testing.T) {
	g := NewEngine(day5)
	log := journal.NewLog()
	addThrough(g, log, quranEntry(5, 30))
	addThrough(g, log, quranEntry(3, 15))
	addThrough(g, log, otherEntry("Physics", "HC Verma 1", 9, 60))
	addThrough(g, log, otherEntry("Physics", "HC Verma 1", 2.5, 45))
	addThrough(g, log, otherEntry("History", "Khilafat 2", 12, 90))

	statsEqual(t, g.Stats, Rebuild(log))

	gotSub := BuildSubjects(log)
	if !reflect.DeepEqual(g.Subjects, gotSub) {
		t.Fatalf("subjects diverged: incremental %v rebuild %v", g.Subjects, gotSub)
	}
}

func TestRebuildIdempotent(t *testing.T) {
	g := NewEngine(day5)
	log := journal.NewLog()
	addThrough(g, log, quranEntry(5, 30))
	addThrough(g, log, otherEntry("Physics", "HC Verma 1", 9, 60))

	first := Rebuild(log)
	second := Rebuild(log)
	statsEqual(t, first, second)
	if !reflect.DeepEqual(BuildSubjects(log), BuildSubjects(log)) {
		t.Fatalf("subject rebuild must be idempotent")
	}
}

func TestAddThenDeleteRestoresStats(t *testing.T) {
	g := NewEngine(day5)
	log := journal.NewLog()
	addThrough(g, log, quranEntry(5, 30))

	snapshot, err := json.Marshal(g.Stats)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	e := quranEntry(3, 15)
	date, label := addThrough(g, log, e)
	day, _ := log.Day(date)
	rec, _ := day.Session(entry.SubjectTafseer, entry.ParaBook(1), label)
	sessions, _ := day.Sessions(entry.SubjectTafseer, entry.ParaBook(1))
	g.RemoveEntry(date, entry.SubjectTafseer, entry.ParaBook(1), rec, len(sessions)-1)
	day.Remove(entry.SubjectTafseer, entry.ParaBook(1), label)

	after, err := json.Marshal(g.Stats)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(snapshot) != string(after) {
		t.Fatalf("delete must undo add:\n before %s\n after  %s", snapshot, after)
	}
}

func TestDeleteLastEntryOfDayRemovesDate(t *testing.T) {
	g := NewEngine(day5)
	log := journal.NewLog()
	e := otherEntry("Physics", "HC Verma 1", 4, 20)
	date, label := addThrough(g, log, e)

	day, _ := log.Day(date)
	rec, _ := day.Session("Physics", "HC Verma 1", label)
	g.RemoveEntry(date, "Physics", "HC Verma 1", rec, 0)
	day.Remove("Physics", "HC Verma 1", label)
	log.SetDay(date, day)

	b := g.Stats["Physics"]["HC Verma 1"]
	if len(b.EntryDates) != 0 || b.TotalEntries != 0 || b.Pages != 0 || b.Minutes != 0 {
		t.Fatalf("expected zeroed book, got %+v", b)
	}
}

func TestDeleteKeepsDateWhileSiblingsRemain(t *testing.T) {
	g := NewEngine(day5)
	log := journal.NewLog()
	addThrough(g, log, quranEntry(5, 30))
	date, label := addThrough(g, log, quranEntry(3, 15))

	day, _ := log.Day(date)
	rec, _ := day.Session(entry.SubjectTafseer, entry.ParaBook(1), label)
	sessions, _ := day.Sessions(entry.SubjectTafseer, entry.ParaBook(1))
	g.RemoveEntry(date, entry.SubjectTafseer, entry.ParaBook(1), rec, len(sessions)-1)
	day.Remove(entry.SubjectTafseer, entry.ParaBook(1), label)

	b := g.Stats[entry.SubjectTafseer][entry.ParaBook(1)]
	if !reflect.DeepEqual(b.EntryDates, []string{date}) {
		t.Fatalf("date must survive while a sibling session remains, got %v", b.EntryDates)
	}
	statsEqual(t, g.Stats, Rebuild(log))
}

func TestEditPageRange(t *testing.T) {
	g := NewEngine(day5)
	log := journal.NewLog()
	e := otherEntry("Physics", "HC Verma 1", 5, 30)
	addThrough(g, log, e)

	before := e.Clone()
	if err := e.SetRange(entry.KeyPage, "1 - 10", 10); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	g.ApplyEdit("Physics", "HC Verma 1", entry.KeyPage, before, e)

	b := g.Stats["Physics"]["HC Verma 1"]
	if b.Pages != 10 {
		t.Fatalf("expected 10 pages after edit, got %v", b.Pages)
	}
	if b.Minutes != 30 || b.TotalEntries != 1 {
		t.Fatalf("edit must not touch other totals: %+v", b)
	}
}

func TestEditTimeSpent(t *testing.T) {
	g := NewEngine(day5)
	log := journal.NewLog()
	e := otherEntry("Physics", "HC Verma 1", 5, 90)
	addThrough(g, log, e)

	before := e.Clone()
	e.SetTimeSpent(40)
	g.ApplyEdit("Physics", "HC Verma 1", entry.KeyTimeSpent, before, e)

	b := g.Stats["Physics"]["HC Verma 1"]
	if b.Minutes != 40 {
		t.Fatalf("expected 40 minutes after edit, got %d", b.Minutes)
	}
	if b.TimeSpent() != "40 min(s)" {
		t.Fatalf("unexpected formatting: %s", b.TimeSpent())
	}
}

func TestEditNonAggregateFieldIsNoOp(t *testing.T) {
	g := NewEngine(day5)
	log := journal.NewLog()
	e := otherEntry("Physics", "HC Verma 1", 5, 30)
	addThrough(g, log, e)

	before := e.Clone()
	if err := e.SetText(entry.KeyNotes, "rushed"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	g.ApplyEdit("Physics", "HC Verma 1", entry.KeyNotes, before, e)

	statsEqual(t, g.Stats, Rebuild(log))
}

func TestRepeatedEditsConvergeOnRebuild(t *testing.T) {
	g := NewEngine(day5)
	log := journal.NewLog()
	e := otherEntry("Physics", "HC Verma 1", 5, 30)
	date, label := addThrough(g, log, e)

	for _, total := range []float64{7, 2, 13} {
		before := e.Clone()
		if err := e.SetRange(entry.KeyPage, "1 - x", total); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		g.ApplyEdit("Physics", "HC Verma 1", entry.KeyPage, before, e)
	}
	day, _ := log.Day(date)
	day["Physics"]["HC Verma 1"][label] = e.Record()

	statsEqual(t, g.Stats, Rebuild(log))
}

func TestRemoveDayCascades(t *testing.T) {
	g := NewEngine(day5)
	log := journal.NewLog()
	addThrough(g, log, quranEntry(5, 30))
	addThrough(g, log, quranEntry(3, 15))
	addThrough(g, log, otherEntry("Physics", "HC Verma 1", 4, 20))

	date := dates.Today(day5)
	day, _ := log.Day(date)
	g.RemoveDay(date, day)
	log.DeleteDay(date)

	b := g.Stats[entry.SubjectTafseer][entry.ParaBook(1)]
	if b.Pages != 0 || b.Minutes != 0 || b.TotalEntries != 0 || len(b.EntryDates) != 0 {
		t.Fatalf("expected zeroed quran book, got %+v", b)
	}
	if b.TimeSpent() != "0 min(s)" {
		t.Fatalf("expected 0 min(s), got %s", b.TimeSpent())
	}
	p := g.Stats["Physics"]["HC Verma 1"]
	if p.Pages != 0 || p.TotalEntries != 0 {
		t.Fatalf("expected zeroed physics book, got %+v", p)
	}
}

func TestBookJSONShape(t *testing.T) {
	b := Book{Pages: 8, Minutes: 45, TotalEntries: 2, EntryDates: []string{"05-Jan-2025"}}
	data, err := json.Marshal(b)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if m["Pages"] != float64(8) || m["Time Spent"] != "45 min(s)" || m["Total Entries"] != float64(2) {
		t.Fatalf("unexpected shape: %s", data)
	}

	var back Book
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal back: %v", err)
	}
	if back.Minutes != 45 {
		t.Fatalf("minutes must come back from the formatted string, got %d", back.Minutes)
	}
}
