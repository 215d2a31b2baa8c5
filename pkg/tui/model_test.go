package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"tableflip.dev/ilm/pkg/app"
	"tableflip.dev/ilm/pkg/dates"
	"tableflip.dev/ilm/pkg/entry"
	"tableflip.dev/ilm/pkg/store"
)

func loadedService(t *testing.T) *app.Service {
	t.Helper()
	p, err := store.Load(store.FixedConfig(t.TempDir()))
	if err != nil {
		t.Fatalf("load store: %v", err)
	}
	clock := dates.Fixed{Time: time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC)}
	s, err := app.New(p, clock)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	e := entry.New(entry.Other, "Physics", "HC Verma 1")
	e.TotalPages = 4
	e.SetTimeSpent(30)
	s.Add(e)
	return s
}

func sized(t *testing.T, m *Model) *Model {
	t.Helper()
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	sm, ok := next.(*Model)
	if !ok {
		t.Fatalf("update returned %T", next)
	}
	return sm
}

func TestViewShowsSelectedDay(t *testing.T) {
	m := sized(t, New(loadedService(t)))

	view := m.View()
	for _, want := range []string{"Days", "10-Mar-2025", "Physics", "HC Verma 1"} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q:\n%s", want, view)
		}
	}
}

func TestTabNavigationWraps(t *testing.T) {
	m := sized(t, New(loadedService(t)))

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'h'}})
	m = next.(*Model)
	if m.activeTab != tabWeekly {
		t.Fatalf("left from first tab must wrap, got %d", m.activeTab)
	}
	if !strings.Contains(m.View(), "previous week") {
		t.Fatalf("weekly tab must show the summary sentence")
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'l'}})
	m = next.(*Model)
	if m.activeTab != tabDays {
		t.Fatalf("right from last tab must wrap, got %d", m.activeTab)
	}
}

func TestStatsTabRendersTotals(t *testing.T) {
	m := sized(t, New(loadedService(t)))

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'l'}})
	m = next.(*Model)
	view := m.View()
	if !strings.Contains(view, "30 min(s)") {
		t.Fatalf("stats tab missing time total:\n%s", view)
	}
}

func TestQuitKeys(t *testing.T) {
	m := sized(t, New(loadedService(t)))
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatalf("q must quit")
	}
}

func TestEmptyJournalView(t *testing.T) {
	p, err := store.Load(store.FixedConfig(t.TempDir()))
	if err != nil {
		t.Fatalf("load store: %v", err)
	}
	s, err := app.New(p, dates.System{})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	m := sized(t, New(s))
	if !strings.Contains(m.View(), "No entries logged yet.") {
		t.Fatalf("empty journal must say so")
	}
}
