package dates

import (
	"testing"
	"time"
)

func TestTodayFormat(t *testing.T) {
	c := Fixed{Time: time.Date(2025, time.January, 5, 9, 30, 0, 0, time.UTC)}
	if got := Today(c); got != "05-Jan-2025" {
		t.Fatalf("expected 05-Jan-2025, got %s", got)
	}
	if got := TimeOfDay(c); got != "09:30:00 AM" {
		t.Fatalf("expected 09:30:00 AM, got %s", got)
	}
}

func TestLastSevenDaysExcludesToday(t *testing.T) {
	c := Fixed{Time: time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)}
	days := LastSevenDays(c)
	if len(days) != 7 {
		t.Fatalf("expected 7 days, got %d", len(days))
	}
	if days[0] != "03-Mar-2025" {
		t.Fatalf("unexpected window start: %s", days[0])
	}
	if days[6] != "09-Mar-2025" {
		t.Fatalf("window must end yesterday, got %s", days[6])
	}
	for _, d := range days {
		if d == Today(c) {
			t.Fatalf("window must not include today")
		}
	}
}

func TestLastSevenDaysCrossesMonthAndYear(t *testing.T) {
	c := Fixed{Time: time.Date(2025, time.January, 3, 0, 0, 0, 0, time.UTC)}
	days := LastSevenDays(c)
	want := []string{
		"27-Dec-2024", "28-Dec-2024", "29-Dec-2024", "30-Dec-2024",
		"31-Dec-2024", "01-Jan-2025", "02-Jan-2025",
	}
	for i, d := range days {
		if d != want[i] {
			t.Fatalf("day %d: expected %s, got %s", i, want[i], d)
		}
	}
}

func TestWindowIncludingToday(t *testing.T) {
	c := Fixed{Time: time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)}
	days := WindowIncludingToday(c)
	if days[6] != Today(c) {
		t.Fatalf("window must end today, got %s", days[6])
	}
}

func TestParseDayRoundTrip(t *testing.T) {
	then, err := ParseDay("29-Feb-2024")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if then.Format(DayLayout) != "29-Feb-2024" {
		t.Fatalf("round trip failed: %s", then.Format(DayLayout))
	}
}
