// Package dates is the journal's calendar source. Every key in the entry
// log uses the DD-Mon-YYYY day form, and session labels carry a 12-hour
// clock reading, so all formatting funnels through here.
package dates

import "time"

const (
	// DayLayout is the form of the entry log's date keys, e.g. "05-Jan-2025".
	DayLayout = "02-Jan-2006"
	// ClockLayout is the 12-hour clock used in session labels.
	ClockLayout = "03:04:05 PM"
)

// Clock supplies the current moment. The system clock is used everywhere
// except tests, which pin a day to keep date keys stable.
type Clock interface {
	Now() time.Time
}

// System is the wall clock.
type System struct{}

func (System) Now() time.Time { return time.Now() }

// Fixed always reports the same moment.
type Fixed struct {
	Time time.Time
}

func (f Fixed) Now() time.Time { return f.Time }

// Today returns the current day key.
func Today(c Clock) string {
	return c.Now().Format(DayLayout)
}

// TimeOfDay returns the current clock reading for session labels.
func TimeOfDay(c Clock) string {
	return c.Now().Format(ClockLayout)
}

// Weekday returns the full weekday name for the current day.
func Weekday(c Clock) string {
	return c.Now().Weekday().String()
}

// LastSevenDays returns the seven day keys ending yesterday, oldest first.
// Today is excluded so a partially logged day never skews the report.
func LastSevenDays(c Clock) []string {
	return window(c.Now().AddDate(0, 0, -7))
}

// WindowIncludingToday returns the seven day keys ending today, oldest
// first, for callers that want today in the window.
func WindowIncludingToday(c Clock) []string {
	return window(c.Now().AddDate(0, 0, -6))
}

func window(start time.Time) []string {
	days := make([]string, 0, 7)
	for i := 0; i < 7; i++ {
		days = append(days, start.AddDate(0, 0, i).Format(DayLayout))
	}
	return days
}

// ParseDay parses a day key back into a time, for chronological sorting.
func ParseDay(key string) (time.Time, error) {
	return time.Parse(DayLayout, key)
}
