package entry

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"tableflip.dev/ilm/pkg/timeutil"
)

// Number is a user-entered numeric value. Whether it was typed with a
// fractional part is kept so "1.0" renders as "1.0", not "1".
type Number struct {
	Value float64
	Float bool
}

// Int wraps a whole value.
func Int(v int) Number { return Number{Value: float64(v)} }

// Float wraps a fractional value.
func Float(v float64) Number { return Number{Value: v, Float: true} }

// ParseNumber reads a value as typed, keeping the int/float distinction.
// An empty string is the zero Number, meaning "not provided".
func ParseNumber(s string) (Number, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Number{}, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Number{}, fmt.Errorf("entry: invalid number %q", s)
	}
	if v < 0 {
		return Number{}, fmt.Errorf("entry: number must not be negative, got %q", s)
	}
	return Number{Value: v, Float: strings.Contains(s, ".")}, nil
}

// IsZero reports whether the value counts as "not provided".
func (n Number) IsZero() bool { return n.Value == 0 }

func (n Number) String() string {
	if n.Float {
		s := strconv.FormatFloat(n.Value, 'f', -1, 64)
		if !strings.Contains(s, ".") {
			s += ".0"
		}
		return s
	}
	return strconv.FormatInt(int64(n.Value), 10)
}

// RangeLabel converts a from/to pair into its display string and count.
// A single value (either end missing, or both equal) counts as 1. An
// integer range counts inclusively; a fractional range counts the
// difference rounded to one decimal. Range ordering is validated upstream.
func RangeLabel(start, end Number) (string, float64) {
	if start.IsZero() {
		return end.String(), 1
	}
	if end.IsZero() {
		return start.String(), 1
	}
	if start.Value == end.Value {
		return start.String(), 1
	}

	label := fmt.Sprintf("%s - %s", start, end)
	if start.Float || end.Float {
		return label, math.Round((end.Value-start.Value)*10) / 10
	}
	return label, end.Value - start.Value + 1
}

// Editable field mutators. Each replaces exactly one field, leaving the
// rest of the entry untouched.

// SetRange replaces a range-valued field and its derived total.
func (e *Entry) SetRange(field, label string, total float64) error {
	switch field {
	case KeyPage:
		e.Pages = label
		e.TotalPages = total
	case KeyAyah:
		if e.Kind != Tafseer {
			return fmt.Errorf("entry: %s has no %s field", e.Kind, field)
		}
		e.Quran.Ayah = label
		e.Quran.TotalAayat = total
	case KeyRuku:
		if e.Quran == nil {
			return fmt.Errorf("entry: %s has no %s field", e.Kind, field)
		}
		e.Quran.Ruku = label
		e.Quran.TotalRuku = total
	case KeySurah:
		if e.Kind != Tafseer {
			return fmt.Errorf("entry: %s has no %s field", e.Kind, field)
		}
		e.Quran.Surah = label
	case KeyUnit:
		if e.Extra == nil {
			return fmt.Errorf("entry: %s has no %s field", e.Kind, field)
		}
		e.Extra.Unit = label
	default:
		return fmt.Errorf("entry: %s is not a range field", field)
	}
	return nil
}

// SetTimeSpent replaces the session time with a minute count.
func (e *Entry) SetTimeSpent(minutes int) {
	e.TimeSpent = timeutil.FormatMinutes(minutes)
}

// SetText replaces a free-text field. Empty input takes the field default.
func (e *Entry) SetText(field, value string) error {
	value = strings.TrimSpace(value)
	switch field {
	case KeyNotes:
		if value == "" {
			value = "N/A"
		}
		e.Notes = value
	case KeyRevision:
		if value == "" {
			value = "No"
		}
		e.Revision = value
	case KeyReadingMode:
		if value != ModeSequential && value != ModeRandom {
			return fmt.Errorf("entry: reading mode must be %s or %s", ModeSequential, ModeRandom)
		}
		e.ReadingMode = value
	case KeyChapter:
		if e.Extra == nil {
			return fmt.Errorf("entry: %s has no %s field", e.Kind, field)
		}
		if value == "" {
			value = "N/A"
		}
		e.Extra.Chapter = value
	default:
		return fmt.Errorf("entry: %s is not a text field", field)
	}
	return nil
}
