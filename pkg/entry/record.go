package entry

import (
	"strconv"

	"tableflip.dev/ilm/pkg/timeutil"
)

// Record is the plain key→value form an entry takes inside the entry log.
type Record map[string]any

// Stored record keys. The persisted journal uses these exact strings.
const (
	KeySurah       = "Surah"
	KeyAyah        = "Ayah"
	KeyTotalAayat  = "Total Aayat"
	KeyRuku        = "Ruku (Para)"
	KeyTotalRuku   = "Total Ruku"
	KeyBook        = "Book"
	KeyUnit        = "Unit"
	KeyChapter     = "Chapter"
	KeyPage        = "Page"
	KeyTotalPages  = "Total Pages"
	KeyTimeSpent   = "Time Spent"
	KeyNotes       = "Notes"
	KeyReadingMode = "Reading Mode"
	KeyRevision    = "Revision"
)

// Record converts the entry to its stored form.
func (e *Entry) Record() Record {
	rec := Record{}
	switch e.Kind {
	case Tafseer:
		rec[KeySurah] = e.Quran.Surah
		rec[KeyAyah] = e.Quran.Ayah
		rec[KeyTotalAayat] = e.Quran.TotalAayat
		rec[KeyRuku] = e.Quran.Ruku
		rec[KeyTotalRuku] = e.Quran.TotalRuku
	case Tilawat:
		rec[KeyRuku] = e.Quran.Ruku
		rec[KeyTotalRuku] = e.Quran.TotalRuku
	case Other:
		rec[KeyBook] = e.Book
		rec[KeyUnit] = e.Extra.Unit
		rec[KeyChapter] = e.Extra.Chapter
	}
	rec[KeyPage] = e.Pages
	rec[KeyTotalPages] = e.TotalPages
	rec[KeyTimeSpent] = e.TimeSpent
	rec[KeyNotes] = e.Notes
	rec[KeyReadingMode] = e.ReadingMode
	rec[KeyRevision] = e.Revision
	return rec
}

// FromRecord rebuilds an entry from its stored form. The variant follows
// the subject, matching how records were written.
func FromRecord(subject, book string, rec Record) *Entry {
	e := New(KindForSubject(subject), subject, book)
	e.Pages = recString(rec, KeyPage, "0")
	e.TotalPages = recFloat(rec, KeyTotalPages)
	e.TimeSpent = recString(rec, KeyTimeSpent, "N/A")
	e.Notes = recString(rec, KeyNotes, "N/A")
	e.ReadingMode = recString(rec, KeyReadingMode, "N/A")
	e.Revision = recString(rec, KeyRevision, "N/A")
	switch e.Kind {
	case Tafseer:
		e.Quran.Surah = recString(rec, KeySurah, "0")
		e.Quran.Ayah = recString(rec, KeyAyah, "0")
		e.Quran.TotalAayat = recFloat(rec, KeyTotalAayat)
		fallthrough
	case Tilawat:
		e.Quran.Ruku = recString(rec, KeyRuku, "0")
		e.Quran.TotalRuku = recFloat(rec, KeyTotalRuku)
	case Other:
		e.Extra.Unit = recString(rec, KeyUnit, "0")
		e.Extra.Chapter = recString(rec, KeyChapter, "N/A")
	}
	return e
}

// RecordMinutes reads a stored record's time spent without building an entry.
func RecordMinutes(rec Record) int {
	return timeutil.ParseMinutes(recString(rec, KeyTimeSpent, ""))
}

// RecordPages reads a stored record's page total without building an entry.
func RecordPages(rec Record) float64 {
	return recFloat(rec, KeyTotalPages)
}

// Field is one display row of an entry.
type Field struct {
	Key   string
	Value string
}

// Fields returns the entry's rows in their stored order, for display and
// for the Markdown mirror.
func (e *Entry) Fields() []Field {
	rec := e.Record()
	fields := make([]Field, 0, len(rec))
	for _, key := range fieldOrder(e.Kind) {
		if v, ok := rec[key]; ok {
			fields = append(fields, Field{Key: key, Value: displayValue(v)})
		}
	}
	return fields
}

// EditableFields lists the fields a user may edit, excluding the book name
// and the derived totals.
func (e *Entry) EditableFields() []string {
	fields := make([]string, 0, 10)
	for _, key := range fieldOrder(e.Kind) {
		switch key {
		case KeyBook, KeyTotalPages, KeyTotalAayat, KeyTotalRuku:
			continue
		}
		fields = append(fields, key)
	}
	return fields
}

func fieldOrder(kind Kind) []string {
	common := []string{KeyPage, KeyTotalPages, KeyTimeSpent, KeyNotes, KeyReadingMode, KeyRevision}
	switch kind {
	case Tafseer:
		return append([]string{KeySurah, KeyAyah, KeyTotalAayat, KeyRuku, KeyTotalRuku}, common...)
	case Tilawat:
		return append([]string{KeyRuku, KeyTotalRuku}, common...)
	default:
		return append([]string{KeyBook, KeyUnit, KeyChapter}, common...)
	}
}

func displayValue(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	default:
		return ""
	}
}

func recString(rec Record, key, fallback string) string {
	if v, ok := rec[key].(string); ok {
		return v
	}
	return fallback
}

func recFloat(rec Record, key string) float64 {
	switch v := rec[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	default:
		return 0
	}
}
