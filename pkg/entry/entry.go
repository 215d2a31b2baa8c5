// Package entry models one logged study session. An entry is a common core
// (book, pages, time spent, notes) plus a kind-specific payload for the two
// built-in Qur'an subjects or for a free-form subject.
package entry

import (
	"fmt"

	"tableflip.dev/ilm/pkg/timeutil"
)

// Kind discriminates the entry variants.
type Kind string

const (
	Tilawat Kind = "tilawat"
	Tafseer Kind = "tafseer"
	Other   Kind = "other"
)

// The two built-in Qur'an subjects. Their books follow the fixed
// "Para no. N" scheme and they never appear in the subjects cache.
const (
	SubjectTilawat = "Al-Qur'an (Tilawat)"
	SubjectTafseer = "Al-Qur'an (Tafseer)"
)

// Reading modes.
const (
	ModeSequential = "Sequential"
	ModeRandom     = "Random"
)

// BuiltinSubject reports whether subject is one of the Qur'an subjects.
func BuiltinSubject(subject string) bool {
	return subject == SubjectTilawat || subject == SubjectTafseer
}

// KindForSubject picks the variant a stored record belongs to.
func KindForSubject(subject string) Kind {
	switch subject {
	case SubjectTafseer:
		return Tafseer
	case SubjectTilawat:
		return Tilawat
	default:
		return Other
	}
}

// ParaBook names the book for a Qur'an Para number.
func ParaBook(n int) string {
	return fmt.Sprintf("Para no. %d", n)
}

// QuranFields is the payload of the Tilawat and Tafseer variants. Surah,
// Ayah and TotalAayat are only populated for Tafseer.
type QuranFields struct {
	Ruku       string
	TotalRuku  float64
	Surah      string
	Ayah       string
	TotalAayat float64
}

// OtherFields is the payload of free-form subject entries.
type OtherFields struct {
	Unit    string
	Chapter string
}

// Entry is one study session.
type Entry struct {
	Kind    Kind
	Subject string
	Book    string

	Pages       string
	TotalPages  float64
	TimeSpent   string
	Notes       string
	ReadingMode string
	Revision    string

	Quran *QuranFields
	Extra *OtherFields
}

// New returns an entry of the given kind with the journal's defaults.
func New(kind Kind, subject, book string) *Entry {
	e := &Entry{
		Kind:        kind,
		Subject:     subject,
		Book:        book,
		Pages:       "0",
		TimeSpent:   timeutil.FormatMinutes(0),
		Notes:       "N/A",
		ReadingMode: ModeSequential,
		Revision:    "No",
	}
	switch kind {
	case Tilawat, Tafseer:
		e.Quran = &QuranFields{Ruku: "0"}
	case Other:
		e.Extra = &OtherFields{Unit: "0", Chapter: "N/A"}
	}
	return e
}

// Minutes returns the session's time spent in whole minutes.
func (e *Entry) Minutes() int {
	return timeutil.ParseMinutes(e.TimeSpent)
}

// Clone returns a deep copy, used to snapshot an entry around a field edit.
func (e *Entry) Clone() *Entry {
	cp := *e
	if e.Quran != nil {
		q := *e.Quran
		cp.Quran = &q
	}
	if e.Extra != nil {
		o := *e.Extra
		cp.Extra = &o
	}
	return &cp
}

func (e *Entry) String() string {
	return fmt.Sprintf("%s: %s pages, %s spent", e.Book, e.Pages, e.TimeSpent)
}
