// Package store persists the journal: one JSON document holding the entry
// log and its two derived caches, mirrored into a human-readable Markdown
// export that is never read back.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/ilm/pkg/journal"
	"tableflip.dev/ilm/pkg/stats"
)

const (
	journalKey  = "journal.json"
	markdownKey = "journal.md"
)

var (
	// ErrCorrupt means the persisted JSON exists but cannot be parsed.
	// Startup must refuse to continue rather than guess at state.
	ErrCorrupt = errors.New("store: journal data is corrupt")
	// ErrJSONSave means the JSON document could not be written.
	ErrJSONSave = errors.New("store: json save failed")
	// ErrMarkdownSave means the JSON half saved but the Markdown mirror
	// did not. The halves are not rolled back; they may diverge until the
	// next successful save.
	ErrMarkdownSave = errors.New("store: markdown save failed")
)

// Document is the persisted shape of the journal. The two caches are
// redundant projections of the entry log and must stay derivable from it.
type Document struct {
	EntryLog   journal.Log    `json:"Entry Log"`
	Subjects   stats.Subjects `json:"All Time Subjects"`
	Statistics stats.Stats    `json:"Statistics"`
}

// NewDocument returns an empty document, the first-run state.
func NewDocument() *Document {
	return &Document{
		EntryLog:   journal.NewLog(),
		Subjects:   stats.Subjects{},
		Statistics: stats.Stats{},
	}
}

// Persistence is the persistence contract for the journal document.
type Persistence interface {
	Document() (*Document, error)
	Save(doc *Document) error
	Backup(dir string) (string, error)
	Restore(zipPath string) (*Document, error)
	BasePath() string
}

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath, err := cfg.BasePath()
	if err != nil {
		return nil, err
	}
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		CacheSizeMax: 1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

func (p *persistence) BasePath() string {
	return p.basePath
}

// Document loads the persisted journal. A missing file is first run, not
// an error; unparseable JSON is fatal and surfaces as ErrCorrupt.
func (p *persistence) Document() (*Document, error) {
	data, err := p.d.Read(journalKey)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return NewDocument(), nil
		}
		return nil, fmt.Errorf("store: read journal: %w", err)
	}
	return decodeDocument(data)
}

func decodeDocument(data []byte) (*Document, error) {
	doc := NewDocument()
	if len(data) == 0 {
		return doc, nil
	}
	if err := json.Unmarshal(data, doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	if doc.EntryLog == nil {
		doc.EntryLog = journal.NewLog()
	}
	if doc.Subjects == nil {
		doc.Subjects = stats.Subjects{}
	}
	if doc.Statistics == nil {
		doc.Statistics = stats.Stats{}
	}
	return doc, nil
}

// Save writes the JSON document, then the Markdown mirror. A failed half
// is reported as a distinguishable error with no rollback of the other.
func (p *persistence) Save(doc *Document) error {
	data, err := json.MarshalIndent(doc, "", "    ")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrJSONSave, err)
	}
	if err := p.d.Write(journalKey, data); err != nil {
		return fmt.Errorf("%w: %v", ErrJSONSave, err)
	}
	if err := p.d.Write(markdownKey, renderMarkdown(doc.EntryLog)); err != nil {
		return fmt.Errorf("%w: %v", ErrMarkdownSave, err)
	}
	return nil
}
