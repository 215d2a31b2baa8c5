package store

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

const backupMember = "journal.json"

// Backup zips the persisted JSON document into dir and returns the
// archive path. The Markdown mirror is regenerable and is not archived.
func (p *persistence) Backup(dir string) (string, error) {
	data, err := p.d.Read(journalKey)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", errors.New("store: nothing to back up")
		}
		return "", fmt.Errorf("store: read journal: %w", err)
	}

	name := fmt.Sprintf("ilm-backup-%s.zip", time.Now().Format("20060102-150405"))
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("store: create backup: %w", err)
	}
	defer f.Close()

	zw := zip.NewWriter(f)
	w, err := zw.Create(backupMember)
	if err != nil {
		return "", fmt.Errorf("store: create backup member: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return "", fmt.Errorf("store: write backup: %w", err)
	}
	if err := zw.Close(); err != nil {
		return "", fmt.Errorf("store: close backup: %w", err)
	}
	return path, nil
}

// Restore reads a backup archive and returns the document it holds. The
// caller decides whether to install and persist it.
func (p *persistence) Restore(zipPath string) (*Document, error) {
	zr, err := zip.OpenReader(zipPath)
	if err != nil {
		return nil, fmt.Errorf("store: open backup: %w", err)
	}
	defer zr.Close()

	for _, member := range zr.File {
		if member.Name != backupMember {
			continue
		}
		rc, err := member.Open()
		if err != nil {
			return nil, fmt.Errorf("store: open backup member: %w", err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("store: read backup member: %w", err)
		}
		if len(data) == 0 || string(data) == "{}" {
			return nil, errors.New("store: backup file is empty")
		}
		doc, err := decodeDocument(data)
		if err != nil {
			return nil, err
		}
		return doc, nil
	}
	return nil, errors.New("store: backup archive does not contain journal data")
}
