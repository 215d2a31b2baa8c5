// Package password gates destructive operations behind a stored password.
// This is a hash-and-compare convenience for a single-user desktop tool,
// not a security boundary.
package password

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"strings"
)

const fileName = "password.sha256"

// Gate verifies the journal password stored under the data directory.
type Gate struct {
	path string
}

// New returns a gate rooted at the store's base path.
func New(basePath string) *Gate {
	return &Gate{path: filepath.Join(basePath, fileName)}
}

func hash(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// IsSet reports whether a password has been stored.
func (g *Gate) IsSet() bool {
	info, err := os.Stat(g.path)
	return err == nil && info.Size() > 0
}

// Set validates and stores a new password.
func (g *Gate) Set(password, confirm string) error {
	if len(password) < 6 {
		return errors.New("password: needs to be at least 6 characters long")
	}
	if password != confirm {
		return errors.New("password: entries do not match")
	}
	if err := os.MkdirAll(filepath.Dir(g.path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(g.path, []byte(hash(password)), 0o600)
}

// Verify reports whether the password matches the stored hash. A missing
// or unreadable file verifies nothing.
func (g *Gate) Verify(password string) bool {
	data, err := os.ReadFile(g.path)
	if err != nil {
		return false
	}
	return strings.TrimSpace(string(data)) == hash(password)
}
