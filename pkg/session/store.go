// Package session persists engine snapshots as a JSON file and watches that
// file for external changes, so a long-running surface picks up snapshots
// written by another process.
package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mamaar/gocalc/pkg/calc"
)

// Store reads and writes one snapshot file.
type Store struct {
	path string
}

// NewStore returns a store for the given file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the snapshot file path.
func (s *Store) Path() string { return s.path }

// Save writes the snapshot atomically: parent directories are created, the
// JSON is written to a temp file in the same directory, then renamed over the
// target so a concurrent reader never sees a partial file.
func (s *Store) Save(snap calc.Snapshot) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	data = append(data, '\n')

	tmp, err := os.CreateTemp(dir, ".session-*.json")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("write snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("replace session file: %w", err)
	}
	return nil
}

// Load reads and decodes the snapshot file. A missing file is returned as-is
// (os.IsNotExist) so callers can treat it as a fresh session.
func (s *Store) Load() (calc.Snapshot, error) {
	var snap calc.Snapshot
	data, err := os.ReadFile(s.path)
	if err != nil {
		return snap, err
	}
	if err := json.Unmarshal(data, &snap); err != nil {
		return snap, fmt.Errorf("decode session file %s: %w", s.path, err)
	}
	return snap, nil
}
