package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// Local implements Store on the local filesystem, one file per slot.
// This is the default for development and single-box deployments.
type Local struct {
	dataDir string
}

// NewLocal creates a filesystem-backed store rooted at dataDir
// (created if it doesn't exist).
func NewLocal(dataDir string) (*Local, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create store directory: %w", err)
	}

	return &Local{dataDir: dataDir}, nil
}

func (s *Local) path(slot string) string {
	return filepath.Join(s.dataDir, slot+".json")
}

// Load reads a slot's record from disk.
func (s *Local) Load(ctx context.Context, slot string) ([]byte, error) {
	record, err := os.ReadFile(s.path(slot))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrSlotNotFound(slot)
		}
		return nil, fmt.Errorf("failed to read slot %s: %w", slot, err)
	}
	return record, nil
}

// Save writes a slot's record. The write goes through a temp file and
// rename so a crash mid-write leaves the previous record intact.
func (s *Local) Save(ctx context.Context, slot string, record []byte) error {
	tmp := s.path(slot) + ".tmp"
	if err := os.WriteFile(tmp, record, 0644); err != nil {
		return fmt.Errorf("failed to write slot %s: %w", slot, err)
	}
	if err := os.Rename(tmp, s.path(slot)); err != nil {
		return fmt.Errorf("failed to commit slot %s: %w", slot, err)
	}
	return nil
}

// Delete removes a slot's record. Missing records are ignored.
func (s *Local) Delete(ctx context.Context, slot string) error {
	err := os.Remove(s.path(slot))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete slot %s: %w", slot, err)
	}
	return nil
}

// Exists checks whether a slot holds a record.
func (s *Local) Exists(ctx context.Context, slot string) (bool, error) {
	_, err := os.Stat(s.path(slot))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to stat slot %s: %w", slot, err)
	}
	return true, nil
}
