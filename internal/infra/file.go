package infra

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// FileSnapshotStore keeps the snapshot in one local JSON file. This is the
// default backend for a single-tenant install.
type FileSnapshotStore struct {
	path string
}

func NewFileSnapshotStore(path string) *FileSnapshotStore {
	return &FileSnapshotStore{path: path}
}

func (s *FileSnapshotStore) Load(_ context.Context) ([]byte, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, ErrNoSnapshot
	}
	if err != nil {
		return nil, fmt.Errorf("snapshot file: %w", err)
	}
	return data, nil
}

// Save writes to a temp file in the same directory and renames it over the
// target, so a crash mid-write never leaves a truncated snapshot behind.
func (s *FileSnapshotStore) Save(_ context.Context, data []byte) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("snapshot file: create dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, StorageKey+"-*.tmp")
	if err != nil {
		return fmt.Errorf("snapshot file: temp: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("snapshot file: write: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("snapshot file: close: %w", err)
	}
	return os.Rename(tmp.Name(), s.path)
}

var _ SnapshotStore = (*FileSnapshotStore)(nil)
