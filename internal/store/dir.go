package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// Dir keeps one snapshot file per session under a directory, named
// <id>.json. It is the on-disk fallback consulted when the primary store
// misses.
type Dir struct {
	path string
}

// NewDir stores snapshots under path, creating it on first save.
func NewDir(path string) *Dir {
	return &Dir{path: path}
}

func (d *Dir) Save(_ context.Context, id string, data []byte) error {
	if err := os.MkdirAll(d.path, 0o755); err != nil {
		return fmt.Errorf("store: create %s: %w", d.path, err)
	}
	file := filepath.Join(d.path, id+".json")
	if err := os.WriteFile(file, data, 0o644); err != nil {
		return fmt.Errorf("store: write %s: %w", file, err)
	}
	return nil
}

func (d *Dir) Load(_ context.Context, id string) ([]byte, error) {
	file := filepath.Join(d.path, id+".json")
	data, err := os.ReadFile(file)
	if os.IsNotExist(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("store: read %s: %w", file, err)
	}
	return data, nil
}
