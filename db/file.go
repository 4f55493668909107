package db

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// NewFileDB keeps the scoreboard in a JSON file at path.
func NewFileDB(path string) DB {
	return &fileDB{path: path}
}

type fileDB struct {
	path string
}

func (db *fileDB) Read(ctx context.Context) ([]byte, error) {
	b, err := os.ReadFile(db.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error reading %s: %w", db.path, err)
	}
	return b, nil
}

// Write goes through a temp file in the same directory that is renamed over
// the old document once it is fully on disk.
func (db *fileDB) Write(ctx context.Context, doc []byte) error {
	dir, name := filepath.Split(db.path)
	if dir == "" {
		dir = "."
	}

	tmp, err := os.CreateTemp(dir, "."+name+".tmp-*")
	if err != nil {
		return fmt.Errorf("error creating temp file: %w", err)
	}
	defer os.Remove(tmp.Name()) // no-op after a successful rename

	if _, err := tmp.Write(doc); err != nil {
		tmp.Close()
		return fmt.Errorf("error writing temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("error syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("error closing temp file: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("error setting file mode: %w", err)
	}

	if err := os.Rename(tmp.Name(), db.path); err != nil {
		return fmt.Errorf("error replacing %s: %w", db.path, err)
	}
	return nil
}

func (db *fileDB) Close() {}
