package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// FileBackend keeps each collection in <dir>/<collection>.json.
type FileBackend struct {
	dir string
}

func NewFileBackend(dir string) (*FileBackend, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return &FileBackend{dir: dir}, nil
}

func (b *FileBackend) path(collection string) string {
	return filepath.Join(b.dir, collection+".json")
}

func (b *FileBackend) Load(_ context.Context, collection string) ([]byte, error) {
	data, err := os.ReadFile(b.path(collection))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	return data, nil
}

// Save writes through a temp file and renames it over the old document so a
// crash never leaves a half-written collection behind.
func (b *FileBackend) Save(_ context.Context, collection string, data []byte) error {
	tmp, err := os.CreateTemp(b.dir, collection+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Chmod(0600); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	return os.Rename(tmpName, b.path(collection))
}

func (b *FileBackend) Close() error {
	return nil
}
