package persistence

import (
	"context"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/spec-kit/skillcircuit/internal/config"
)

// FileKV persists each key as a JSON file under a data directory. It is the
// default backend and requires no external services.
type FileKV struct {
	dir string
}

// NewFileKV ensures the data directory exists and returns the store.
func NewFileKV(cfg config.StorageConfig, logger *zap.Logger) (*FileKV, error) {
	dir := cfg.DataDir
	if dir == "" {
		dir = "data"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	logger.Info("using file storage", zap.String("dir", dir))
	return &FileKV{dir: dir}, nil
}

func (f *FileKV) path(key string) string {
	return filepath.Join(f.dir, key+".json")
}

// Get reads the blob for key, or ErrKeyNotFound.
func (f *FileKV) Get(_ context.Context, key string) ([]byte, error) {
	data, err := os.ReadFile(f.path(key))
	if os.IsNotExist(err) {
		return nil, ErrKeyNotFound
	}
	return data, err
}

// Set writes the blob via a temp file rename so readers never observe a
// partial write.
func (f *FileKV) Set(_ context.Context, key string, value []byte) error {
	tmp := f.path(key) + ".tmp"
	if err := os.WriteFile(tmp, value, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, f.path(key))
}

// Delete removes the key; deleting an absent key is not an error.
func (f *FileKV) Delete(_ context.Context, key string) error {
	err := os.Remove(f.path(key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// Ping verifies the data directory is still accessible.
func (f *FileKV) Ping(_ context.Context) error {
	_, err := os.Stat(f.dir)
	return err
}

// Close is a no-op for file storage.
func (f *FileKV) Close() {}
