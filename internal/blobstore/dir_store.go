package blobstore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fabline/floorsync/internal/logger"
)

// dirStore drops photo blobs into a local directory. Used on development
// machines and in air-gapped acceptance rigs where no media storage is
// reachable at all.
type dirStore struct {
	baseDir string
	logger  *logger.Logger
}

func NewDirStore(dir string, logger *logger.Logger) (BlobStore, error) {
	if dir == "" {
		dir = "photo-outbox"
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create blob directory %s: %w", dir, err)
	}

	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve blob directory %s: %w", dir, err)
	}

	return &dirStore{baseDir: filepath.Clean(absDir), logger: logger}, nil
}

func (d *dirStore) Put(ctx context.Context, key string, data []byte, _ string) (string, error) {
	log := logger.FromContext(ctx)

	path, err := d.safePath(key)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		log.Err(err).
			Str("func", "dirStore.Put").
			Str("key", key).
			Msg("failed to create blob subdirectory")
		return "", fmt.Errorf("failed to create blob subdirectory for %s: %w", key, err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		log.Err(err).
			Str("func", "dirStore.Put").
			Str("key", key).
			Msg("failed to write blob file")
		return "", fmt.Errorf("failed to write blob file %s: %w", path, err)
	}

	return "file://" + path, nil
}

// safePath keeps resolved keys inside the base directory.
func (d *dirStore) safePath(key string) (string, error) {
	resolved := filepath.Clean(filepath.Join(d.baseDir, filepath.Clean(key)))
	if resolved != d.baseDir && !strings.HasPrefix(resolved, d.baseDir+string(os.PathSeparator)) {
		return "", fmt.Errorf("blob key %q escapes the storage directory", key)
	}
	return resolved, nil
}
