package blobstore

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/fabline/floorsync/internal/config"
	"github.com/fabline/floorsync/internal/logger"
)

// New constructs the blob storage backend named in cfg.Backend.
// tokenSource is only consulted by the "http" backend; the other backends
// ignore it.
func New(ctx context.Context, cfg config.Blobs, tokenSource TokenSource, logger *logger.Logger) (BlobStore, error) {
	switch strings.ToLower(cfg.Backend) {
	case "s3":
		return NewS3Store(ctx, cfg, logger)
	case "http":
		return NewHTTPStore(cfg, tokenSource, logger)
	case "dir", "":
		return NewDirStore(cfg.Dir, logger)
	default:
		return nil, fmt.Errorf("unknown blob storage backend %q", cfg.Backend)
	}
}

// Key builds the storage key for one queued photo. The photo UUID keeps
// the key stable across retries, so a re-upload of the same photo lands
// on the same object. contentType must be the type of the bytes actually
// uploaded, which [Preprocess] may have changed from the capture-time one.
func Key(actionID int64, photoID, filename, contentType string) string {
	return fmt.Sprintf("actions/%d/%s.%s", actionID, photoID, keyExtension(filename, contentType))
}

// keyExtension maps the upload MIME type to an extension and falls back
// to the capture-time file extension for types it does not know.
func keyExtension(filename, contentType string) string {
	switch strings.ToLower(contentType) {
	case "image/jpeg":
		return "jpg"
	case "image/png":
		return "png"
	case "image/gif":
		return "gif"
	case "image/webp":
		return "webp"
	}

	if ext := strings.TrimPrefix(strings.ToLower(path.Ext(filename)), "."); ext != "" {
		return ext
	}

	return "bin"
}
