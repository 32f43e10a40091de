package blobstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fabline/floorsync/internal/config"
	"github.com/fabline/floorsync/internal/logger"
)

// ── ключи объектов ──

func TestKey_BuildsStableKeys(t *testing.T) {
	tests := []struct {
		name        string
		filename    string
		contentType string
		want        string
	}{
		{
			name:        "jpeg content type",
			filename:    "IMG_0042.jpg",
			contentType: "image/jpeg",
			want:        "actions/42/0198c5aa-7d2e.jpg",
		},
		{
			name:        "png content type wins over filename",
			filename:    "scan.tiff",
			contentType: "image/png",
			want:        "actions/42/0198c5aa-7d2e.png",
		},
		{
			name:        "unknown content type falls back to filename",
			filename:    "IMG_0042.HEIC",
			contentType: "image/heic",
			want:        "actions/42/0198c5aa-7d2e.heic",
		},
		{
			name:        "nothing to derive from",
			filename:    "",
			contentType: "application/octet-stream",
			want:        "actions/42/0198c5aa-7d2e.bin",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Key(42, "0198c5aa-7d2e", tt.filename, tt.contentType)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestKey_SameInputsSameKey(t *testing.T) {
	// Ретрай загрузки должен попасть в тот же объект.
	first := Key(7, "0198c5aa-7d2e", "a.jpg", "image/jpeg")
	second := Key(7, "0198c5aa-7d2e", "a.jpg", "image/jpeg")
	assert.Equal(t, first, second)
}

// ── выбор бэкенда ──

func TestNew_SelectsBackendByName(t *testing.T) {
	ctx := context.Background()

	t.Run("dir", func(t *testing.T) {
		store, err := New(ctx, config.Blobs{Backend: "dir", Dir: t.TempDir()}, nil, logger.Nop())
		require.NoError(t, err)
		assert.IsType(t, &dirStore{}, store)
	})

	t.Run("empty backend defaults to dir", func(t *testing.T) {
		store, err := New(ctx, config.Blobs{Dir: t.TempDir()}, nil, logger.Nop())
		require.NoError(t, err)
		assert.IsType(t, &dirStore{}, store)
	})

	t.Run("http", func(t *testing.T) {
		store, err := New(ctx, config.Blobs{Backend: "http", UploadURL: "http://plant.local/media"}, nil, logger.Nop())
		require.NoError(t, err)
		assert.IsType(t, &httpStore{}, store)
	})

	t.Run("s3 without bucket", func(t *testing.T) {
		_, err := New(ctx, config.Blobs{Backend: "s3"}, nil, logger.Nop())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "bucket")
	})

	t.Run("unknown backend", func(t *testing.T) {
		_, err := New(ctx, config.Blobs{Backend: "ftp"}, nil, logger.Nop())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown blob storage backend")
	})
}
