package blobstore

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/fabline/floorsync/internal/config"
	"github.com/fabline/floorsync/internal/logger"
	"github.com/fabline/floorsync/internal/utils"
)

// httpStore uploads photo blobs to the plant API's media endpoint. Sites
// without their own object storage run this backend; the plant decides
// where the bytes land and answers with the serving URL.
type httpStore struct {
	client      *utils.HTTPClient
	uploadURL   string
	tokenSource TokenSource
	logger      *logger.Logger
}

func NewHTTPStore(cfg config.Blobs, tokenSource TokenSource, logger *logger.Logger) (BlobStore, error) {
	if cfg.UploadURL == "" {
		return nil, fmt.Errorf("blob storage backend http requires an upload url")
	}

	timeout := cfg.UploadTimeout
	if timeout <= 0 {
		timeout = time.Minute
	}

	client := utils.NewHTTPClient()
	client.SetTimeout(timeout)

	return &httpStore{
		client:      client,
		uploadURL:   strings.TrimRight(cfg.UploadURL, "/"),
		tokenSource: tokenSource,
		logger:      logger,
	}, nil
}

// Put posts the raw blob to <upload url>/<key>. The key in the path keeps
// retried uploads idempotent on the plant side. The response body may name
// the serving URL; when it does not, the upload target itself is the link.
func (h *httpStore) Put(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	log := logger.FromContext(ctx)

	target := h.uploadURL + "/" + key

	request := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", contentType).
		SetBody(data)
	if h.tokenSource != nil {
		if token := h.tokenSource(); token != "" {
			request.SetAuthToken(token)
		}
	}

	resp, err := request.Post(target)
	if err != nil {
		log.Err(err).
			Str("func", "httpStore.Put").
			Str("key", key).
			Msg("failed to post photo blob")
		return "", fmt.Errorf("failed to post photo blob %s: %w", key, err)
	}

	if resp.IsError() {
		log.Error().
			Str("func", "httpStore.Put").
			Str("key", key).
			Int("status", resp.StatusCode()).
			Msg("media endpoint rejected photo blob")
		return "", fmt.Errorf("media endpoint rejected photo blob %s: http %d", key, resp.StatusCode())
	}

	var uploaded struct {
		URL string `json:"url"`
	}
	if unmarshalErr := json.Unmarshal(resp.Body(), &uploaded); unmarshalErr == nil && uploaded.URL != "" {
		return uploaded.URL, nil
	}

	return target, nil
}
