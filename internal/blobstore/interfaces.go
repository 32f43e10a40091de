// Package blobstore uploads queued photo blobs to whichever media storage
// a site runs: an S3/MinIO bucket, the plant API's media endpoint, or a
// plain directory on development rigs. Every backend implements
// [BlobStore]; the sync engine does not care which one is wired.
package blobstore

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/blob_store_mock.go -package=mock

// BlobStore persists one photo blob under a caller-chosen key and returns
// the URL the blob is reachable at afterwards. Keys are stable per photo,
// so a retried Put overwrites the same object instead of creating a
// sibling copy.
type BlobStore interface {
	Put(ctx context.Context, key string, data []byte, contentType string) (url string, err error)
}

// TokenSource supplies the current bearer token for backends that talk to
// the plant API. An empty string means no session is established yet.
type TokenSource func() string
