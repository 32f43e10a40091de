// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Fabline Oy

package blobstore

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/fabline/floorsync/internal/config"
	"github.com/fabline/floorsync/internal/logger"
)

// s3Store uploads photo blobs to an S3 bucket. Plants that run their own
// MinIO set Endpoint; path-style addressing is forced whenever a custom
// endpoint is present because in-plant installs rarely carry wildcard DNS.
type s3Store struct {
	client    *s3.Client
	bucket    string
	prefix    string
	region    string
	endpoint  string
	publicURL string
	logger    *logger.Logger
}

// NewS3Store loads AWS configuration from the default chain (environment,
// shared config, instance profile) and points the client at cfg.Endpoint
// when one is configured. Static credentials from the config take
// precedence over the chain.
func NewS3Store(ctx context.Context, cfg config.Blobs, logger *logger.Logger) (BlobStore, error) {
	if cfg.Bucket == "" {
		return nil, errors.New("blob storage backend s3 requires a bucket")
	}

	region := cfg.Region
	if region == "" {
		region = "us-east-1"
	}

	loadOpts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(region)}
	if cfg.AccessKeyID != "" {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}

	var s3Opts []func(*s3.Options)
	if cfg.Endpoint != "" {
		s3Opts = append(s3Opts, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		})
	}

	return &s3Store{
		client:    s3.NewFromConfig(awsCfg, s3Opts...),
		bucket:    cfg.Bucket,
		prefix:    normalizePrefix(cfg.Prefix),
		region:    region,
		endpoint:  strings.TrimRight(cfg.Endpoint, "/"),
		publicURL: strings.TrimRight(cfg.PublicURL, "/"),
		logger:    logger,
	}, nil
}

func normalizePrefix(prefix string) string {
	if prefix == "" {
		return ""
	}
	return strings.TrimSuffix(prefix, "/") + "/"
}

func (s *s3Store) Put(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	log := logger.FromContext(ctx)

	fullKey := s.prefix + key

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(fullKey),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		log.Err(err).
			Str("func", "s3Store.Put").
			Str("bucket", s.bucket).
			Str("key", fullKey).
			Msg("failed to put object")
		return "", fmt.Errorf("failed to put object %s: %w", fullKey, err)
	}

	return s.url(fullKey), nil
}

// url builds the link a stored object is served from. PublicURL wins when
// configured; a custom endpoint yields the path-style form; plain AWS
// yields the virtual-hosted form.
func (s *s3Store) url(fullKey string) string {
	switch {
	case s.publicURL != "":
		return s.publicURL + "/" + fullKey
	case s.endpoint != "":
		return s.endpoint + "/" + s.bucket + "/" + fullKey
	default:
		return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, fullKey)
	}
}
