// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Fabline Oy

package blobstore

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"strings"

	"github.com/disintegration/imaging"
)

// Preprocess downscales an oversized photo before upload. Images whose
// longest edge exceeds maxEdgePx are resized to fit inside a
// maxEdgePx square and re-encoded as JPEG; everything already within
// bounds passes through byte-identical. Non-image blobs and a
// non-positive maxEdgePx also pass through untouched.
//
// Orientation metadata is not interpreted here; the plant gallery
// handles rotation on display.
func Preprocess(data []byte, contentType string, maxEdgePx int) ([]byte, string, error) {
	if maxEdgePx <= 0 || !strings.HasPrefix(strings.ToLower(contentType), "image/") {
		return data, contentType, nil
	}

	// DecodeConfig читает только заголовок, полное декодирование
	// откладывается до тех пор, пока не решено уменьшать.
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return data, contentType, nil
	}

	if cfg.Width <= maxEdgePx && cfg.Height <= maxEdgePx {
		return data, contentType, nil
	}

	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode photo: %w", err)
	}

	resized := imaging.Fit(img, maxEdgePx, maxEdgePx, imaging.Lanczos)

	buf := &bytes.Buffer{}
	if err := imaging.Encode(buf, resized, imaging.JPEG, imaging.JPEGQuality(85)); err != nil {
		return nil, "", fmt.Errorf("failed to encode downscaled photo: %w", err)
	}

	return buf.Bytes(), "image/jpeg", nil
}
