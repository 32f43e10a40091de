// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Fabline Oy

// Package client implements the floor agent's application runtime.
//
// It wires the connectivity monitor, background synchronization jobs,
// the realtime bridge, the local control server and the optional
// diagnostic dashboard into a single process lifecycle.
package client
