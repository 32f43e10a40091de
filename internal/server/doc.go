// Package server runs the agent's local HTTP control surface.
//
// It provides orchestration for the HTTP server lifecycle, including
// startup, signal handling, and graceful shutdown. The server binds to
// the loopback address from configuration; the operator webview is its
// only intended client.
package server
