// Package http implements the agent's local control surface.
//
// It exposes route wiring, request handlers, and middleware for the REST
// API that the terminal's webview and diagnostic tools talk to. The
// surface binds to loopback; every operation delegates to the service
// facade, so capture and sync semantics live below this layer.
// Cross-cutting concerns such as request tracing, access logging, and
// response compression are handled here before requests reach the facade.
package http
