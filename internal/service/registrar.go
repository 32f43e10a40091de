package service

import "context"

// noopRegistrar is the fallback for hosts without a platform wake
// scheduler: it reports itself unavailable and registers nothing.
type noopRegistrar struct{}

func (noopRegistrar) Available() bool { return false }

func (noopRegistrar) Register(context.Context) error { return nil }

// NewNoopRegistrar returns the registrar used when the host offers no
// background wake mechanism. The reconnect trigger and the periodic
// sync job cover those deployments instead.
func NewNoopRegistrar() BackgroundRegistrar {
	return noopRegistrar{}
}
