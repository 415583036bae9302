package server

import "context"

// Server defines the lifecycle contract of the process's transport servers.
type Server interface {
	// RunServer serves until ctx is done or a listener fails, then drains
	// every server. A listener failure is returned; a cancelled ctx is not
	// an error.
	RunServer(ctx context.Context) error

	// Shutdown gracefully stops the servers and frees their resources.
	Shutdown(ctx context.Context) error
}
