// Package workers runs the background jobs that live as long as the
// server process.
package workers

import "context"

// Worker is a long-running background job. Run blocks until ctx is done
// and returns a non-nil error only on a failure that must stop the
// process.
type Worker interface {
	Run(ctx context.Context) error
}

// WorkerFunc adapts a plain function to Worker.
type WorkerFunc func(ctx context.Context) error

func (f WorkerFunc) Run(ctx context.Context) error {
	return f(ctx)
}
