// Package workers provides the lifecycle plumbing for the agent's
// background jobs.
// It defines the Worker interface and a Workers aggregate that starts
// and stops a fixed set of workers in a unified way.
package workers

import "context"

// Worker is the interface that must be implemented by any background job.
// Start launches the job's goroutine and returns immediately; Stop blocks
// until that goroutine has fully exited.
//
// Implementations are expected to bind their goroutine to ctx so that
// cancelling it is equivalent to calling Stop.
//
// Example implementation:
//
//	type MyJob struct{}
//
//	func (j *MyJob) Start(ctx context.Context) {
//	    // launch background processing bound to ctx
//	}
//
//	func (j *MyJob) Stop() {
//	    // wait for the goroutine to exit
//	}
type Worker interface {
	Start(ctx context.Context)
	Stop()
}
