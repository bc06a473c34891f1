// Package workers runs the server's background jobs.
// It defines the Worker interface and a Workers aggregate that starts and
// stops every job together with the HTTP server.
package workers

import "context"

// Worker is a background job. Run starts the job and returns immediately;
// the job keeps going until ctx is cancelled or Stop is called.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run(ctx context.Context) {
//	    go func() { /* loop until ctx.Done() */ }()
//	}
//
//	func (w *MyWorker) Stop() {}
type Worker interface {
	Run(ctx context.Context)

	// Stop halts the job and blocks until it has exited. Safe to call when
	// the job is not running.
	Stop()
}

// ResetTokenCleaner removes password reset tokens whose expiry has passed.
// It is satisfied by service.AuthService.
type ResetTokenCleaner interface {
	ClearExpiredResetTokens(ctx context.Context) (int64, error)
}
