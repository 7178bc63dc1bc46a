// Package workers provides abstractions for managing and running
// background workers in the client.
// It defines the Worker interface and a Workers aggregate that starts and
// stops multiple workers in a unified way.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Run must not block: long-running work belongs in goroutines owned by the
// worker, bound to ctx. Stop waits for those goroutines to exit.
//
// Example implementation:
//
//	type MyWorker struct{ job service.ClientCatalogRefreshJob }
//
//	func (w *MyWorker) Run(ctx context.Context) { w.job.Start(ctx, time.Minute) }
//	func (w *MyWorker) Stop()                   { w.job.Stop() }
type Worker interface {
	Run(ctx context.Context)
	Stop()
}
