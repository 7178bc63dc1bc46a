package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-cart-keeper/internal/logger"
)

const defaultCatalogRefreshInterval = 10 * time.Minute

type clientCatalogRefreshJob struct {
	catalogService ClientCatalogService

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewClientCatalogRefreshJob creates a job that calls catalogService.Refresh
// on a ticker. The job is idle until Start is called.
func NewClientCatalogRefreshJob(catalogService ClientCatalogService) ClientCatalogRefreshJob {
	return &clientCatalogRefreshJob{catalogService: catalogService}
}

// Start implements ClientCatalogRefreshJob. It stops any previously running
// job, then launches a background goroutine that calls Refresh every interval.
// The goroutine exits when ctx is cancelled or Stop is called.
func (j *clientCatalogRefreshJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = defaultCatalogRefreshInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				// errors are logged and counted by the service; the next tick retries
				if _, err := j.catalogService.Refresh(jobCtx); err != nil {
					logger.FromContext(jobCtx).Warn().Err(err).
						Str("func", "clientCatalogRefreshJob.Start").
						Msg("scheduled catalog refresh failed")
				}
			}
		}
	}()
}

// Stop implements ClientCatalogRefreshJob. It cancels the background
// goroutine's context and blocks until the goroutine has fully exited. Safe
// to call when the job is not running.
func (j *clientCatalogRefreshJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
