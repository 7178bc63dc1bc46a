// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-cart-keeper/internal/logger"
	"github.com/MKhiriev/go-cart-keeper/internal/service"
)

// CatalogRefreshWorker fills the product cache once at startup and then
// keeps it fresh through the periodic refresh job.
type CatalogRefreshWorker struct {
	catalog  service.ClientCatalogService
	job      service.ClientCatalogRefreshJob
	interval time.Duration
	logger   *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewCatalogRefreshWorker(catalog service.ClientCatalogService, job service.ClientCatalogRefreshJob, interval time.Duration, log *logger.Logger) *CatalogRefreshWorker {
	if log == nil {
		log = logger.Nop()
	}
	return &CatalogRefreshWorker{
		catalog:  catalog,
		job:      job,
		interval: interval,
		logger:   log,
	}
}

// Run starts the initial refresh in the background and then the periodic job.
// A failed initial refresh is logged only; the cached catalog from the
// previous run stays usable.
func (w *CatalogRefreshWorker) Run(ctx context.Context) {
	w.mu.Lock()
	ctx, cancel := context.WithCancel(w.logger.WithContext(ctx))
	w.cancel = cancel
	w.wg.Add(1)
	w.mu.Unlock()

	go func() {
		defer w.wg.Done()

		n, err := w.catalog.Refresh(ctx)
		if err != nil {
			w.logger.Warn().Err(err).Str("func", "CatalogRefreshWorker.Run").Msg("initial catalog refresh failed")
		} else {
			w.logger.Info().Str("func", "CatalogRefreshWorker.Run").Int("products", n).Msg("initial catalog refresh done")
		}

		w.job.Start(ctx, w.interval)
	}()
}

// Stop cancels the initial refresh if it is still running, waits for it and
// stops the job.
func (w *CatalogRefreshWorker) Stop() {
	w.mu.Lock()
	cancel := w.cancel
	w.cancel = nil
	w.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	w.wg.Wait()
	w.job.Stop()
}
