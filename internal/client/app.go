package client

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-cart-keeper/internal/config"
	"github.com/MKhiriev/go-cart-keeper/internal/logger"
	"github.com/MKhiriev/go-cart-keeper/internal/service"
	"github.com/MKhiriev/go-cart-keeper/internal/store"
	"github.com/MKhiriev/go-cart-keeper/internal/workers"
)

var ErrNilDependency = errors.New("client: nil dependency")

// UI is the interactive front end driven by App.
type UI interface {
	Run(ctx context.Context) error
}

type App struct {
	storages *store.ClientStorages
	services *service.ClientServices
	ui       UI
	workers  *workers.Workers
	logger   *logger.Logger
}

var _ Client = (*App)(nil)

func NewApp(storages *store.ClientStorages, services *service.ClientServices, ui UI, cfg config.ClientWorkers, log *logger.Logger) (*App, error) {
	if storages == nil || services == nil || ui == nil {
		return nil, ErrNilDependency
	}
	if log == nil {
		log = logger.Nop()
	}

	return &App{
		storages: storages,
		services: services,
		ui:       ui,
		workers: workers.NewWorkers(
			workers.NewCatalogRefreshWorker(services.CatalogService, services.CatalogRefreshJob, cfg.CatalogRefreshInterval, log),
		),
		logger: log,
	}, nil
}

// Run mounts the cart context, starts background workers and blocks in the
// UI. Storages are closed on return.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return a.run(a.logger.WithContext(ctx))
}

func (a *App) run(ctx context.Context) error {
	defer func() {
		if err := a.storages.Close(); err != nil {
			a.logger.Err(err).Str("func", "App.Run").Msg("error closing storages")
		}
	}()

	// an unreadable cart is shown as empty and retried on the next change
	if err := a.services.CartContext.Mount(ctx); err != nil {
		a.logger.Warn().Err(err).Str("func", "App.Run").Msg("initial cart load failed")
	}
	defer a.services.CartContext.Unmount()

	a.workers.Run(ctx)
	defer a.workers.Stop()

	a.logger.Info().Str("func", "App.Run").Msg("client started")
	return a.ui.Run(ctx)
}
