package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-cart-keeper/internal/adapter"
	"github.com/MKhiriev/go-cart-keeper/internal/client"
	"github.com/MKhiriev/go-cart-keeper/internal/config"
	"github.com/MKhiriev/go-cart-keeper/internal/events"
	"github.com/MKhiriev/go-cart-keeper/internal/logger"
	"github.com/MKhiriev/go-cart-keeper/internal/service"
	"github.com/MKhiriev/go-cart-keeper/internal/store"
	"github.com/MKhiriev/go-cart-keeper/internal/tui"
	"github.com/MKhiriev/go-cart-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewLogger("go-cart-client").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger("go-cart-client", cfg.App.LogFile)

	catalogAdapter, err := adapter.NewHTTPCatalogAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create catalog adapter")
	}

	storages, err := store.NewClientStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		if errors.Is(err, store.ErrStorageUnavailable) {
			log.Fatal().Err(err).Str("dsn", cfg.Storage.DB.DSN).Msg("local storage unavailable")
		}
		log.Fatal().Err(err).Msg("create local storage")
	}

	services := service.NewClientServices(storages, catalogAdapter, events.NewBus(log), log)

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	ui, err := tui.New(services, buildInfo, storages.IsRetryable, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(storages, services, ui, cfg.Workers, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
