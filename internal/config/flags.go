package config

import (
	"flag"
	"fmt"
	"time"
)

// parseFlags parses the client command-line flags from args.
//
// Flags:
//
//	-d database file path
//	-a catalog API base URL
//	-request-timeout catalog request timeout (e.g. "15s")
//	-catalog-refresh catalog refresh interval (e.g. "10m")
//	-log-file client log file path
//	-c/-config json file path with configs
func parseFlags(args []string) (*StructuredConfig, error) {
	var (
		databaseDSN    string
		adapterAddress string
		requestTimeout time.Duration
		catalogRefresh time.Duration
		logFile        string
		jsonConfigPath string
	)

	fs := flag.NewFlagSet("go-cart-keeper", flag.ContinueOnError)
	fs.StringVar(&databaseDSN, "d", "", "Database file path")
	fs.StringVar(&adapterAddress, "a", "", "Catalog API base URL")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Catalog request timeout (e.g., 15s)")
	fs.DurationVar(&catalogRefresh, "catalog-refresh", 0, "Catalog refresh interval (e.g., 10m)")
	fs.StringVar(&logFile, "log-file", "", "Client log file path")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			LogFile: logFile,
		},
		Storage: Storage{
			DB: DB{DSN: databaseDSN},
		},
		Adapter: Adapter{
			HTTPAddress:    adapterAddress,
			RequestTimeout: requestTimeout,
		},
		Workers: Workers{
			CatalogRefreshInterval: catalogRefresh,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}
