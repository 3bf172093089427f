package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-counters/internal/adapter"
	"github.com/MKhiriev/go-counters/internal/client"
	"github.com/MKhiriev/go-counters/internal/config"
	"github.com/MKhiriev/go-counters/internal/logger"
	"github.com/MKhiriev/go-counters/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	os.Exit(run())
}

func run() int {
	fmt.Fprint(os.Stderr, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	log := logger.NewClientLogger("go-counters-client")
	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		log.Error().Err(err).Msg("error getting configs")
		return 1
	}

	configured, err := log.WithConfig(cfg.Log)
	if err != nil {
		log.Error().Err(err).Msg("error configuring logger")
		return 1
	}
	log = configured

	counterAdapter, err := adapter.NewHTTPCounterAdapter(cfg.Adapter, log)
	if err != nil {
		log.Error().Err(err).Msg("create counter adapter")
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app := client.NewApp(counterAdapter, os.Stdout, log)
	if err = app.Run(ctx, cfg.Command); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	return 0
}
