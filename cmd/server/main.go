package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-counters/internal/config"
	"github.com/MKhiriev/go-counters/internal/handler"
	"github.com/MKhiriev/go-counters/internal/logger"
	"github.com/MKhiriev/go-counters/internal/metrics"
	"github.com/MKhiriev/go-counters/internal/server"
	"github.com/MKhiriev/go-counters/internal/service"
	"github.com/MKhiriev/go-counters/internal/store"
	"github.com/MKhiriev/go-counters/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo)

	log := logger.NewLogger("go-counters-server")
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	// an injected build version replaces the built-in default, APP_VERSION still wins
	if buildInfo.HasVersion() && os.Getenv("APP_VERSION") == "" {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	configured, err := log.WithConfig(cfg.Log)
	if err != nil {
		log.Fatal().Err(err).Msg("error configuring logger")
	}
	log = configured

	log.Debug().Any("config", cfg).Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	collector := metrics.NewCollector()

	services, err := service.NewServices(storages, cfg, collector, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, collector, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(); err != nil {
		log.Err(err).Msg("server stopped with error")
		return
	}
}
