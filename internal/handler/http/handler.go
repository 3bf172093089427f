package http

import (
	"github.com/MKhiriev/go-counters/internal/config"
	"github.com/MKhiriev/go-counters/internal/logger"
	"github.com/MKhiriev/go-counters/internal/metrics"
	"github.com/MKhiriev/go-counters/internal/service"
)

type Handler struct {
	services *service.Services
	metrics  *metrics.Collector
	cfg      config.Server

	logger *logger.Logger
}

func NewHandler(services *service.Services, collector *metrics.Collector, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		metrics:  collector,
		cfg:      cfg,
		logger:   logger,
	}
}
