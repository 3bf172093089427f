package handler

import (
	"github.com/MKhiriev/go-counters/internal/config"
	"github.com/MKhiriev/go-counters/internal/handler/http"
	"github.com/MKhiriev/go-counters/internal/logger"
	"github.com/MKhiriev/go-counters/internal/metrics"
	"github.com/MKhiriev/go-counters/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, collector *metrics.Collector, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}
	if collector == nil {
		return nil, errNoMetricsCollector
	}

	return &Handlers{
		HTTP: http.NewHandler(services, collector, cfg, logger),
	}, nil
}
