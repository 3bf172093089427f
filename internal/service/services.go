package service

import (
	"fmt"

	"github.com/MKhiriev/go-counters/internal/config"
	"github.com/MKhiriev/go-counters/internal/logger"
	"github.com/MKhiriev/go-counters/internal/metrics"
	"github.com/MKhiriev/go-counters/internal/store"
)

type Services struct {
	CounterService CounterService
	AppInfoService AppInfoService
}

// NewServices composes the service layer. Counter calls pass through the
// metrics decorator first, then validation, then reach the repository.
func NewServices(storages *store.Storages, cfg *config.StructuredConfig, collector *metrics.Collector, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	counters := NewCounterService(storages.CounterRepository, logger)
	for _, w := range []CounterServiceWrapper{
		NewCounterValidationService(),
		NewCounterMetricsService(collector),
	} {
		counters = w.Wrap(counters)
	}

	return &Services{
		CounterService: counters,
		AppInfoService: appInfo,
	}, nil
}
