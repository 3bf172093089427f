package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-counters/internal/metrics"
	"github.com/MKhiriev/go-counters/internal/store"
	"github.com/MKhiriev/go-counters/models"
)

type CounterMetricsService struct {
	inner     CounterService
	collector *metrics.Collector
}

// NewCounterMetricsService records the outcome of every call and keeps the
// active counters gauge in step with successful creates and deletes.
func NewCounterMetricsService(collector *metrics.Collector) CounterServiceWrapper {
	return &CounterMetricsService{
		collector: collector,
	}
}

func (m *CounterMetricsService) Create(ctx context.Context, name string) (models.Counter, error) {
	counter, err := m.inner.Create(ctx, name)
	m.collector.RecordOperation("create", resultFromError(err))
	if err == nil {
		m.collector.CounterCreated()
	}
	return counter, err
}

func (m *CounterMetricsService) Get(ctx context.Context, name string) (models.Counter, error) {
	counter, err := m.inner.Get(ctx, name)
	m.collector.RecordOperation("get", resultFromError(err))
	return counter, err
}

func (m *CounterMetricsService) Increment(ctx context.Context, name string) (models.Counter, error) {
	counter, err := m.inner.Increment(ctx, name)
	m.collector.RecordOperation("increment", resultFromError(err))
	return counter, err
}

func (m *CounterMetricsService) Delete(ctx context.Context, name string) error {
	err := m.inner.Delete(ctx, name)
	m.collector.RecordOperation("delete", resultFromError(err))
	if err == nil {
		m.collector.CounterDeleted()
	}
	return err
}

func (m *CounterMetricsService) Wrap(wrapper CounterService) CounterService {
	m.inner = wrapper
	return m
}

func resultFromError(err error) string {
	switch {
	case err == nil:
		return metrics.ResultOK
	case errors.Is(err, store.ErrCounterAlreadyExists):
		return metrics.ResultConflict
	case errors.Is(err, store.ErrCounterNotFound):
		return metrics.ResultNotFound
	case errors.Is(err, ErrInvalidCounterName):
		return metrics.ResultInvalid
	default:
		return metrics.ResultError
	}
}
