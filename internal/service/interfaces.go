package service

import (
	"context"

	"github.com/MKhiriev/go-counters/models"
)

// CounterService is the application-facing view of the counter registry.
type CounterService interface {
	Create(ctx context.Context, name string) (models.Counter, error)
	Get(ctx context.Context, name string) (models.Counter, error)
	Increment(ctx context.Context, name string) (models.Counter, error)
	Delete(ctx context.Context, name string) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// CounterServiceWrapper defines middleware composition for CounterService.
// Implementations wrap an existing CounterService to add behavior such as
// validation or metrics.
type CounterServiceWrapper interface {
	Wrap(CounterService) CounterService // returns a decorated CounterService applying additional behavior
}
