package store

import (
	"context"

	"github.com/MKhiriev/go-counters/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// CounterRepository owns the mapping from counter name to value. Every
// implementation must make each operation atomic with respect to the others.
type CounterRepository interface {
	// CreateCounter registers name with value 0. Returns
	// [ErrCounterAlreadyExists] if name is taken.
	CreateCounter(ctx context.Context, name string) (models.Counter, error)
	// GetCounter returns the current value of name or [ErrCounterNotFound].
	GetCounter(ctx context.Context, name string) (models.Counter, error)
	// IncrementCounter adds one to name and returns the new value, or
	// [ErrCounterNotFound]. It never creates a counter.
	IncrementCounter(ctx context.Context, name string) (models.Counter, error)
	// DeleteCounter removes name or returns [ErrCounterNotFound].
	DeleteCounter(ctx context.Context, name string) error
}
