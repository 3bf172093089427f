package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-counters/internal/logger"
	"github.com/MKhiriev/go-counters/internal/store"
	"github.com/MKhiriev/go-counters/models"
)

type counterService struct {
	repo store.CounterRepository

	logger *logger.Logger
}

// NewCounterService returns a CounterService backed by repo. Repository
// sentinel errors are wrapped, so callers match them with errors.Is.
func NewCounterService(repo store.CounterRepository, logger *logger.Logger) CounterService {
	return &counterService{
		repo:   repo,
		logger: logger,
	}
}

func (s *counterService) Create(ctx context.Context, name string) (models.Counter, error) {
	log := logger.FromContext(ctx)

	counter, err := s.repo.CreateCounter(ctx, name)
	if err != nil {
		log.Debug().Err(err).Str("func", "*counterService.Create").Str("name", name).Msg("counter not created")
		return models.Counter{}, fmt.Errorf("error creating counter %q: %w", name, err)
	}

	log.Debug().Str("func", "*counterService.Create").Str("name", name).Msg("counter created")
	return counter, nil
}

func (s *counterService) Get(ctx context.Context, name string) (models.Counter, error) {
	counter, err := s.repo.GetCounter(ctx, name)
	if err != nil {
		return models.Counter{}, fmt.Errorf("error getting counter %q: %w", name, err)
	}

	return counter, nil
}

func (s *counterService) Increment(ctx context.Context, name string) (models.Counter, error) {
	counter, err := s.repo.IncrementCounter(ctx, name)
	if err != nil {
		return models.Counter{}, fmt.Errorf("error incrementing counter %q: %w", name, err)
	}

	return counter, nil
}

func (s *counterService) Delete(ctx context.Context, name string) error {
	log := logger.FromContext(ctx)

	if err := s.repo.DeleteCounter(ctx, name); err != nil {
		log.Debug().Err(err).Str("func", "*counterService.Delete").Str("name", name).Msg("counter not deleted")
		return fmt.Errorf("error deleting counter %q: %w", name, err)
	}

	log.Debug().Str("func", "*counterService.Delete").Str("name", name).Msg("counter deleted")
	return nil
}
