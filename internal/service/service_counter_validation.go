package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-counters/internal/validators"
	"github.com/MKhiriev/go-counters/models"
)

type CounterValidationService struct {
	inner     CounterService
	validator validators.Validator
}

// NewCounterValidationService rejects empty names before they reach the
// registry.
func NewCounterValidationService() CounterServiceWrapper {
	return &CounterValidationService{validator: validators.NewCounterValidator()}
}

func (v *CounterValidationService) Create(ctx context.Context, name string) (models.Counter, error) {
	if err := v.validateCounterName(ctx, name); err != nil {
		return models.Counter{}, err
	}
	return v.inner.Create(ctx, name)
}

func (v *CounterValidationService) Get(ctx context.Context, name string) (models.Counter, error) {
	if err := v.validateCounterName(ctx, name); err != nil {
		return models.Counter{}, err
	}
	return v.inner.Get(ctx, name)
}

func (v *CounterValidationService) Increment(ctx context.Context, name string) (models.Counter, error) {
	if err := v.validateCounterName(ctx, name); err != nil {
		return models.Counter{}, err
	}
	return v.inner.Increment(ctx, name)
}

func (v *CounterValidationService) Delete(ctx context.Context, name string) error {
	if err := v.validateCounterName(ctx, name); err != nil {
		return err
	}
	return v.inner.Delete(ctx, name)
}

func (v *CounterValidationService) Wrap(wrapper CounterService) CounterService {
	v.inner = wrapper
	return v
}

func (v *CounterValidationService) validateCounterName(ctx context.Context, name string) error {
	if err := v.validator.Validate(ctx, name); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidCounterName, err)
	}
	return nil
}
