// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-counters/models"
)

// counterRegistry is the in-process implementation of [CounterRepository].
// A single mutex guards the map, so a create can never interleave with a
// delete or increment of the same name.
type counterRegistry struct {
	mu       sync.Mutex
	counters map[string]int64
}

// NewCounterRegistry returns an empty in-memory [CounterRepository].
func NewCounterRegistry() CounterRepository {
	return &counterRegistry{
		counters: make(map[string]int64),
	}
}

func (r *counterRegistry) CreateCounter(_ context.Context, name string) (models.Counter, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.counters[name]; ok {
		return models.Counter{}, ErrCounterAlreadyExists
	}
	r.counters[name] = 0

	return models.Counter{Name: name, Value: 0}, nil
}

func (r *counterRegistry) GetCounter(_ context.Context, name string) (models.Counter, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	value, ok := r.counters[name]
	if !ok {
		return models.Counter{}, ErrCounterNotFound
	}

	return models.Counter{Name: name, Value: value}, nil
}

func (r *counterRegistry) IncrementCounter(_ context.Context, name string) (models.Counter, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	value, ok := r.counters[name]
	if !ok {
		return models.Counter{}, ErrCounterNotFound
	}
	value++
	r.counters[name] = value

	return models.Counter{Name: name, Value: value}, nil
}

func (r *counterRegistry) DeleteCounter(_ context.Context, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.counters[name]; !ok {
		return ErrCounterNotFound
	}
	delete(r.counters, name)

	return nil
}
