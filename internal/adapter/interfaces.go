// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client-side transport for the counters
// server.
//
// [CounterAdapter] decouples the CLI from the protocol. The package ships an
// HTTP/REST implementation ([NewHTTPCounterAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] regardless of transport
// (e.g. [ErrNotFound] for 404, [ErrConflict] for 409).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-counters/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// CounterAdapter talks to the counters server on behalf of the CLI.
type CounterAdapter interface {
	// CreateCounter registers name with value 0. Returns [ErrConflict]
	// (wrapped) if the counter already exists.
	CreateCounter(ctx context.Context, name string) (models.Counter, error)

	// GetCounter returns the current value of name, or [ErrNotFound].
	GetCounter(ctx context.Context, name string) (models.Counter, error)

	// IncrementCounter adds one to name and returns the new value, or
	// [ErrNotFound].
	IncrementCounter(ctx context.Context, name string) (models.Counter, error)

	// DeleteCounter removes name, or returns [ErrNotFound].
	DeleteCounter(ctx context.Context, name string) error

	// GetServerVersion returns the version reported by the server.
	GetServerVersion(ctx context.Context) (string, error)
}
