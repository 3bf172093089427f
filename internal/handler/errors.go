// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

var (
	// errNoHandlersAreCreated is returned by NewHandlers when the server
	// configuration has no HTTP address, resulting in no transport handlers
	// being initialized. This is treated as a fatal misconfiguration and
	// causes the application to fail at startup.
	errNoHandlersAreCreated = errors.New("no handlers are created")

	// errNoMetricsCollector is returned when NewHandlers is called without a
	// collector; the /metrics route and request instrumentation need one.
	errNoMetricsCollector = errors.New("metrics collector is not provided")
)
