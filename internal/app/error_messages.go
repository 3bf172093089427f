// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// go-counters HTTP handlers and middleware.
//
// All Msg* constants are the public texts written into the "error" field of
// JSON error bodies. Clients match on them, so the wording is part of the API.
package app

const (
	// MsgInvalidCounterName is returned with 400 when the name in the path
	// is empty.
	MsgInvalidCounterName = "Invalid counter name"

	// MsgCounterNotFound is returned with 404 by read, increment and delete
	// when no counter has the requested name.
	MsgCounterNotFound = "Counter not found"

	// MsgCounterAlreadyExists is returned with 409 when create targets a name
	// that is already registered.
	MsgCounterAlreadyExists = "Counter already exists"

	// MsgNotFound is returned with 404 for paths no route matches.
	MsgNotFound = "Not found"

	// MsgMethodNotAllowed is returned with 405 when the path exists but the
	// method is not registered for it.
	MsgMethodNotAllowed = "Method not allowed"

	// MsgInternalServerError is returned with 500 when an unexpected
	// server-side failure occurs. Details are only logged.
	MsgInternalServerError = "Internal server error"
)
