// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the one-shot command-line client for the
// counters server.
//
// It parses a single command (create, get, inc, delete or version), calls the
// server through an [adapter.CounterAdapter] and prints the result.
package client
