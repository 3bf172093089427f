// Package utils provides general-purpose helper utilities
// used across different parts of the application: type-safe context keys,
// JSON response writing and HTTP client initialization.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// TraceIDCtxKey is the key under which the request trace ID is stored.
//
//	ctx := context.WithValue(ctx, utils.TraceIDCtxKey, "3f0c...")
var TraceIDCtxKey = contextKey("traceID")

// GetTraceIDFromContext returns the trace ID set by the HTTP trace-id
// middleware. ok is false when the value is missing, empty or not a string.
func GetTraceIDFromContext(ctx context.Context) (string, bool) {
	traceID, ok := ctx.Value(TraceIDCtxKey).(string)
	return traceID, ok && traceID != ""
}
