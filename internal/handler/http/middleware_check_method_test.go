// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

// buildRouter creates a minimal chi.Mux with a set of routes for tests.
// It intentionally does not use Handler.Init() to avoid service/logger setup.
func buildRouter() *chi.Mux {
	ok := func(status int) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		}
	}

	router := chi.NewRouter()
	router.Post("/counters/{name}", ok(http.StatusCreated))
	router.Get("/counters/{name}", ok(http.StatusOK))
	router.Put("/counters/{name}", ok(http.StatusOK))
	router.Delete("/counters/{name}", ok(http.StatusNoContent))
	router.Get("/health", ok(http.StatusOK))

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

func TestCheckHTTPMethod_TableTest(t *testing.T) {
	router := buildRouter()

	tests := []struct {
		name           string
		method         string
		path           string
		expectedStatus int
		expectedAllow  string
	}{
		{
			name:           "registered method passes through",
			method:         http.MethodPut,
			path:           "/counters/bar",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "PATCH on counter is not allowed",
			method:         http.MethodPatch,
			path:           "/counters/bar",
			expectedStatus: http.StatusMethodNotAllowed,
			expectedAllow:  "GET, POST, PUT, DELETE",
		},
		{
			name:           "POST on health is not allowed",
			method:         http.MethodPost,
			path:           "/health",
			expectedStatus: http.StatusMethodNotAllowed,
			expectedAllow:  "GET",
		},
		{
			name:           "unknown path is left to NotFound",
			method:         http.MethodGet,
			path:           "/nowhere",
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, tt.expectedAllow, rr.Header().Get("Allow"))
			if tt.expectedStatus == http.StatusMethodNotAllowed {
				assert.JSONEq(t, `{"error":"Method not allowed"}`, rr.Body.String())
				assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
			}
		})
	}
}

func TestAllowedMethods_UnknownPath(t *testing.T) {
	assert.Empty(t, allowedMethods(buildRouter(), "/nowhere"))
}
