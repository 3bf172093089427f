package http

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-counters/internal/logger"
	"github.com/MKhiriev/go-counters/internal/metrics"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithMetrics_ObservesRoutePattern(t *testing.T) {
	collector := metrics.NewCollector()
	h := &Handler{metrics: collector, logger: logger.Nop()}

	router := chi.NewRouter()
	router.Use(h.withMetrics)
	router.Get("/counters/{name}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})

	for _, path := range []string{"/counters/a", "/counters/b", "/health"} {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	rec := httptest.NewRecorder()
	collector.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)

	assert.Contains(t, string(body), `counters_http_request_duration_seconds_count{method="GET",route="/counters/{name}",status="404"} 2`)
	assert.Contains(t, string(body), `counters_http_request_duration_seconds_count{method="GET",route="/health",status="200"} 1`)
}

func TestRoutePattern_NoRouteContext(t *testing.T) {
	assert.Equal(t, unmatchedRoute, routePattern(httptest.NewRequest(http.MethodGet, "/x", nil)))
}
