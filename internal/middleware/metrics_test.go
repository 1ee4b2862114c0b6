package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/Toyowa5296/poliform/internal/metrics"
)

func TestMetricsMiddlewareRecordsRoutePattern(t *testing.T) {
	metricsReg := metrics.NewMetricsRegistry()

	r := chi.NewRouter()
	r.Use(MetricsMiddleware(metricsReg))
	r.Get("/parties/{partyID}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/parties/abc123", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}

	matched := testutil.ToFloat64(
		metricsReg.HTTPRequestsTotal.WithLabelValues("/parties/{partyID}", http.MethodGet, "200"),
	)
	if matched != 1 {
		t.Errorf("Expected 1 request counted under the route pattern, got %v", matched)
	}

	unknown := testutil.ToFloat64(
		metricsReg.HTTPRequestsTotal.WithLabelValues("unknown", http.MethodGet, "200"),
	)
	if unknown != 0 {
		t.Errorf("Expected no requests counted as unknown, got %v", unknown)
	}
}
