package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
)

func TestHandler(t *testing.T) {
	registry := prometheus.NewRegistry()

	counter := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "feedback_test_total",
		Help: "Test counter",
	})
	registry.MustRegister(counter)
	counter.Inc()

	handler := NewHandler(registry)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	res := httptest.NewRecorder()

	handler.ServeHTTP(res, req)

	if res.Code != http.StatusOK {
		t.Fatalf("unexpected status code %d", res.Code)
	}

	body, _ := io.ReadAll(res.Body)
	if !strings.Contains(string(body), "feedback_test_total 1") {
		t.Errorf("expected counter in output, got:\n%s", body)
	}
}
