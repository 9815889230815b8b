package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"marketplace/internal/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics(t *testing.T) {
	m := metrics.New("marketplace")

	m.ObserveTransition("notifying_riders", "picking_up", metrics.OutcomeOK)
	m.ObserveTransition("notifying_riders", "picking_up", metrics.OutcomeConflict)
	m.ObserveTransition("notifying_riders", "picking_up", metrics.OutcomeConflict)
	m.ObserveNotification("rabbitmq", metrics.OutcomeError)
	m.ObserveEvent(metrics.OutcomeOK)
	m.ObserveRequest(http.MethodPost, "/api/v1/orders/:id/transition", http.StatusConflict, 12*time.Millisecond)

	assert.InDelta(t, 2, testutil.ToFloat64(m.Transitions.WithLabelValues("notifying_riders", "picking_up", "conflict")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.Notifications.WithLabelValues("rabbitmq", "error")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.Requests.WithLabelValues("POST", "/api/v1/orders/:id/transition", "409")), 0)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "marketplace_order_transitions_total")
	assert.Contains(t, rec.Body.String(), "marketplace_order_events_total")
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *metrics.Metrics

	assert.NotPanics(t, func() {
		m.ObserveTransition("a", "b", metrics.OutcomeOK)
		m.ObserveNotification("telegram", metrics.OutcomeOK)
		m.ObserveEvent(metrics.OutcomeError)
		m.ObserveRequest("GET", "/health", 200, time.Millisecond)
	})
}

func TestMetrics_SeparateRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		metrics.New("a")
		metrics.New("a")
	})
}
