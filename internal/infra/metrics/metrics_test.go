package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sitd/config"
)

func TestNew_Disabled(t *testing.T) {
	assert.Nil(t, New(&config.Config{}))
	assert.Nil(t, New(&config.Config{Metrics: &config.MetricsConfig{Enabled: false}}))
}

func TestNilMetricsIsSafe(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.RequestStarted()
		m.RequestFinished(http.MethodGet, "/me", http.StatusOK, time.Millisecond)
		m.ObserveAuth("login", nil)
	})

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMetrics_RecordsRequestsAndAuth(t *testing.T) {
	m := New(&config.Config{Metrics: &config.MetricsConfig{Enabled: true, Namespace: "test"}})
	require.NotNil(t, m)

	m.RequestStarted()
	assert.Equal(t, float64(1), testutil.ToFloat64(m.HTTPRequestsInFlight))
	m.RequestFinished(http.MethodPost, "/auth/token", http.StatusUnauthorized, 5*time.Millisecond)
	assert.Equal(t, float64(0), testutil.ToFloat64(m.HTTPRequestsInFlight))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("POST", "/auth/token", "401")))

	m.ObserveAuth("login", errors.New("bad password"))
	m.ObserveAuth("login", nil)
	m.ObserveAuth("login", nil)
	assert.Equal(t, float64(1), testutil.ToFloat64(m.AuthOperationsTotal.WithLabelValues("login", OutcomeFailure)))
	assert.Equal(t, float64(2), testutil.ToFloat64(m.AuthOperationsTotal.WithLabelValues("login", OutcomeSuccess)))
}

func TestMetrics_HandlerExposesNamespace(t *testing.T) {
	m := New(&config.Config{Metrics: &config.MetricsConfig{Enabled: true}})
	m.ObserveAuth("register", nil)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `sitd_auth_operations_total{operation="register",outcome="success"} 1`)
}

func TestMetrics_SeparateRegistries(t *testing.T) {
	first := newMetrics("a")
	second := newMetrics("a")

	first.ObserveAuth("login", nil)

	assert.Equal(t, float64(0), testutil.ToFloat64(second.AuthOperationsTotal.WithLabelValues("login", OutcomeSuccess)))
}
