package middleware

import (
	"time"

	"github.com/labstack/echo/v4"

	"sitd/internal/infra/metrics"
)

// MetricsMiddleware records request counts and latency by route template.
type MetricsMiddleware struct {
	metrics *metrics.Metrics
}

// NewMetricsMiddleware accepts a nil *metrics.Metrics, in which case nothing is recorded.
func NewMetricsMiddleware(m *metrics.Metrics) *MetricsMiddleware {
	return &MetricsMiddleware{metrics: m}
}

// Handle measures the wrapped handler.
func (m *MetricsMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if m.metrics == nil {
			return next(c)
		}

		start := time.Now()
		m.metrics.RequestStarted()

		err := next(c)
		if err != nil {
			c.Error(err)
		}

		path := c.Path()
		if path == "" {
			path = "unmatched"
		}
		m.metrics.RequestFinished(c.Request().Method, path, c.Response().Status, time.Since(start))

		return nil
	}
}
