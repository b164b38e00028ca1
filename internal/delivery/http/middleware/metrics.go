package middleware

import (
	"strconv"
	"time"

	"pcd-jobs/internal/pkg/metrics"

	"github.com/gofiber/fiber/v3"
)

type MetricsMiddleware struct {
	m *metrics.Metrics
}

func NewMetricsMiddleware(m *metrics.Metrics) *MetricsMiddleware {
	return &MetricsMiddleware{m: m}
}

// Middleware labels by the registered route pattern so ids in paths do not
// explode label cardinality.
func (mw *MetricsMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		if mw == nil || mw.m == nil {
			return c.Next()
		}

		mw.m.HTTPInFlight.Inc()
		defer mw.m.HTTPInFlight.Dec()

		start := time.Now()
		err := c.Next()

		route := "unmatched"
		if r := c.Route(); r != nil && r.Path != "" {
			route = r.Path
		}
		status := strconv.Itoa(c.Response().StatusCode())
		method := c.Method()

		mw.m.HTTPRequestDuration.WithLabelValues(method, route, status).Observe(time.Since(start).Seconds())
		mw.m.HTTPRequestsTotal.WithLabelValues(method, route, status).Inc()
		return err
	}
}
