package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
)

// HTTPObserver receives one observation per served request.
type HTTPObserver interface {
	ObserveHTTP(method, route string, status int, elapsed time.Duration)
}

// MetricsMiddleware records request counts and latency by route template.
type MetricsMiddleware struct {
	observer HTTPObserver
}

// NewMetricsMiddleware creates a new metrics middleware
func NewMetricsMiddleware(observer HTTPObserver) *MetricsMiddleware {
	return &MetricsMiddleware{observer: observer}
}

// Handle observes the request after the handler chain returns.
func (m *MetricsMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		err := next(c)

		route := c.Path()
		if route == "" {
			// Unmatched paths share one label so scanners cannot blow up cardinality.
			route = "unmatched"
		}
		m.observer.ObserveHTTP(c.Request().Method, route, responseStatus(c, err), time.Since(start))

		return err
	}
}
