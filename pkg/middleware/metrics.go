package middleware

import (
	"strconv"
	"time"

	"github.com/care-collective/safeguard/pkg/infra/metrics"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type metricsMiddleware struct {
	logger *logrus.Logger
}

func NewMetricsMiddleware(logger *logrus.Logger) Middleware {
	return &metricsMiddleware{logger: logger}
}

// Middleware records request counts and latency per route. The route pattern
// is used instead of the raw path to keep label cardinality bounded.
func (m *metricsMiddleware) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		path := c.Route().Path
		status := c.Response().StatusCode()
		metrics.RequestTotal.WithLabelValues(c.Method(), path, strconv.Itoa(status)).Inc()
		metrics.RequestLatency.WithLabelValues(c.Method(), path).
			Observe(float64(time.Since(start).Milliseconds()))

		return err
	}
}
