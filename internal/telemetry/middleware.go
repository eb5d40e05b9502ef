package telemetry

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// Middleware tracks HTTP request metrics, labelled by route pattern.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())

		m.APIRequestDuration.WithLabelValues(c.Request.Method, endpoint, status).Observe(time.Since(start).Seconds())
		m.APIRequestsTotal.WithLabelValues(c.Request.Method, endpoint, status).Inc()
	}
}
