package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// GinMiddleware records request count and latency per route template, method
// and status. Unmatched paths collapse into a single "unknown" label to keep
// cardinality bounded.
func GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unknown"
		}
		status := strconv.Itoa(c.Writer.Status())

		elapsed := time.Since(start).Seconds()
		HTTPRequestDuration.WithLabelValues(route, c.Request.Method, status).Observe(elapsed)
		HTTPRequestsTotal.WithLabelValues(route, c.Request.Method, status).Inc()
	}
}
