package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics records latency and count per method, route and status. Requests
// that match no route share the "unmatched" path label.
func Metrics(duration *prometheus.HistogramVec, total *prometheus.CounterVec) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := strconv.Itoa(c.Writer.Status())
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		method := c.Request.Method

		duration.WithLabelValues(method, path, status).Observe(time.Since(start).Seconds())
		total.WithLabelValues(method, path, status).Inc()
	}
}
