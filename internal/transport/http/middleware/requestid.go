package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/tcr/pretty-cron/internal/requestid"
)

// RequestID injects a request ID into the context and response header.
// An incoming X-Request-ID is kept when it is a UUID; anything else is
// replaced with a new UUID v4.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := requestid.New()
		if in := c.GetHeader("X-Request-ID"); in != "" {
			id = requestid.Normalize(in)
		}

		ctx := requestid.WithRequestID(c.Request.Context(), id)
		c.Request = c.Request.WithContext(ctx)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}
