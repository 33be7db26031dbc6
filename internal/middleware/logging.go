package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"task-management/pkg/log"
)

// Logging logs one line per request with its status and latency.
// Server errors log at error level, client errors at warn.
func (m Middleware) Logging() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		ctx := log.WithFields(c.Request.Context(),
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"latency", time.Since(start).String(),
			"client_ip", c.ClientIP(),
		)

		switch status := c.Writer.Status(); {
		case status >= 500:
			m.l.Errorf(ctx, "%s %s %d", c.Request.Method, c.Request.URL.Path, status)
		case status >= 400:
			m.l.Warnf(ctx, "%s %s %d", c.Request.Method, c.Request.URL.Path, status)
		default:
			m.l.Infof(ctx, "%s %s %d", c.Request.Method, c.Request.URL.Path, status)
		}
	}
}
