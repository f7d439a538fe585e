package middleware

import (
	"time"

	"goairline/internal/utils"

	"github.com/gin-gonic/gin"
)

// Logger writes one structured line per request including request_id.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)

		status := c.Writer.Status()
		fields := []any{
			"request_id", GetRequestID(c),
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", status,
			"latency_ms", float64(latency.Microseconds()) / 1000.0,
			"ip", c.ClientIP(),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, "errors", c.Errors.String())
		}
		switch {
		case status >= 500:
			utils.L().Errorw("http request", fields...)
		case status >= 400:
			utils.L().Warnw("http request", fields...)
		default:
			utils.L().Infow("http request", fields...)
		}
	}
}
