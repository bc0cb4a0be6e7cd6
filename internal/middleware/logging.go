package middleware

import (
	"time"

	"github.com/eventbook/eventbook-api/internal/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var quietPaths = map[string]bool{
	"/health":  true,
	"/metrics": true,
}

// RequestLoggingMiddleware logs one line per completed request. Health
// checks and metric scrapes are logged at debug level only.
func RequestLoggingMiddleware() gin.HandlerFunc {
	log := logger.ForComponent(logger.Log, logger.ComponentMiddleware)
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := []zap.Field{
			zap.String("correlation_id", GetCorrelationID(c)),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
			zap.Int("body_size", c.Writer.Size()),
		}
		if userID, ok := c.Get(userIDKey); ok {
			fields = append(fields, zap.Any("user_id", userID))
		}
		for _, e := range c.Errors {
			fields = append(fields, zap.NamedError("handler_error", e.Err))
		}

		switch {
		case quietPaths[c.Request.URL.Path]:
			log.Debug("Request completed", fields...)
		case c.Writer.Status() >= 500:
			log.Error("Request completed", fields...)
		default:
			log.Info("Request completed", fields...)
		}
	}
}
