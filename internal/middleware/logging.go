package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/jiks2239/mytns-finance-manager-sub000/internal/logger"
)

const (
	requestIDKey    = "requestID"
	requestIDHeader = "X-Request-ID"
)

// RequestID returns the id RequestLogging assigned to the request, or "".
func RequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}

// RequestLogging returns a Gin middleware that tags each request with an id
// and logs it when it completes. A valid X-Request-ID from the caller is
// reused. 4xx responses log at warn level and 5xx at error level.
func RequestLogging() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader(requestIDHeader)
		if uuid.Validate(requestID) != nil {
			requestID = uuid.New().String()
		}
		c.Set(requestIDKey, requestID)
		c.Writer.Header().Set(requestIDHeader, requestID)

		c.Next()

		status := c.Writer.Status()
		fields := []interface{}{
			"request_id", requestID,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", status,
			"latency_ms", time.Since(start).Milliseconds(),
			"client_ip", c.ClientIP(),
		}

		log := logger.Get().Named("http")
		switch {
		case status >= 500:
			log.Errorw("request", fields...)
		case status >= 400:
			log.Warnw("request", fields...)
		default:
			log.Infow("request", fields...)
		}
	}
}
