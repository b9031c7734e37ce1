package middleware

import (
	"github.com/CreativeMB/Server/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const RequestIDHeader = "X-Request-ID"

// RequestID tags every request with an id (caller-supplied or fresh)
// and logs the completed request.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {

		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		c.Set("requestID", id)
		c.Writer.Header().Set(RequestIDHeader, id)

		c.Next()

		logger.Info("request handled", map[string]any{
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"request_id": id,
		})
	}
}
