package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-ID"

// RequestID attaches a correlation identifier to every request. An incoming
// X-Request-ID header is honored; otherwise a new UUID is generated. The id
// is echoed on the response and stored in the context for log correlation.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(requestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		c.Set("requestID", requestID)
		c.Writer.Header().Set(requestIDHeader, requestID)
		c.Next()
	}
}
