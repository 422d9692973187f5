package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-ID"

// ContextRequestID is the context key under which the request id is stored
// for log correlation.
const ContextRequestID = "requestId"

// RequestID propagates the caller's request id or generates one, so log
// lines from a single request can be correlated.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.GetHeader(requestIDHeader))
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(ContextRequestID, id)
		c.Writer.Header().Set(requestIDHeader, id)
		c.Next()
	}
}
