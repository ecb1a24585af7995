package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"workwithme/pkg/utils"
)

// TraceIDMiddleware tags every request with a trace id. An inbound
// X-Trace-ID header is reused so ids survive proxies and retries;
// otherwise a fresh one is generated. The id is stored on the gin
// context for error logging and echoed back in the response header.
func TraceIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		traceID := c.GetHeader("X-Trace-ID")
		if traceID == "" {
			traceID = uuid.NewString()
		}
		c.Set(utils.TraceIDKey, traceID)
		c.Writer.Header().Set("X-Trace-ID", traceID)
		c.Next()
	}
}
