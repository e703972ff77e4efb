// Package middleware provides HTTP middleware components.
package middleware

import (
	"github.com/gin-gonic/gin"

	appctx "stocktally/internal/core/context"
)

const HeaderRequestID = "X-Request-ID"

// RequestID middleware extracts or generates a request ID and threads it
// through the request context and response headers.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(HeaderRequestID)
		if requestID == "" {
			requestID = appctx.NewRequestID()
		}

		ctx := appctx.WithRequestID(c.Request.Context(), requestID)
		c.Request = c.Request.WithContext(ctx)

		c.Set("request_id", requestID)
		c.Header(HeaderRequestID, requestID)

		c.Next()
	}
}
