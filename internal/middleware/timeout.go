package middleware

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
)

// QueryTimeout bounds the request context so store calls cannot hang past d.
func QueryTimeout(d time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), d)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
