package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"sparkier.backend/pkg/logger"
)

// RequestIDKey is the gin context key for the request id
const RequestIDKey = "request_id"

// RequestIDMiddleware assigns each request a unique id, honoring one
// supplied by the caller, and plants it in the request context so the
// structured logger picks it up.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.New().String()
		}

		c.Set(RequestIDKey, id)
		c.Header("X-Request-ID", id)

		ctx := context.WithValue(c.Request.Context(), logger.RequestIDKey, id)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
