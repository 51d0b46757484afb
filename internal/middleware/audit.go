package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/huangang/skillhub/backend/pkg/logger"
)

// AuditLog records admin write operations (POST/PUT/DELETE) to the
// structured log. Runs after the handler so the final status is known.
func AuditLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		method := c.Request.Method
		if method != "POST" && method != "PUT" && method != "DELETE" {
			c.Next()
			return
		}

		c.Next()

		logger.Info().
			Str("actor", GetUserID(c)).
			Str("email", GetEmail(c)).
			Str("method", method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Str("ip", c.ClientIP()).
			Bool("audit", true).
			Msg("admin action")
	}
}
