package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/huangang/skillhub/backend/internal/utils"
	"github.com/huangang/skillhub/backend/pkg/response"
)

const (
	ContextUserID  = "user_id"
	ContextEmail   = "email"
	ContextIsAdmin = "is_admin"
)

// AuthRequired is a middleware that checks for a valid JWT bearer token.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "authorization header required")
			c.Abort()
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(c, "invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := utils.ParseToken(parts[1])
		if err != nil {
			response.Unauthorized(c, "invalid or expired token")
			c.Abort()
			return
		}

		// Set identity in context. The admin claim is trusted as issued;
		// no live user lookup happens here.
		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextEmail, claims.Email)
		c.Set(ContextIsAdmin, claims.IsAdmin)

		c.Next()
	}
}

// AdminRequired is a middleware that checks the admin claim. Must run after
// AuthRequired.
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		isAdmin, exists := c.Get(ContextIsAdmin)
		if !exists || isAdmin != true {
			response.Forbidden(c, "admin access required")
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetUserID gets the current user ID from context.
func GetUserID(c *gin.Context) string {
	if id, exists := c.Get(ContextUserID); exists {
		return id.(string)
	}
	return ""
}

// GetEmail gets the current user email from context.
func GetEmail(c *gin.Context) string {
	if email, exists := c.Get(ContextEmail); exists {
		return email.(string)
	}
	return ""
}

// IsAdmin reports whether the current identity carries the admin claim.
func IsAdmin(c *gin.Context) bool {
	if isAdmin, exists := c.Get(ContextIsAdmin); exists {
		return isAdmin.(bool)
	}
	return false
}
