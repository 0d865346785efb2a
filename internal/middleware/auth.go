package middleware

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/teamhub/teamhub/internal/constants"
	apierrors "github.com/teamhub/teamhub/internal/errors"
	"github.com/teamhub/teamhub/internal/roles"
)

// RequireAuth checks that the session carries a resolved role
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		stored, _ := session.Get(constants.SessionKeyRole).(string)
		role := roles.Parse(stored)

		if role == roles.RoleNone {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		// Store the role in context for easy access in handlers
		c.Set(constants.ContextKeyRole, role)
		c.Next()
	}
}

// RequireAdmin rejects non-admin sessions. Must run after RequireAuth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if GetRole(c) != roles.RoleAdmin {
			apierrors.Forbidden(c, "")
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetRole retrieves the current role from context
func GetRole(c *gin.Context) roles.Role {
	value, exists := c.Get(constants.ContextKeyRole)
	if !exists {
		return roles.RoleNone
	}
	if role, ok := value.(roles.Role); ok {
		return role
	}
	return roles.RoleNone
}
