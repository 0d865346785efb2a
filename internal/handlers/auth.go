package handlers

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/teamhub/teamhub/internal/constants"
	apierrors "github.com/teamhub/teamhub/internal/errors"
	"github.com/teamhub/teamhub/internal/middleware"
	"github.com/teamhub/teamhub/internal/roles"
	"github.com/teamhub/teamhub/internal/services"
)

// AuthHandler coordinates authentication-related HTTP handlers.
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Login resolves an access code to a role and initializes the session.
func (h *AuthHandler) Login(c *gin.Context) {
	type LoginRequest struct {
		AccessCode string `json:"access_code" binding:"required"`
	}

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	role := h.authService.ResolveRole(req.AccessCode)
	if role == roles.RoleNone {
		apierrors.Unauthorized(c, "Invalid access code")
		return
	}

	session := sessions.Default(c)
	session.Set(constants.SessionKeyRole, string(role))
	if err := session.Save(); err != nil {
		apierrors.InternalError(c, "Failed to save session")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"role": role,
	})
}

// Logout removes the session.
func (h *AuthHandler) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	if err := session.Save(); err != nil {
		apierrors.InternalError(c, "Failed to logout")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Logged out successfully",
	})
}

// Me returns the role of the current session.
func (h *AuthHandler) Me(c *gin.Context) {
	role := middleware.GetRole(c)
	if role == roles.RoleNone {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"role": role,
	})
}
