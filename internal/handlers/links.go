package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/teamhub/teamhub/internal/dto"
	apierrors "github.com/teamhub/teamhub/internal/errors"
	"github.com/teamhub/teamhub/internal/middleware"
	"github.com/teamhub/teamhub/internal/models"
	"github.com/teamhub/teamhub/internal/services"
	"github.com/teamhub/teamhub/internal/store"
)

// LinksHandler coordinates the global link list HTTP handlers.
type LinksHandler struct {
	settingsService *services.SettingsService
}

// NewLinksHandler creates a new LinksHandler.
func NewLinksHandler(settingsService *services.SettingsService) *LinksHandler {
	return &LinksHandler{
		settingsService: settingsService,
	}
}

// GetLinks returns the current global link list.
func (h *LinksHandler) GetLinks(c *gin.Context) {
	settings, err := h.settingsService.Get()
	if err != nil {
		respondLinksError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSettingsDTO(*settings))
}

// PutLinks replaces the global link list. The whole array is replaced at
// once; concurrent saves are last write wins.
func (h *LinksHandler) PutLinks(c *gin.Context) {
	type PutLinksRequest struct {
		Links []dto.LinkDTO `json:"links"`
	}

	var req PutLinksRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	links := make([]models.Link, len(req.Links))
	for i, l := range req.Links {
		links[i] = models.Link{Label: l.Label, URL: l.URL}
	}

	role := middleware.GetRole(c)
	if err := h.settingsService.Save(role, links); err != nil {
		respondLinksError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Links updated",
	})
}

func respondLinksError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrForbidden):
		apierrors.Forbidden(c, err.Error())
	case errors.Is(err, store.ErrWriteRejected):
		apierrors.WriteRejected(c, "")
	case errors.Is(err, store.ErrUnavailable):
		apierrors.StoreUnavailable(c, "")
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}
