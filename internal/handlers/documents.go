package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/teamhub/teamhub/internal/dto"
	apierrors "github.com/teamhub/teamhub/internal/errors"
	"github.com/teamhub/teamhub/internal/middleware"
	"github.com/teamhub/teamhub/internal/services"
	"github.com/teamhub/teamhub/internal/store"
	"github.com/teamhub/teamhub/internal/utils"
)

// DocumentHandler coordinates document-related HTTP handlers.
type DocumentHandler struct {
	documentService *services.DocumentService
}

// NewDocumentHandler creates a new DocumentHandler.
func NewDocumentHandler(documentService *services.DocumentService) *DocumentHandler {
	return &DocumentHandler{
		documentService: documentService,
	}
}

// ListDocuments returns the documents visible to the current role, newest
// first. Supports q (free text) and status query filters.
func (h *DocumentHandler) ListDocuments(c *gin.Context) {
	role := middleware.GetRole(c)

	docs, err := h.documentService.List(role)
	if err != nil {
		respondDocumentError(c, err)
		return
	}

	docs = services.FilterDocuments(docs, c.Query("q"), c.Query("status"))

	c.JSON(http.StatusOK, dto.DocumentListResponse{
		Documents: dto.ToDocumentDTOs(docs),
		Total:     len(docs),
	})
}

// GetDocumentOverview returns the dashboard buckets computed over the
// documents visible to the current role.
func (h *DocumentHandler) GetDocumentOverview(c *gin.Context) {
	role := middleware.GetRole(c)

	docs, err := h.documentService.List(role)
	if err != nil {
		respondDocumentError(c, err)
		return
	}

	overview := services.BuildDocumentOverview(docs, utils.TodayYMD())
	c.JSON(http.StatusOK, dto.ToDocumentOverviewDTO(overview))
}

// GetDocument returns a single document.
func (h *DocumentHandler) GetDocument(c *gin.Context) {
	role := middleware.GetRole(c)

	doc, err := h.documentService.Get(role, c.Param("id"))
	if err != nil {
		respondDocumentError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToDocumentDTO(*doc))
}

// CreateDocument creates a new document.
func (h *DocumentHandler) CreateDocument(c *gin.Context) {
	type CreateDocumentRequest struct {
		Title          string `json:"title" binding:"required"`
		AssignmentLink string `json:"assignment_link"`
		CanvasLink     string `json:"canvas_link"`
		Category       string `json:"category" binding:"required"`
		DueDate        string `json:"due_date"`
		Tags           string `json:"tags"`
		Pinned         bool   `json:"pinned"`
		Visible        bool   `json:"visible"`
	}

	var req CreateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	role := middleware.GetRole(c)
	doc, err := h.documentService.Create(role, services.CreateDocumentInput{
		Title:          req.Title,
		AssignmentLink: req.AssignmentLink,
		CanvasLink:     req.CanvasLink,
		Category:       req.Category,
		DueDate:        req.DueDate,
		Tags:           req.Tags,
		Pinned:         req.Pinned,
		Visible:        req.Visible,
	})
	if err != nil {
		respondDocumentError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToDocumentDTO(*doc))
}

// UpdateDocument applies a partial edit to a document.
func (h *DocumentHandler) UpdateDocument(c *gin.Context) {
	type UpdateDocumentRequest struct {
		Title          *string `json:"title"`
		AssignmentLink *string `json:"assignment_link"`
		CanvasLink     *string `json:"canvas_link"`
		Category       *string `json:"category"`
		DueDate        *string `json:"due_date"`
		Tags           *string `json:"tags"`
	}

	var req UpdateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	role := middleware.GetRole(c)
	err := h.documentService.Update(role, c.Param("id"), services.UpdateDocumentInput{
		Title:          req.Title,
		AssignmentLink: req.AssignmentLink,
		CanvasLink:     req.CanvasLink,
		Category:       req.Category,
		DueDate:        req.DueDate,
		Tags:           req.Tags,
	})
	if err != nil {
		respondDocumentError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Document updated",
	})
}

// DeleteDocument removes a document permanently.
func (h *DocumentHandler) DeleteDocument(c *gin.Context) {
	role := middleware.GetRole(c)

	if err := h.documentService.Delete(role, c.Param("id")); err != nil {
		respondDocumentError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Document deleted",
	})
}

// ToggleDocumentVisibility flips a document between shown and hidden.
func (h *DocumentHandler) ToggleDocumentVisibility(c *gin.Context) {
	role := middleware.GetRole(c)

	if err := h.documentService.ToggleVisibility(role, c.Param("id")); err != nil {
		respondDocumentError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Document visibility toggled",
	})
}

// ToggleDocumentPin flips a document's pinned flag.
func (h *DocumentHandler) ToggleDocumentPin(c *gin.Context) {
	role := middleware.GetRole(c)

	if err := h.documentService.TogglePin(role, c.Param("id")); err != nil {
		respondDocumentError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Document pin toggled",
	})
}

// ToggleDocumentStatus cycles a document between in progress and done.
func (h *DocumentHandler) ToggleDocumentStatus(c *gin.Context) {
	role := middleware.GetRole(c)

	if err := h.documentService.ToggleStatus(role, c.Param("id")); err != nil {
		respondDocumentError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Document status toggled",
	})
}

func respondDocumentError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrForbidden):
		apierrors.Forbidden(c, err.Error())
	case errors.Is(err, services.ErrTitleRequired),
		errors.Is(err, services.ErrInvalidCategory),
		errors.Is(err, services.ErrInvalidDueDate),
		errors.Is(err, services.ErrNoFields):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, store.ErrNotFound):
		apierrors.NotFound(c, "Document not found")
	case errors.Is(err, store.ErrWriteRejected):
		apierrors.WriteRejected(c, "")
	case errors.Is(err, store.ErrUnavailable):
		apierrors.StoreUnavailable(c, "")
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}
