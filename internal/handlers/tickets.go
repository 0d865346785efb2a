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
)

// TicketHandler coordinates ticket-related HTTP handlers.
type TicketHandler struct {
	ticketService *services.TicketService
}

// NewTicketHandler creates a new TicketHandler.
func NewTicketHandler(ticketService *services.TicketService) *TicketHandler {
	return &TicketHandler{
		ticketService: ticketService,
	}
}

// ListTickets returns the tickets visible to the current role, newest first.
// Supports q (free text), priority and assignee query filters.
func (h *TicketHandler) ListTickets(c *gin.Context) {
	role := middleware.GetRole(c)

	tickets, err := h.ticketService.List(role)
	if err != nil {
		respondTicketError(c, err)
		return
	}

	tickets = services.FilterTickets(tickets, services.TicketFilter{
		Query:    c.Query("q"),
		Priority: c.Query("priority"),
		Assignee: c.Query("assignee"),
	})

	c.JSON(http.StatusOK, dto.TicketListResponse{
		Tickets: dto.ToTicketDTOs(tickets, role),
		Total:   len(tickets),
	})
}

// GetBoard returns the kanban board for the current role, optionally
// narrowed by the same filters as ListTickets.
func (h *TicketHandler) GetBoard(c *gin.Context) {
	role := middleware.GetRole(c)

	tickets, err := h.ticketService.List(role)
	if err != nil {
		respondTicketError(c, err)
		return
	}

	tickets = services.FilterTickets(tickets, services.TicketFilter{
		Query:    c.Query("q"),
		Priority: c.Query("priority"),
		Assignee: c.Query("assignee"),
	})

	c.JSON(http.StatusOK, dto.ToBoardDTO(services.TicketColumns(tickets), role))
}

// GetTicket returns a single ticket.
func (h *TicketHandler) GetTicket(c *gin.Context) {
	role := middleware.GetRole(c)

	ticket, err := h.ticketService.Get(role, c.Param("id"))
	if err != nil {
		respondTicketError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTicketDTO(*ticket, role))
}

// CreateTicket creates a new ticket.
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	type CreateTicketRequest struct {
		Title       string `json:"title" binding:"required"`
		Description string `json:"description"`
		Assignee    string `json:"assignee"`
		Tags        string `json:"tags"`
		Priority    string `json:"priority"`
		Status      string `json:"status"`
		Visible     *bool  `json:"visible"`
	}

	var req CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	visible := true
	if req.Visible != nil {
		visible = *req.Visible
	}

	role := middleware.GetRole(c)
	ticket, err := h.ticketService.Create(role, services.CreateTicketInput{
		Title:       req.Title,
		Description: req.Description,
		Assignee:    req.Assignee,
		Tags:        req.Tags,
		Priority:    req.Priority,
		Status:      req.Status,
		Visible:     visible,
	})
	if err != nil {
		respondTicketError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTicketDTO(*ticket, role))
}

// UpdateTicket applies a partial edit to a ticket.
func (h *TicketHandler) UpdateTicket(c *gin.Context) {
	type UpdateTicketRequest struct {
		Title       *string `json:"title"`
		Description *string `json:"description"`
		Assignee    *string `json:"assignee"`
		Tags        *string `json:"tags"`
		Priority    *string `json:"priority"`
	}

	var req UpdateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	role := middleware.GetRole(c)
	err := h.ticketService.Update(role, c.Param("id"), services.UpdateTicketInput{
		Title:       req.Title,
		Description: req.Description,
		Assignee:    req.Assignee,
		Tags:        req.Tags,
		Priority:    req.Priority,
	})
	if err != nil {
		respondTicketError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Ticket updated",
	})
}

// MoveTicket sets a ticket's board column.
func (h *TicketHandler) MoveTicket(c *gin.Context) {
	type MoveTicketRequest struct {
		Status string `json:"status" binding:"required"`
	}

	var req MoveTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	role := middleware.GetRole(c)
	if err := h.ticketService.Move(role, c.Param("id"), req.Status); err != nil {
		respondTicketError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Ticket moved",
	})
}

// DeleteTicket removes a ticket. Admin deletes are permanent; team deletes
// only hide the ticket from the team's own view.
func (h *TicketHandler) DeleteTicket(c *gin.Context) {
	role := middleware.GetRole(c)

	if err := h.ticketService.Delete(role, c.Param("id")); err != nil {
		respondTicketError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Ticket deleted",
	})
}

// RestoreTicket clears the team-deleted flag.
func (h *TicketHandler) RestoreTicket(c *gin.Context) {
	role := middleware.GetRole(c)

	if err := h.ticketService.Restore(role, c.Param("id")); err != nil {
		respondTicketError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Ticket restored",
	})
}

// ToggleTicketVisibility flips a ticket between shown and hidden.
func (h *TicketHandler) ToggleTicketVisibility(c *gin.Context) {
	role := middleware.GetRole(c)

	if err := h.ticketService.ToggleVisibility(role, c.Param("id")); err != nil {
		respondTicketError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Ticket visibility toggled",
	})
}

func respondTicketError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrForbidden),
		errors.Is(err, services.ErrDoneRestricted):
		apierrors.Forbidden(c, err.Error())
	case errors.Is(err, services.ErrTitleRequired),
		errors.Is(err, services.ErrInvalidStatus),
		errors.Is(err, services.ErrInvalidPriority),
		errors.Is(err, services.ErrUnknownAssignee),
		errors.Is(err, services.ErrNoFields):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, store.ErrNotFound):
		apierrors.NotFound(c, "Ticket not found")
	case errors.Is(err, store.ErrWriteRejected):
		apierrors.WriteRejected(c, "")
	case errors.Is(err, store.ErrUnavailable):
		apierrors.StoreUnavailable(c, "")
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}
