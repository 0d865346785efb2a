package dto

import (
	"time"

	"github.com/teamhub/teamhub/internal/models"
	"github.com/teamhub/teamhub/internal/roles"
	"github.com/teamhub/teamhub/internal/utils"
)

// TicketDTO represents a ticket in API responses. The created_by_team and
// deleted_by_team badges are triage metadata and only serialized for admin
// readers.
type TicketDTO struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Assignee string   `json:"assignee"`
	Tags     []string `json:"tags"`
	// TagsText is the comma form tag edits are submitted in, returned so
	// edit forms can prefill without rebuilding it client-side.
	TagsText string `json:"tags_text"`
	Priority string `json:"priority"`
	Status        string    `json:"status"`
	Visible       bool      `json:"visible"`
	CreatedByTeam *bool     `json:"created_by_team,omitempty"`
	DeletedByTeam *bool     `json:"deleted_by_team,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// TicketListResponse represents a filtered list of tickets
type TicketListResponse struct {
	Tickets []TicketDTO `json:"tickets"`
	Total   int         `json:"total"`
}

// BoardDTO represents the kanban board, one entry per column
type BoardDTO struct {
	Columns map[string][]TicketDTO `json:"columns"`
	Order   []string               `json:"order"`
}

// ToTicketDTO converts a Ticket model to TicketDTO for the given reader role
func ToTicketDTO(ticket models.Ticket, role roles.Role) TicketDTO {
	d := TicketDTO{
		ID:          ticket.ID,
		Title:       ticket.Title,
		Description: ticket.Description,
		Assignee:    ticket.Assignee,
		Tags:        ticket.Tags,
		TagsText:    utils.JoinTags(ticket.Tags),
		Priority:    string(ticket.Priority),
		Status:      string(ticket.Status),
		Visible:     ticket.Visible,
		CreatedAt:   ticket.CreatedAt,
		UpdatedAt:   ticket.UpdatedAt,
	}
	if role == roles.RoleAdmin {
		createdByTeam := ticket.CreatedByTeam
		deletedByTeam := ticket.DeletedByTeam
		d.CreatedByTeam = &createdByTeam
		d.DeletedByTeam = &deletedByTeam
	}
	return d
}

// ToTicketDTOs converts a slice of Ticket models to DTOs
func ToTicketDTOs(tickets []models.Ticket, role roles.Role) []TicketDTO {
	dtos := make([]TicketDTO, len(tickets))
	for i, t := range tickets {
		dtos[i] = ToTicketDTO(t, role)
	}
	return dtos
}

// ToBoardDTO converts a column partition to its response shape
func ToBoardDTO(columns map[models.TicketStatus][]models.Ticket, role roles.Role) BoardDTO {
	order := models.BoardColumns()
	board := BoardDTO{
		Columns: make(map[string][]TicketDTO, len(order)),
		Order:   make([]string, len(order)),
	}
	for i, col := range order {
		board.Order[i] = string(col)
		board.Columns[string(col)] = ToTicketDTOs(columns[col], role)
	}
	return board
}
