package services

import (
	"errors"
	"strings"

	"github.com/teamhub/teamhub/internal/models"
	"github.com/teamhub/teamhub/internal/roles"
	"github.com/teamhub/teamhub/internal/store"
	"github.com/teamhub/teamhub/internal/utils"
)

var (
	ErrInvalidStatus   = errors.New("status is not one of the board columns")
	ErrInvalidPriority = errors.New("priority is not one of the known priorities")
	ErrUnknownAssignee = errors.New("assignee is not a known team member")
	ErrDoneRestricted  = errors.New("team role may not move a ticket into done")
)

// CreateTicketInput carries the caller-supplied fields for a new ticket.
type CreateTicketInput struct {
	Title       string
	Description string
	Assignee    string
	Tags        string
	Priority    string
	Status      string
	Visible     bool
}

// UpdateTicketInput carries the optional fields of a ticket edit. The
// creation and deletion flags are never part of an edit; they only change
// through Create, Delete, and Restore.
type UpdateTicketInput struct {
	Title       *string
	Description *string
	Assignee    *string
	Tags        *string
	Priority    *string
}

// TicketService owns all ticket mutations. Both roles can create and edit
// tickets; the harder operations (hard delete, restore, visibility) stay
// admin only, and the team role is blocked from moving tickets into done.
type TicketService struct {
	store       store.Store
	teamMembers []string
}

// NewTicketService creates a new TicketService. teamMembers is the allowed
// assignee list; an empty list leaves assignees unrestricted.
func NewTicketService(st store.Store, teamMembers []string) *TicketService {
	return &TicketService{store: st, teamMembers: teamMembers}
}

// Create validates the input and inserts a new ticket. Tickets created by
// the team role are flagged as such and are always visible; only an admin
// may create a hidden ticket.
func (s *TicketService) Create(role roles.Role, input CreateTicketInput) (*models.Ticket, error) {
	if !roles.Can(role, roles.EntityTicket, roles.ActionCreate) {
		return nil, ErrForbidden
	}

	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrTitleRequired
	}

	status := models.TicketStatusBacklog
	if input.Status != "" {
		if !models.IsValidTicketStatus(models.TicketStatus(input.Status)) {
			return nil, ErrInvalidStatus
		}
		status = models.TicketStatus(input.Status)
	}
	if status == models.TicketStatusDone && !roles.Can(role, roles.EntityTicket, roles.ActionMoveToDone) {
		return nil, ErrDoneRestricted
	}
	priority := models.PriorityMedium
	if input.Priority != "" {
		if !models.IsValidPriority(models.TicketPriority(input.Priority)) {
			return nil, ErrInvalidPriority
		}
		priority = models.TicketPriority(input.Priority)
	}
	assignee := strings.TrimSpace(input.Assignee)
	if err := s.checkAssignee(assignee); err != nil {
		return nil, err
	}

	ticket := &models.Ticket{
		Title:         title,
		Description:   strings.TrimSpace(input.Description),
		Assignee:      assignee,
		Tags:          models.StringList(utils.SplitTags(input.Tags)),
		Priority:      priority,
		Status:        status,
		Visible:       input.Visible || role != roles.RoleAdmin,
		CreatedByTeam: role == roles.RoleTeam,
	}
	if err := s.store.CreateTicket(ticket); err != nil {
		return nil, err
	}
	return ticket, nil
}

// Update applies a partial edit to an existing ticket. Status changes go
// through Move, not Update.
func (s *TicketService) Update(role roles.Role, id string, input UpdateTicketInput) error {
	if !roles.Can(role, roles.EntityTicket, roles.ActionEdit) {
		return ErrForbidden
	}

	fields := map[string]any{}
	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return ErrTitleRequired
		}
		fields["title"] = title
	}
	if input.Description != nil {
		fields["description"] = strings.TrimSpace(*input.Description)
	}
	if input.Assignee != nil {
		assignee := strings.TrimSpace(*input.Assignee)
		if err := s.checkAssignee(assignee); err != nil {
			return err
		}
		fields["assignee"] = assignee
	}
	if input.Tags != nil {
		fields["tags"] = models.StringList(utils.SplitTags(*input.Tags))
	}
	if input.Priority != nil {
		if !models.IsValidPriority(models.TicketPriority(*input.Priority)) {
			return ErrInvalidPriority
		}
		fields["priority"] = *input.Priority
	}
	if len(fields) == 0 {
		return ErrNoFields
	}

	return s.store.UpdateTicket(id, fields)
}

// Move sets a ticket's board column. Any column may move to any other
// column; the team role is blocked from moving a ticket into done unless
// the ticket is already there.
func (s *TicketService) Move(role roles.Role, id string, status string) error {
	if !roles.Can(role, roles.EntityTicket, roles.ActionEdit) {
		return ErrForbidden
	}
	if !models.IsValidTicketStatus(models.TicketStatus(status)) {
		return ErrInvalidStatus
	}

	next := models.TicketStatus(status)
	if next == models.TicketStatusDone && !roles.Can(role, roles.EntityTicket, roles.ActionMoveToDone) {
		ticket, err := s.store.GetTicket(id)
		if err != nil {
			return err
		}
		if ticket.Status != models.TicketStatusDone {
			return ErrDoneRestricted
		}
	}

	return s.store.UpdateTicket(id, map[string]any{"status": next})
}

// Delete removes a ticket. An admin delete is permanent; a team delete only
// marks the ticket so that an admin can still see and restore it.
func (s *TicketService) Delete(role roles.Role, id string) error {
	if roles.Can(role, roles.EntityTicket, roles.ActionDelete) {
		return s.store.DeleteTicket(id)
	}
	if roles.Can(role, roles.EntityTicket, roles.ActionHide) {
		return s.store.UpdateTicket(id, map[string]any{"deleted_by_team": true})
	}
	return ErrForbidden
}

// Restore clears the team-deleted flag. Admin only. Restoring a hard-deleted
// ticket fails with not found since the record no longer exists.
func (s *TicketService) Restore(role roles.Role, id string) error {
	if !roles.Can(role, roles.EntityTicket, roles.ActionRestore) {
		return ErrForbidden
	}
	return s.store.UpdateTicket(id, map[string]any{"deleted_by_team": false})
}

// ToggleVisibility flips a ticket between shown and hidden. Admin only.
func (s *TicketService) ToggleVisibility(role roles.Role, id string) error {
	if !roles.Can(role, roles.EntityTicket, roles.ActionToggleVisible) {
		return ErrForbidden
	}
	ticket, err := s.store.GetTicket(id)
	if err != nil {
		return err
	}
	return s.store.UpdateTicket(id, map[string]any{"visible": !ticket.Visible})
}

// List returns the tickets the role is allowed to see, newest first.
func (s *TicketService) List(role roles.Role) ([]models.Ticket, error) {
	tickets, err := s.store.ListTickets()
	if err != nil {
		return nil, err
	}
	return TicketsVisibleTo(tickets, role), nil
}

// Get returns a single ticket when the role is allowed to see it.
func (s *TicketService) Get(role roles.Role, id string) (*models.Ticket, error) {
	ticket, err := s.store.GetTicket(id)
	if err != nil {
		return nil, err
	}
	if role != roles.RoleAdmin && (!ticket.Visible || ticket.DeletedByTeam) {
		return nil, store.ErrNotFound
	}
	return ticket, nil
}

func (s *TicketService) checkAssignee(assignee string) error {
	if assignee == "" || len(s.teamMembers) == 0 {
		return nil
	}
	for _, m := range s.teamMembers {
		if strings.EqualFold(m, assignee) {
			return nil
		}
	}
	return ErrUnknownAssignee
}
