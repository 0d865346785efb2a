package models

import "time"

type TicketStatus string

const (
	TicketStatusBacklog    TicketStatus = "backlog"
	TicketStatusTodo       TicketStatus = "todo"
	TicketStatusInProgress TicketStatus = "inprogress"
	TicketStatusInReview   TicketStatus = "inreview"
	TicketStatusDone       TicketStatus = "done"
)

// BoardColumns returns the kanban columns in board order. Any column may
// transition to any other; the order here is presentational only.
func BoardColumns() []TicketStatus {
	return []TicketStatus{
		TicketStatusBacklog,
		TicketStatusTodo,
		TicketStatusInProgress,
		TicketStatusInReview,
		TicketStatusDone,
	}
}

// IsValidTicketStatus reports whether s is one of the five board columns.
func IsValidTicketStatus(s TicketStatus) bool {
	for _, known := range BoardColumns() {
		if s == known {
			return true
		}
	}
	return false
}

type TicketPriority string

const (
	PriorityLow      TicketPriority = "low"
	PriorityMedium   TicketPriority = "medium"
	PriorityHigh     TicketPriority = "high"
	PriorityCritical TicketPriority = "critical"
)

// IsValidPriority reports whether p is a recognized priority.
func IsValidPriority(p TicketPriority) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical:
		return true
	}
	return false
}

type Ticket struct {
	ID          string         `gorm:"type:varchar(36);primarykey" json:"id"`
	Title       string         `gorm:"type:varchar(255);not null" json:"title"`
	Description string         `gorm:"type:text" json:"description,omitempty"`
	Assignee    string         `gorm:"type:varchar(100)" json:"assignee,omitempty"`
	Tags        StringList     `gorm:"serializer:json" json:"tags"`
	Priority    TicketPriority `gorm:"type:varchar(20);not null;default:'medium'" json:"priority"`
	Status      TicketStatus   `gorm:"type:varchar(20);not null;default:'backlog'" json:"status"`
	// Visible is the admin-controlled team-facing gate.
	Visible bool `json:"visible"`
	// CreatedByTeam is set from the creator's role and never changes.
	CreatedByTeam bool `json:"created_by_team"`
	// DeletedByTeam hides the ticket from team readers without removing it;
	// admin readers still see it and can restore.
	DeletedByTeam bool      `json:"deleted_by_team"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
