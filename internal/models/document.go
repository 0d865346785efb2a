package models

import "time"

type DocumentCategory string

const (
	CategoryDailyStandups      DocumentCategory = "Daily Standups"
	CategoryOther              DocumentCategory = "Other"
	CategoryBacklogGrooming    DocumentCategory = "Backlog Grooming Meeting"
	CategorySprintPlanning     DocumentCategory = "Sprint Planning Meeting"
	CategorySprintReviewPlan   DocumentCategory = "Sprint Review Planning Meeting"
)

// DocumentCategories returns the fixed category set in display order.
func DocumentCategories() []DocumentCategory {
	return []DocumentCategory{
		CategoryDailyStandups,
		CategoryOther,
		CategoryBacklogGrooming,
		CategorySprintPlanning,
		CategorySprintReviewPlan,
	}
}

// IsValidCategory reports whether c is one of the fixed categories.
func IsValidCategory(c DocumentCategory) bool {
	for _, known := range DocumentCategories() {
		if c == known {
			return true
		}
	}
	return false
}

type DocumentStatus string

const (
	DocumentStatusInProgress DocumentStatus = "In progress"
	DocumentStatusDone       DocumentStatus = "Done / Ready to submit"
)

// NormalizeDocumentStatus maps any unrecognized stored status to
// "In progress". Legacy records predate the status field and malformed
// payloads can reach the store unchecked, so reads never trust the raw value.
func NormalizeDocumentStatus(s DocumentStatus) DocumentStatus {
	if s == DocumentStatusDone {
		return DocumentStatusDone
	}
	return DocumentStatusInProgress
}

type Document struct {
	ID             string           `gorm:"type:varchar(36);primarykey" json:"id"`
	Title          string           `gorm:"type:varchar(255);not null" json:"title"`
	AssignmentLink string           `gorm:"type:text" json:"assignment_link,omitempty"`
	CanvasLink     string           `gorm:"type:text" json:"canvas_link,omitempty"`
	Category       DocumentCategory `gorm:"type:varchar(50);not null" json:"category"`
	Visible        bool             `json:"visible"`
	Pinned         bool             `json:"pinned"`
	// DueDate is a local calendar date in YYYY-MM-DD form, empty when unset.
	// Stored as a plain string so day boundaries never shift through UTC.
	DueDate   string         `gorm:"type:varchar(10)" json:"due_date,omitempty"`
	Status    DocumentStatus `gorm:"type:varchar(30);not null;default:'In progress'" json:"status"`
	Tags      StringList     `gorm:"serializer:json" json:"tags"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}
