package dto

import (
	"time"

	"github.com/teamhub/teamhub/internal/models"
	"github.com/teamhub/teamhub/internal/services"
	"github.com/teamhub/teamhub/internal/utils"
)

// DocumentDTO represents a document in API responses
type DocumentDTO struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	AssignmentLink string    `json:"assignment_link"`
	CanvasLink     string    `json:"canvas_link"`
	Category       string    `json:"category"`
	DueDate        string    `json:"due_date,omitempty"`
	Status         string    `json:"status"`
	Tags           []string  `json:"tags"`
	// TagsText is the comma form tag edits are submitted in, returned so
	// edit forms can prefill without rebuilding it client-side.
	TagsText string `json:"tags_text"`
	Visible  bool   `json:"visible"`
	Pinned         bool      `json:"pinned"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// DocumentListResponse represents a filtered list of documents
type DocumentListResponse struct {
	Documents []DocumentDTO `json:"documents"`
	Total     int           `json:"total"`
}

// DocumentOverviewDTO represents the dashboard buckets of the document set
type DocumentOverviewDTO struct {
	DueToday   []DocumentDTO            `json:"due_today"`
	Overdue    []DocumentDTO            `json:"overdue"`
	Pinned     []DocumentDTO            `json:"pinned"`
	Categories map[string][]DocumentDTO `json:"categories"`
}

// ToDocumentDTO converts a Document model to DocumentDTO
func ToDocumentDTO(doc models.Document) DocumentDTO {
	return DocumentDTO{
		ID:             doc.ID,
		Title:          doc.Title,
		AssignmentLink: doc.AssignmentLink,
		CanvasLink:     doc.CanvasLink,
		Category:       string(doc.Category),
		DueDate:        doc.DueDate,
		Status:         string(models.NormalizeDocumentStatus(doc.Status)),
		Tags:           doc.Tags,
		TagsText:       utils.JoinTags(doc.Tags),
		Visible:        doc.Visible,
		Pinned:         doc.Pinned,
		CreatedAt:      doc.CreatedAt,
		UpdatedAt:      doc.UpdatedAt,
	}
}

// ToDocumentDTOs converts a slice of Document models to DTOs
func ToDocumentDTOs(docs []models.Document) []DocumentDTO {
	dtos := make([]DocumentDTO, len(docs))
	for i, d := range docs {
		dtos[i] = ToDocumentDTO(d)
	}
	return dtos
}

// ToDocumentOverviewDTO converts a computed overview to its response shape
func ToDocumentOverviewDTO(overview services.DocumentOverview) DocumentOverviewDTO {
	categories := make(map[string][]DocumentDTO, len(overview.ByCategory))
	for cat, docs := range overview.ByCategory {
		categories[cat] = ToDocumentDTOs(docs)
	}
	return DocumentOverviewDTO{
		DueToday:   ToDocumentDTOs(overview.DueToday),
		Overdue:    ToDocumentDTOs(overview.Overdue),
		Pinned:     ToDocumentDTOs(overview.Pinned),
		Categories: categories,
	}
}
