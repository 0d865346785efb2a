package services

import (
	"strings"

	"github.com/teamhub/teamhub/internal/models"
	"github.com/teamhub/teamhub/internal/roles"
	"github.com/teamhub/teamhub/internal/utils"
)

// StatusFilterAll matches every document regardless of status.
const StatusFilterAll = "All"

// DocumentOverview groups a document snapshot into the dashboard buckets.
// The buckets overlap: a pinned document due today appears in DueToday,
// Pinned, and its category bucket at the same time.
type DocumentOverview struct {
	DueToday   []models.Document
	Overdue    []models.Document
	Pinned     []models.Document
	ByCategory map[string][]models.Document
}

// VisibleDocuments returns the documents with the visible flag set,
// preserving snapshot order.
func VisibleDocuments(docs []models.Document) []models.Document {
	out := make([]models.Document, 0, len(docs))
	for _, d := range docs {
		if d.Visible {
			out = append(out, d)
		}
	}
	return out
}

// DocumentsVisibleTo narrows a snapshot to what the role may see.
func DocumentsVisibleTo(docs []models.Document, role roles.Role) []models.Document {
	if role == roles.RoleAdmin {
		return docs
	}
	return VisibleDocuments(docs)
}

// BuildDocumentOverview computes the dashboard buckets for a snapshot
// against the given local calendar date (YYYY-MM-DD). Due dates are compared
// as calendar dates, never as instants. Documents with an unrecognized
// category are left out of every category bucket.
func BuildDocumentOverview(docs []models.Document, today string) DocumentOverview {
	overview := DocumentOverview{
		DueToday:   []models.Document{},
		Overdue:    []models.Document{},
		Pinned:     []models.Document{},
		ByCategory: map[string][]models.Document{},
	}
	for _, cat := range models.DocumentCategories() {
		overview.ByCategory[string(cat)] = []models.Document{}
	}

	for _, d := range docs {
		if d.DueDate != "" {
			if d.DueDate == today {
				overview.DueToday = append(overview.DueToday, d)
			} else if utils.YMDBefore(d.DueDate, today) {
				overview.Overdue = append(overview.Overdue, d)
			}
		}
		if d.Pinned {
			overview.Pinned = append(overview.Pinned, d)
		}
		if models.IsValidCategory(d.Category) {
			overview.ByCategory[string(d.Category)] = append(overview.ByCategory[string(d.Category)], d)
		}
	}
	return overview
}

// FilterDocuments narrows a snapshot by free-text search and status filter.
// The search is a case-insensitive substring match over the concatenation of
// title, category, status, both links, and all tags. An empty query matches
// everything, as does the "All" status filter.
func FilterDocuments(docs []models.Document, query, statusFilter string) []models.Document {
	query = strings.ToLower(strings.TrimSpace(query))
	out := make([]models.Document, 0, len(docs))
	for _, d := range docs {
		status := models.NormalizeDocumentStatus(d.Status)
		if statusFilter != "" && statusFilter != StatusFilterAll && status != models.DocumentStatus(statusFilter) {
			continue
		}
		if query != "" && !strings.Contains(documentHaystack(d, status), query) {
			continue
		}
		out = append(out, d)
	}
	return out
}

func documentHaystack(d models.Document, status models.DocumentStatus) string {
	parts := []string{d.Title, string(d.Category), string(status), d.AssignmentLink, d.CanvasLink}
	parts = append(parts, d.Tags...)
	return strings.ToLower(strings.Join(parts, " "))
}
