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
	ErrForbidden       = errors.New("role is not allowed to perform this action")
	ErrTitleRequired   = errors.New("title is required")
	ErrInvalidCategory = errors.New("category is not one of the known categories")
	ErrInvalidDueDate  = errors.New("due date must be a YYYY-MM-DD calendar date")
	ErrNoFields        = errors.New("no updatable fields were provided")
)

// CreateDocumentInput carries the caller-supplied fields for a new document.
type CreateDocumentInput struct {
	Title          string
	AssignmentLink string
	CanvasLink     string
	Category       string
	DueDate        string
	Tags           string
	Pinned         bool
	Visible        bool
}

// UpdateDocumentInput carries the optional fields of a document edit. Nil
// pointers mean "leave unchanged"; only the present fields reach the store.
type UpdateDocumentInput struct {
	Title          *string
	AssignmentLink *string
	CanvasLink     *string
	Category       *string
	DueDate        *string
	Tags           *string
}

// DocumentService owns all document mutations. Every entry point takes the
// caller's role and checks it before touching the store.
type DocumentService struct {
	store store.Store
}

// NewDocumentService creates a new DocumentService backed by the given store.
func NewDocumentService(st store.Store) *DocumentService {
	return &DocumentService{store: st}
}

// Create validates the input and inserts a new document. Admin only.
func (s *DocumentService) Create(role roles.Role, input CreateDocumentInput) (*models.Document, error) {
	if !roles.Can(role, roles.EntityDocument, roles.ActionCreate) {
		return nil, ErrForbidden
	}

	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrTitleRequired
	}
	if !models.IsValidCategory(models.DocumentCategory(input.Category)) {
		return nil, ErrInvalidCategory
	}
	if input.DueDate != "" && !utils.IsYMD(input.DueDate) {
		return nil, ErrInvalidDueDate
	}

	doc := &models.Document{
		Title:          title,
		AssignmentLink: strings.TrimSpace(input.AssignmentLink),
		CanvasLink:     strings.TrimSpace(input.CanvasLink),
		Category:       models.DocumentCategory(input.Category),
		DueDate:        input.DueDate,
		Tags:           models.StringList(utils.SplitTags(input.Tags)),
		Pinned:         input.Pinned,
		Visible:        input.Visible,
		Status:         models.DocumentStatusInProgress,
	}
	if err := s.store.CreateDocument(doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// Update applies a partial edit to an existing document. Admin only. Only
// the fields present in the input are written.
func (s *DocumentService) Update(role roles.Role, id string, input UpdateDocumentInput) error {
	if !roles.Can(role, roles.EntityDocument, roles.ActionEdit) {
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
	if input.AssignmentLink != nil {
		fields["assignment_link"] = strings.TrimSpace(*input.AssignmentLink)
	}
	if input.CanvasLink != nil {
		fields["canvas_link"] = strings.TrimSpace(*input.CanvasLink)
	}
	if input.Category != nil {
		if !models.IsValidCategory(models.DocumentCategory(*input.Category)) {
			return ErrInvalidCategory
		}
		fields["category"] = *input.Category
	}
	if input.DueDate != nil {
		if *input.DueDate != "" && !utils.IsYMD(*input.DueDate) {
			return ErrInvalidDueDate
		}
		fields["due_date"] = *input.DueDate
	}
	if input.Tags != nil {
		fields["tags"] = models.StringList(utils.SplitTags(*input.Tags))
	}
	if len(fields) == 0 {
		return ErrNoFields
	}

	return s.store.UpdateDocument(id, fields)
}

// Delete removes a document permanently. Admin only.
func (s *DocumentService) Delete(role roles.Role, id string) error {
	if !roles.Can(role, roles.EntityDocument, roles.ActionDelete) {
		return ErrForbidden
	}
	return s.store.DeleteDocument(id)
}

// ToggleVisibility flips a document between shown and hidden. Admin only.
func (s *DocumentService) ToggleVisibility(role roles.Role, id string) error {
	if !roles.Can(role, roles.EntityDocument, roles.ActionToggleVisible) {
		return ErrForbidden
	}
	doc, err := s.store.GetDocument(id)
	if err != nil {
		return err
	}
	return s.store.UpdateDocument(id, map[string]any{"visible": !doc.Visible})
}

// TogglePin flips a document's pinned flag. Admin only.
func (s *DocumentService) TogglePin(role roles.Role, id string) error {
	if !roles.Can(role, roles.EntityDocument, roles.ActionTogglePin) {
		return ErrForbidden
	}
	doc, err := s.store.GetDocument(id)
	if err != nil {
		return err
	}
	return s.store.UpdateDocument(id, map[string]any{"pinned": !doc.Pinned})
}

// ToggleStatus cycles a document between in progress and done. Admin only.
func (s *DocumentService) ToggleStatus(role roles.Role, id string) error {
	if !roles.Can(role, roles.EntityDocument, roles.ActionToggleStatus) {
		return ErrForbidden
	}
	doc, err := s.store.GetDocument(id)
	if err != nil {
		return err
	}
	next := models.DocumentStatusDone
	if models.NormalizeDocumentStatus(doc.Status) == models.DocumentStatusDone {
		next = models.DocumentStatusInProgress
	}
	return s.store.UpdateDocument(id, map[string]any{"status": next})
}

// List returns the documents the role is allowed to see, newest first.
// Admins see everything; other roles only see visible documents.
func (s *DocumentService) List(role roles.Role) ([]models.Document, error) {
	docs, err := s.store.ListDocuments()
	if err != nil {
		return nil, err
	}
	if role == roles.RoleAdmin {
		return docs, nil
	}
	return VisibleDocuments(docs), nil
}

// Get returns a single document when the role is allowed to see it.
func (s *DocumentService) Get(role roles.Role, id string) (*models.Document, error) {
	doc, err := s.store.GetDocument(id)
	if err != nil {
		return nil, err
	}
	if role != roles.RoleAdmin && !doc.Visible {
		return nil, store.ErrNotFound
	}
	return doc, nil
}
