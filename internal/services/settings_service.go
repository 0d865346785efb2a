package services

import (
	"strings"

	"github.com/teamhub/teamhub/internal/models"
	"github.com/teamhub/teamhub/internal/roles"
	"github.com/teamhub/teamhub/internal/store"
)

// SettingsService owns the global link list. Anyone may read it; only an
// admin may replace it. Saves replace the whole list at once, last write
// wins.
type SettingsService struct {
	store store.Store
}

// NewSettingsService creates a new SettingsService backed by the given store.
func NewSettingsService(st store.Store) *SettingsService {
	return &SettingsService{store: st}
}

// Get returns the current global settings. A missing record reads as an
// empty link list.
func (s *SettingsService) Get() (*models.GlobalSettings, error) {
	return s.store.GetSettings()
}

// Save replaces the global link list. Admin only. Labels and URLs are
// trimmed and rows left with an empty label or URL are dropped.
func (s *SettingsService) Save(role roles.Role, links []models.Link) error {
	if !roles.Can(role, roles.EntityLinks, roles.ActionEdit) {
		return ErrForbidden
	}

	cleaned := make(models.LinkList, 0, len(links))
	for _, l := range links {
		label := strings.TrimSpace(l.Label)
		url := strings.TrimSpace(l.URL)
		if label == "" || url == "" {
			continue
		}
		cleaned = append(cleaned, models.Link{Label: label, URL: url})
	}

	_, err := s.store.UpsertSettings(cleaned)
	return err
}
