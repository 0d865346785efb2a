package dto

import (
	"time"

	"github.com/teamhub/teamhub/internal/models"
)

// LinkDTO represents one global link in API responses
type LinkDTO struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// SettingsDTO represents the global settings record
type SettingsDTO struct {
	Links     []LinkDTO `json:"links"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToSettingsDTO converts a GlobalSettings model to SettingsDTO
func ToSettingsDTO(settings models.GlobalSettings) SettingsDTO {
	links := make([]LinkDTO, len(settings.Links))
	for i, l := range settings.Links {
		links[i] = LinkDTO{Label: l.Label, URL: l.URL}
	}
	return SettingsDTO{
		Links:     links,
		UpdatedAt: settings.UpdatedAt,
	}
}
