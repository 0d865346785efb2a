package models

import "time"

// SettingsKey is the fixed identifier of the single shared settings record.
const SettingsKey = "globals"

// Link is one row of the shared "useful links" list.
type Link struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// GlobalSettings is a singleton record. Writes are upsert-merge at the
// whole-links-array granularity; there is no delete path.
type GlobalSettings struct {
	Key       string    `gorm:"type:varchar(32);primarykey" json:"key"`
	Links     LinkList  `gorm:"serializer:json" json:"links"`
	UpdatedAt time.Time `json:"updated_at"`
}

type StringList []string

type LinkList []Link
