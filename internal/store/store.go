// Package store is the entity store adapter: it owns all access to the three
// persisted collections (documents, tickets, the settings singleton) and
// fans full-collection snapshots out to subscribers after every successful
// write. Consumers treat each delivery as an authoritative replacement of
// their local state, never as a diff.
package store

import (
	"errors"

	"github.com/teamhub/teamhub/internal/models"
)

var (
	// ErrUnavailable wraps connection-level failures. Callers degrade to a
	// loading state and rely on the store's own reconnection; the adapter
	// performs no retries of its own.
	ErrUnavailable = errors.New("store unavailable")

	// ErrWriteRejected wraps create/update/delete failures so callers can
	// surface them and ask the actor to resubmit.
	ErrWriteRejected = errors.New("write rejected by store")

	// ErrNotFound is returned when a mutation targets an id that no longer
	// exists, including restore attempts on hard-deleted records.
	ErrNotFound = errors.New("record not found")
)

// Store abstracts create/update/delete/subscribe against the remote
// collections. All updates carry partial-field maps rather than full-record
// payloads: concurrent writers to the same record must not clobber each
// other's unrelated fields under last-write-wins.
type Store interface {
	CreateDocument(doc *models.Document) error
	UpdateDocument(id string, fields map[string]any) error
	DeleteDocument(id string) error
	GetDocument(id string) (*models.Document, error)
	ListDocuments() ([]models.Document, error)
	SubscribeDocuments() (<-chan []models.Document, func(), error)

	CreateTicket(ticket *models.Ticket) error
	UpdateTicket(id string, fields map[string]any) error
	DeleteTicket(id string) error
	GetTicket(id string) (*models.Ticket, error)
	ListTickets() ([]models.Ticket, error)
	SubscribeTickets() (<-chan []models.Ticket, func(), error)

	GetSettings() (*models.GlobalSettings, error)
	UpsertSettings(links []models.Link) (*models.GlobalSettings, error)
	SubscribeSettings() (<-chan models.GlobalSettings, func(), error)
}
