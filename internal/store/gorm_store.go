package store

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/teamhub/teamhub/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStore is a GORM-backed Store. Every successful mutation re-queries the
// full collection, ordered created_at descending, and publishes the result to
// subscribers.
type GormStore struct {
	db       *gorm.DB
	docs     *feed[[]models.Document]
	tickets  *feed[[]models.Ticket]
	settings *feed[models.GlobalSettings]
}

// NewGormStore creates a Store on top of an open GORM connection.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{
		db:       db,
		docs:     newFeed[[]models.Document](),
		tickets:  newFeed[[]models.Ticket](),
		settings: newFeed[models.GlobalSettings](),
	}
}

func writeError(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %v", ErrWriteRejected, err)
}

func readError(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %v", ErrUnavailable, err)
}

// sanitizeFields strips keys that must never appear in an update: ids are
// immutable, created_at is write-once, and updated_at is stamped here so
// every mutation carries it.
func sanitizeFields(fields map[string]any) map[string]any {
	delete(fields, "id")
	delete(fields, "created_at")
	fields["updated_at"] = time.Now()
	return fields
}

// Documents

func (s *GormStore) CreateDocument(doc *models.Document) error {
	if doc.ID == "" {
		doc.ID = uuid.NewString()
	}
	now := time.Now()
	doc.CreatedAt = now
	doc.UpdatedAt = now

	if err := s.db.Create(doc).Error; err != nil {
		return writeError(err)
	}
	s.notifyDocuments()
	return nil
}

func (s *GormStore) UpdateDocument(id string, fields map[string]any) error {
	res := s.db.Model(&models.Document{}).
		Where("id = ?", id).
		Updates(sanitizeFields(fields))
	if res.Error != nil {
		return writeError(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	s.notifyDocuments()
	return nil
}

func (s *GormStore) DeleteDocument(id string) error {
	res := s.db.Where("id = ?", id).Delete(&models.Document{})
	if res.Error != nil {
		return writeError(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	s.notifyDocuments()
	return nil
}

func (s *GormStore) GetDocument(id string) (*models.Document, error) {
	var doc models.Document
	if err := s.db.Where("id = ?", id).First(&doc).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, readError(err)
	}
	return &doc, nil
}

func (s *GormStore) ListDocuments() ([]models.Document, error) {
	var docs []models.Document
	if err := s.db.Order("created_at DESC").Find(&docs).Error; err != nil {
		return nil, readError(err)
	}
	return docs, nil
}

func (s *GormStore) SubscribeDocuments() (<-chan []models.Document, func(), error) {
	docs, err := s.ListDocuments()
	if err != nil {
		return nil, nil, err
	}
	ch, cancel := s.docs.subscribe(docs)
	return ch, cancel, nil
}

func (s *GormStore) notifyDocuments() {
	docs, err := s.ListDocuments()
	if err != nil {
		log.Printf("store: failed to load documents snapshot: %v", err)
		return
	}
	s.docs.publish(docs)
}

// Tickets

func (s *GormStore) CreateTicket(ticket *models.Ticket) error {
	if ticket.ID == "" {
		ticket.ID = uuid.NewString()
	}
	now := time.Now()
	ticket.CreatedAt = now
	ticket.UpdatedAt = now

	if err := s.db.Create(ticket).Error; err != nil {
		return writeError(err)
	}
	s.notifyTickets()
	return nil
}

func (s *GormStore) UpdateTicket(id string, fields map[string]any) error {
	res := s.db.Model(&models.Ticket{}).
		Where("id = ?", id).
		Updates(sanitizeFields(fields))
	if res.Error != nil {
		return writeError(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	s.notifyTickets()
	return nil
}

func (s *GormStore) DeleteTicket(id string) error {
	res := s.db.Where("id = ?", id).Delete(&models.Ticket{})
	if res.Error != nil {
		return writeError(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	s.notifyTickets()
	return nil
}

func (s *GormStore) GetTicket(id string) (*models.Ticket, error) {
	var ticket models.Ticket
	if err := s.db.Where("id = ?", id).First(&ticket).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, readError(err)
	}
	return &ticket, nil
}

func (s *GormStore) ListTickets() ([]models.Ticket, error) {
	var tickets []models.Ticket
	if err := s.db.Order("created_at DESC").Find(&tickets).Error; err != nil {
		return nil, readError(err)
	}
	return tickets, nil
}

func (s *GormStore) SubscribeTickets() (<-chan []models.Ticket, func(), error) {
	tickets, err := s.ListTickets()
	if err != nil {
		return nil, nil, err
	}
	ch, cancel := s.tickets.subscribe(tickets)
	return ch, cancel, nil
}

func (s *GormStore) notifyTickets() {
	tickets, err := s.ListTickets()
	if err != nil {
		log.Printf("store: failed to load tickets snapshot: %v", err)
		return
	}
	s.tickets.publish(tickets)
}

// Settings singleton

func (s *GormStore) GetSettings() (*models.GlobalSettings, error) {
	var settings models.GlobalSettings
	err := s.db.Where("`key` = ?", models.SettingsKey).First(&settings).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Absent singleton reads as an empty record; the first save
			// creates it.
			return &models.GlobalSettings{Key: models.SettingsKey, Links: models.LinkList{}}, nil
		}
		return nil, readError(err)
	}
	return &settings, nil
}

// UpsertSettings replaces the links array atomically, creating the singleton
// if it does not exist. Concurrent saves are last-write-wins at whole-array
// granularity.
func (s *GormStore) UpsertSettings(links []models.Link) (*models.GlobalSettings, error) {
	settings := models.GlobalSettings{
		Key:       models.SettingsKey,
		Links:     models.LinkList(links),
		UpdatedAt: time.Now(),
	}

	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		UpdateAll: true,
	}).Create(&settings).Error
	if err != nil {
		return nil, writeError(err)
	}

	s.notifySettings()
	return &settings, nil
}

func (s *GormStore) SubscribeSettings() (<-chan models.GlobalSettings, func(), error) {
	settings, err := s.GetSettings()
	if err != nil {
		return nil, nil, err
	}
	ch, cancel := s.settings.subscribe(*settings)
	return ch, cancel, nil
}

func (s *GormStore) notifySettings() {
	settings, err := s.GetSettings()
	if err != nil {
		log.Printf("store: failed to load settings snapshot: %v", err)
		return
	}
	s.settings.publish(*settings)
}
