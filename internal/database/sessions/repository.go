// Package sessions provides database operations for reading session management.
//
// This package implements the SessionStore interface defined in internal/http/stores.go.
//
// # Interface Implementation
//
//	var _ http.SessionStore = (*Repository)(nil)
package sessions

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/readrhq/readr/internal/entities"
)

// Repository handles all reading session database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new sessions repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// List returns sessions matching the filter, most recent date first. From and
// To bound the session date inclusively; search matches notes.
func (r *Repository) List(filter entities.SessionFilter) ([]entities.Session, error) {
	query := r.db.Model(&entities.Session{})

	if filter.BookID != "" {
		query = query.Where("book_id = ?", filter.BookID)
	}
	if filter.From != nil {
		query = query.Where("date >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("date <= ?", *filter.To)
	}
	if filter.Search != "" {
		query = query.Where("LOWER(notes) LIKE LOWER(?)", "%"+filter.Search+"%")
	}

	query = query.Order("date DESC, id DESC")
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var sessions []entities.Session
	err := query.Find(&sessions).Error
	return sessions, err
}

// GetByID retrieves a session by its identifier. Returns
// gorm.ErrRecordNotFound when the id does not resolve.
func (r *Repository) GetByID(id string) (*entities.Session, error) {
	var session entities.Session
	err := r.db.Where("id = ?", id).First(&session).Error
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// Create persists a new session, assigning its identifier.
func (r *Repository) Create(session *entities.Session) error {
	if session.ID == "" {
		session.ID = uuid.NewString()
	}
	return r.db.Create(session).Error
}

// Save persists the full merged state of an existing session.
func (r *Repository) Save(session *entities.Session) error {
	return r.db.Save(session).Error
}

// Delete removes a session. Deleting a session never affects its book.
func (r *Repository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&entities.Session{}).Error
}
