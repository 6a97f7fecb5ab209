// Package books provides database operations for book management.
//
// This package implements the BookStore interface defined in internal/http/stores.go.
//
// # Interface Implementation
//
//	var _ http.BookStore = (*Repository)(nil)
//
// # Usage
//
//	repo := books.NewRepository(db)
//	list, err := repo.List(entities.BookFilter{Search: "dune", Limit: 20})
package books

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/readrhq/readr/internal/entities"
)

// Repository handles all book database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new books repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// List returns books matching the filter, newest-created first. Search is a
// case-insensitive substring match over title, author or genre.
func (r *Repository) List(filter entities.BookFilter) ([]entities.Book, error) {
	query := r.db.Model(&entities.Book{})

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where(
			"LOWER(title) LIKE LOWER(?) OR LOWER(author) LIKE LOWER(?) OR LOWER(genre) LIKE LOWER(?)",
			pattern, pattern, pattern,
		)
	}

	query = query.Order("created_at DESC, id DESC")
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var books []entities.Book
	err := query.Find(&books).Error
	return books, err
}

// GetByID retrieves a book by its identifier. Returns gorm.ErrRecordNotFound
// when the id does not resolve.
func (r *Repository) GetByID(id string) (*entities.Book, error) {
	var book entities.Book
	err := r.db.Where("id = ?", id).First(&book).Error
	if err != nil {
		return nil, err
	}
	return &book, nil
}

// Create persists a new book, assigning its identifier.
func (r *Repository) Create(book *entities.Book) error {
	if book.ID == "" {
		book.ID = uuid.NewString()
	}
	return r.db.Create(book).Error
}

// Save persists the full merged state of an existing book.
func (r *Repository) Save(book *entities.Book) error {
	return r.db.Save(book).Error
}

// DeleteWithSessions removes all sessions owned by the book and then the book
// itself as a single transaction, so a failure leaves both in place.
func (r *Repository) DeleteWithSessions(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("book_id = ?", id).Delete(&entities.Session{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&entities.Book{}).Error
	})
}
