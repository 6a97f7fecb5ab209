package entities

import (
	"time"
)

// BookStatus tracks where a book sits in the reading lifecycle.
type BookStatus string

const (
	BookStatusPlanned   BookStatus = "PLANNED"
	BookStatusReading   BookStatus = "READING"
	BookStatusFinished  BookStatus = "FINISHED"
	BookStatusAbandoned BookStatus = "ABANDONED"
)

// Valid reports whether s is one of the known status values.
func (s BookStatus) Valid() bool {
	switch s {
	case BookStatusPlanned, BookStatusReading, BookStatusFinished, BookStatusAbandoned:
		return true
	}
	return false
}

type Book struct {
	ID          string     `gorm:"primaryKey;size:36" json:"id"`
	Title       string     `gorm:"index;size:200" json:"title"`
	Author      *string    `gorm:"index;size:120" json:"author"`
	Genre       *string    `gorm:"size:80" json:"genre"`
	Status      BookStatus `gorm:"size:20;default:'PLANNED'" json:"status"`
	PageCount   *int       `json:"pageCount"`
	CurrentPage *int       `json:"currentPage"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`

	// Sessions are owned by the book: deleting a book removes them first.
	// They are never embedded in book responses.
	Sessions []Session `gorm:"foreignKey:BookID" json:"-"`
}

// BookFilter carries validated list parameters down to the books repository.
type BookFilter struct {
	Search string     // case-insensitive substring over title/author/genre
	Status BookStatus // empty means any
	Limit  int
	Offset int
}
