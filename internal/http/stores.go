package http

import "github.com/readrhq/readr/internal/entities"

// This file consolidates all store interface definitions used by HTTP
// controllers. Each controller depends only on the operations it needs;
// internal/interfaces holds the compile-time implementation checks.

// BookGetter provides read access to books for controllers that only need to
// resolve a book reference.
type BookGetter interface {
	GetByID(id string) (*entities.Book, error)
}

// BookStore defines the persistence operations behind the books resource.
type BookStore interface {
	BookGetter
	List(filter entities.BookFilter) ([]entities.Book, error)
	Create(book *entities.Book) error
	Save(book *entities.Book) error
	DeleteWithSessions(id string) error
}

// SessionStore defines the persistence operations behind the sessions resource.
type SessionStore interface {
	List(filter entities.SessionFilter) ([]entities.Session, error)
	GetByID(id string) (*entities.Session, error)
	Create(session *entities.Session) error
	Save(session *entities.Session) error
	Delete(id string) error
}
