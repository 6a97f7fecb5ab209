// Package database provides the data access layer for the application.
//
// # Architecture
//
// The database layer is organized into domain-specific sub-packages:
//
//	database/
//	├── database.go      # Connection setup, migrations
//	├── books/           # Book CRUD, search and cascade deletion
//	└── sessions/        # Reading session CRUD and date filtering
//
// # Using Sub-packages
//
// Each sub-package provides a Repository type with domain-specific operations:
//
//	// Initialize database connection
//	db, err := database.NewDatabase("./readr.db")
//
//	// Create domain-specific repositories
//	booksRepo := books.NewRepository(db.DB)
//	sessionsRepo := sessions.NewRepository(db.DB)
//
//	// Use repositories
//	book, err := booksRepo.GetByID(id)
//
// # Interface Implementations
//
//   - books.Repository: implements http.BookStore
//   - sessions.Repository: implements http.SessionStore
//
// Compile-time checks for these live in internal/interfaces.
package database
