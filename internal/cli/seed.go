package cli

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/readrhq/readr/internal/config"
	"github.com/readrhq/readr/internal/database"
	"github.com/readrhq/readr/internal/database/books"
	"github.com/readrhq/readr/internal/database/sessions"
	"github.com/readrhq/readr/internal/entities"
)

// SeedCommand populates an empty database with a sample book and session.
// It is a no-op when any book already exists.
type SeedCommand struct {
	DatabasePath string
}

func NewSeedCommand() *SeedCommand {
	return &SeedCommand{}
}

func (cmd *SeedCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("seed", flag.ExitOnError)

	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the database file to seed")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s seed [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Insert sample data into an empty database.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	return fs.Parse(args)
}

func (cmd *SeedCommand) Run() error {
	db, err := database.NewDatabase(cmd.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()

	var count int64
	if err := db.DB.Model(&entities.Book{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count books: %w", err)
	}
	if count > 0 {
		fmt.Println("Seed: books already exist, skipping.")
		return nil
	}

	booksRepo := books.NewRepository(db.DB)
	sessionsRepo := sessions.NewRepository(db.DB)

	author := "Conor"
	genre := "Productivity"
	pageCount := 300
	currentPage := 25

	book := &entities.Book{
		Title:       "Readr v2 Test Book",
		Author:      &author,
		Genre:       &genre,
		Status:      entities.BookStatusReading,
		PageCount:   &pageCount,
		CurrentPage: &currentPage,
	}
	if err := booksRepo.Create(book); err != nil {
		return fmt.Errorf("failed to seed book: %w", err)
	}

	notes := "First session logged via seed"
	session := &entities.Session{
		BookID:  book.ID,
		Minutes: 25,
		Notes:   &notes,
		Date:    time.Now().UTC(),
	}
	if err := sessionsRepo.Create(session); err != nil {
		return fmt.Errorf("failed to seed session: %w", err)
	}

	fmt.Printf("Seeded book %q (%s) with one session\n", book.Title, book.ID)
	return nil
}
