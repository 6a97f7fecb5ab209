package sessions

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/readrhq/readr/internal/entities"
)

func setupTestDB(t *testing.T) (*gorm.DB, *Repository, func()) {
	dbPath := "./test_sessions_" + strings.ReplaceAll(t.Name(), "/", "_") + ".db"

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&entities.Book{},
		&entities.Session{},
	)
	require.NoError(t, err)

	repo := NewRepository(db)

	cleanup := func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
		os.Remove(dbPath)
	}

	return db, repo, cleanup
}

func createTestBook(t *testing.T, db *gorm.DB, title string) *entities.Book {
	t.Helper()
	book := &entities.Book{
		ID:     "book-" + title,
		Title:  title,
		Status: entities.BookStatusPlanned,
	}
	require.NoError(t, db.Create(book).Error)
	return book
}

func createTestSession(t *testing.T, repo *Repository, bookID string, notes string, date time.Time) *entities.Session {
	t.Helper()
	session := &entities.Session{
		BookID:  bookID,
		Minutes: 30,
		Date:    date,
	}
	if notes != "" {
		session.Notes = &notes
	}
	require.NoError(t, repo.Create(session))
	return session
}

func TestRepository_CreateAndGet(t *testing.T) {
	db, repo, cleanup := setupTestDB(t)
	defer cleanup()

	book := createTestBook(t, db, "Dune")
	session := createTestSession(t, repo, book.ID, "good pace", time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC))
	assert.NotEmpty(t, session.ID)

	fetched, err := repo.GetByID(session.ID)
	require.NoError(t, err)
	assert.Equal(t, book.ID, fetched.BookID)
	assert.Equal(t, "good pace", *fetched.Notes)
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	_, repo, cleanup := setupTestDB(t)
	defer cleanup()

	_, err := repo.GetByID("5f6a9c2e-4f0b-4c9d-9a3e-0d4f1b2c3a4d")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRepository_List_OrderedByDateDesc(t *testing.T) {
	db, repo, cleanup := setupTestDB(t)
	defer cleanup()

	book := createTestBook(t, db, "Dune")
	createTestSession(t, repo, book.ID, "first", time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	createTestSession(t, repo, book.ID, "third", time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC))
	createTestSession(t, repo, book.ID, "second", time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC))

	list, err := repo.List(entities.SessionFilter{Limit: 50})
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "third", *list[0].Notes)
	assert.Equal(t, "second", *list[1].Notes)
	assert.Equal(t, "first", *list[2].Notes)
}

func TestRepository_List_DateBoundsInclusive(t *testing.T) {
	db, repo, cleanup := setupTestDB(t)
	defer cleanup()

	book := createTestBook(t, db, "Dune")
	createTestSession(t, repo, book.ID, "early", time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	target := createTestSession(t, repo, book.ID, "target", time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC))
	createTestSession(t, repo, book.ID, "late", time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC))

	from := time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC)
	list, err := repo.List(entities.SessionFilter{From: &from, To: &to, Limit: 50})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, target.ID, list[0].ID)
}

func TestRepository_List_BookFilterAndSearch(t *testing.T) {
	db, repo, cleanup := setupTestDB(t)
	defer cleanup()

	dune := createTestBook(t, db, "Dune")
	emma := createTestBook(t, db, "Emma")
	createTestSession(t, repo, dune.ID, "Great worldbuilding", time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC))
	createTestSession(t, repo, dune.ID, "slow chapter", time.Date(2025, 2, 2, 0, 0, 0, 0, time.UTC))
	createTestSession(t, repo, emma.ID, "great dialogue", time.Date(2025, 2, 3, 0, 0, 0, 0, time.UTC))

	list, err := repo.List(entities.SessionFilter{BookID: dune.ID, Limit: 50})
	require.NoError(t, err)
	assert.Len(t, list, 2)

	// Notes search is case-insensitive and crosses books.
	list, err = repo.List(entities.SessionFilter{Search: "GREAT", Limit: 50})
	require.NoError(t, err)
	assert.Len(t, list, 2)

	list, err = repo.List(entities.SessionFilter{BookID: dune.ID, Search: "great", Limit: 50})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Great worldbuilding", *list[0].Notes)
}

func TestRepository_List_Pagination(t *testing.T) {
	db, repo, cleanup := setupTestDB(t)
	defer cleanup()

	book := createTestBook(t, db, "Dune")
	for day := 1; day <= 5; day++ {
		createTestSession(t, repo, book.ID, "", time.Date(2025, 4, day, 0, 0, 0, 0, time.UTC))
	}

	list, err := repo.List(entities.SessionFilter{Limit: 2, Offset: 2})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, 3, list[0].Date.Day())
	assert.Equal(t, 2, list[1].Date.Day())
}

func TestRepository_SaveAndDelete(t *testing.T) {
	db, repo, cleanup := setupTestDB(t)
	defer cleanup()

	book := createTestBook(t, db, "Dune")
	session := createTestSession(t, repo, book.ID, "", time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC))

	session.Minutes = 90
	require.NoError(t, repo.Save(session))

	fetched, err := repo.GetByID(session.ID)
	require.NoError(t, err)
	assert.Equal(t, 90, fetched.Minutes)

	require.NoError(t, repo.Delete(session.ID))
	_, err = repo.GetByID(session.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	// Deleting a session never affects its book.
	var count int64
	require.NoError(t, db.Model(&entities.Book{}).Where("id = ?", book.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
