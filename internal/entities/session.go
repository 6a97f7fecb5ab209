package entities

import (
	"time"
)

// Session is a single reading session logged against a book.
type Session struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	BookID    string    `gorm:"index;size:36" json:"bookId"`
	Minutes   int       `json:"minutes"`
	Notes     *string   `gorm:"size:2000" json:"notes"`
	Date      time.Time `gorm:"index" json:"date"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Book Book `gorm:"foreignKey:BookID" json:"-"`
}

// SessionFilter carries validated list parameters down to the sessions repository.
type SessionFilter struct {
	BookID string
	Search string // case-insensitive substring over notes
	From   *time.Time
	To     *time.Time
	Limit  int
	Offset int
}
