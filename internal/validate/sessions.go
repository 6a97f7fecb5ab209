package validate

import (
	"net/url"
	"time"
	"unicode/utf8"

	"github.com/readrhq/readr/internal/apperr"
	"github.com/readrhq/readr/internal/entities"
)

const (
	maxSessionMinutes = 1440
	maxNotesLen       = 2000

	defaultSessionLimit = 50
	maxSessionLimit     = 200
)

// SessionCreate is the request body schema for POST /sessions.
type SessionCreate struct {
	BookID  string  `json:"bookId"`
	Minutes int     `json:"minutes"`
	Notes   *string `json:"notes"`
	Date    string  `json:"date"`
}

// Validate normalizes and validates the create payload and returns the typed
// session. Book existence is the handler's concern, not validation's.
func (in *SessionCreate) Validate() (*entities.Session, *apperr.Error) {
	v := New()
	in.Notes = blankToNil(in.Notes)

	v.Check(UUID(in.BookID), "bookId", "Invalid book id")
	checkSessionMinutes(v, in.Minutes)
	if in.Notes != nil {
		v.Check(utf8.RuneCountInString(*in.Notes) <= maxNotesLen, "notes", "Notes must be at most 2000 characters")
	}

	var date time.Time
	if in.Date == "" {
		v.AddError("date", "Date is required")
	} else {
		parsed, ok := ParseDate(in.Date)
		if !ok {
			v.AddError("date", dateFormatMessage)
		}
		date = parsed
	}

	if err := v.Err("Validation failed"); err != nil {
		return nil, err
	}
	return &entities.Session{
		BookID:  in.BookID,
		Minutes: in.Minutes,
		Notes:   in.Notes,
		Date:    date,
	}, nil
}

// SessionPatch is the request body schema for PATCH /sessions/:id. Absent
// fields retain their persisted values.
type SessionPatch struct {
	BookID  *string `json:"bookId"`
	Minutes *int    `json:"minutes"`
	Notes   *string `json:"notes"`
	Date    *string `json:"date"`

	parsedDate *time.Time
}

// Validate normalizes the patch and checks every supplied field.
func (p *SessionPatch) Validate() *apperr.Error {
	p.Notes = blankToNil(p.Notes)

	if p.BookID == nil && p.Minutes == nil && p.Notes == nil && p.Date == nil {
		return apperr.Validation("At least one field must be provided to update a session", nil)
	}

	v := New()
	if p.BookID != nil {
		v.Check(UUID(*p.BookID), "bookId", "Invalid book id")
	}
	if p.Minutes != nil {
		checkSessionMinutes(v, *p.Minutes)
	}
	if p.Notes != nil {
		v.Check(utf8.RuneCountInString(*p.Notes) <= maxNotesLen, "notes", "Notes must be at most 2000 characters")
	}
	if p.Date != nil {
		parsed, ok := ParseDate(*p.Date)
		if ok {
			p.parsedDate = &parsed
		} else {
			v.AddError("date", dateFormatMessage)
		}
	}
	return v.Err("Validation failed")
}

// Apply merges the patch into session, leaving absent fields untouched.
func (p *SessionPatch) Apply(session *entities.Session) {
	if p.BookID != nil {
		session.BookID = *p.BookID
	}
	if p.Minutes != nil {
		session.Minutes = *p.Minutes
	}
	if p.Notes != nil {
		session.Notes = p.Notes
	}
	if p.parsedDate != nil {
		session.Date = *p.parsedDate
	}
}

// SessionList is the query-string schema for GET /sessions.
func SessionList(q url.Values) (entities.SessionFilter, *apperr.Error) {
	v := New()
	filter := entities.SessionFilter{Limit: defaultSessionLimit}

	if bookID := q.Get("bookId"); bookID != "" {
		v.Check(UUID(bookID), "bookId", "Invalid book id")
		filter.BookID = bookID
	}
	if search := q.Get("search"); search != "" {
		v.Check(utf8.RuneCountInString(search) <= 200, "search", "search must be at most 200 characters")
		filter.Search = search
	}
	if from := q.Get("from"); from != "" {
		parsed, ok := ParseDate(from)
		if ok {
			filter.From = &parsed
		} else {
			v.AddError("from", dateFormatMessage)
		}
	}
	if to := q.Get("to"); to != "" {
		parsed, ok := ParseDate(to)
		if ok {
			filter.To = &parsed
		} else {
			v.AddError("to", dateFormatMessage)
		}
	}

	filter.Limit = readQueryInt(v, q, "limit", defaultSessionLimit)
	v.Check(filter.Limit >= 1 && filter.Limit <= maxSessionLimit, "limit", "limit must be between 1 and 200")
	filter.Offset = readQueryInt(v, q, "offset", 0)
	v.Check(filter.Offset >= 0, "offset", "offset must be >= 0")

	if err := v.Err("Validation failed"); err != nil {
		return entities.SessionFilter{}, err
	}
	return filter, nil
}

func checkSessionMinutes(v *Validator, minutes int) {
	v.Check(minutes > 0, "minutes", "Minutes must be greater than 0")
	v.Check(minutes <= maxSessionMinutes, "minutes", "Minutes in a single session cannot exceed 1440 (24h)")
}
