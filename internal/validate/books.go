package validate

import (
	"net/url"
	"unicode/utf8"

	"github.com/readrhq/readr/internal/apperr"
	"github.com/readrhq/readr/internal/entities"
)

const (
	maxTitleLen  = 200
	maxAuthorLen = 120
	maxGenreLen  = 80
	maxPages     = 10_000

	defaultBookLimit = 20
	maxBookLimit     = 100
)

// BookCreate is the request body schema for POST /books.
type BookCreate struct {
	Title       string               `json:"title"`
	Author      *string              `json:"author"`
	Genre       *string              `json:"genre"`
	Status      *entities.BookStatus `json:"status"`
	PageCount   *int                 `json:"pageCount"`
	CurrentPage *int                 `json:"currentPage"`
}

// Validate normalizes and validates the create payload and returns the typed
// book ready for persistence. Status defaults to PLANNED when omitted.
func (in *BookCreate) Validate() (*entities.Book, *apperr.Error) {
	v := New()
	in.Author = blankToNil(in.Author)
	in.Genre = blankToNil(in.Genre)

	v.Check(in.Title != "", "title", "Title is required")
	v.Check(utf8.RuneCountInString(in.Title) <= maxTitleLen, "title", "Title must be at most 200 characters")
	checkBookFields(v, in.Author, in.Genre, in.Status, in.PageCount, in.CurrentPage)

	// Cross-field rule runs only after every per-field rule passed.
	if v.Valid() {
		checkPageInvariant(v, in.PageCount, in.CurrentPage)
	}
	if err := v.Err("Validation failed"); err != nil {
		return nil, err
	}

	status := entities.BookStatusPlanned
	if in.Status != nil {
		status = *in.Status
	}
	return &entities.Book{
		Title:       in.Title,
		Author:      in.Author,
		Genre:       in.Genre,
		Status:      status,
		PageCount:   in.PageCount,
		CurrentPage: in.CurrentPage,
	}, nil
}

// BookPatch is the request body schema for PATCH /books/:id. Absent fields
// retain their persisted values.
type BookPatch struct {
	Title       *string              `json:"title"`
	Author      *string              `json:"author"`
	Genre       *string              `json:"genre"`
	Status      *entities.BookStatus `json:"status"`
	PageCount   *int                 `json:"pageCount"`
	CurrentPage *int                 `json:"currentPage"`
}

// Validate normalizes the patch and checks every supplied field. A patch with
// zero recognized fields (after blank normalization) is rejected outright.
func (p *BookPatch) Validate() *apperr.Error {
	p.Author = blankToNil(p.Author)
	p.Genre = blankToNil(p.Genre)

	if p.Title == nil && p.Author == nil && p.Genre == nil &&
		p.Status == nil && p.PageCount == nil && p.CurrentPage == nil {
		return apperr.Validation("At least one field must be provided to update a book", nil)
	}

	v := New()
	if p.Title != nil {
		v.Check(*p.Title != "", "title", "Title is required")
		v.Check(utf8.RuneCountInString(*p.Title) <= maxTitleLen, "title", "Title must be at most 200 characters")
	}
	checkBookFields(v, p.Author, p.Genre, p.Status, p.PageCount, p.CurrentPage)
	if v.Valid() {
		checkPageInvariant(v, p.PageCount, p.CurrentPage)
	}
	return v.Err("Validation failed")
}

// Apply merges the patch into book, leaving absent fields untouched.
func (p *BookPatch) Apply(book *entities.Book) {
	if p.Title != nil {
		book.Title = *p.Title
	}
	if p.Author != nil {
		book.Author = p.Author
	}
	if p.Genre != nil {
		book.Genre = p.Genre
	}
	if p.Status != nil {
		book.Status = *p.Status
	}
	if p.PageCount != nil {
		book.PageCount = p.PageCount
	}
	if p.CurrentPage != nil {
		book.CurrentPage = p.CurrentPage
	}
}

// BookPages enforces the page invariant against a merged book state. Used by
// the update handler so a patch is checked against the resulting combination,
// not just the fields present in the payload.
func BookPages(book *entities.Book) *apperr.Error {
	v := New()
	checkPageInvariant(v, book.PageCount, book.CurrentPage)
	return v.Err("Validation failed")
}

// BookList is the query-string schema for GET /books.
func BookList(q url.Values) (entities.BookFilter, *apperr.Error) {
	v := New()
	filter := entities.BookFilter{Limit: defaultBookLimit}

	if search := q.Get("search"); search != "" {
		v.Check(utf8.RuneCountInString(search) <= maxTitleLen, "search", "search must be at most 200 characters")
		filter.Search = search
	}
	if status := q.Get("status"); status != "" {
		filter.Status = entities.BookStatus(status)
		v.Check(filter.Status.Valid(), "status", "Invalid status")
	}

	filter.Limit = readQueryInt(v, q, "limit", defaultBookLimit)
	v.Check(filter.Limit >= 1 && filter.Limit <= maxBookLimit, "limit", "limit must be between 1 and 100")
	filter.Offset = readQueryInt(v, q, "offset", 0)
	v.Check(filter.Offset >= 0, "offset", "offset must be >= 0")

	if err := v.Err("Validation failed"); err != nil {
		return entities.BookFilter{}, err
	}
	return filter, nil
}

func checkBookFields(v *Validator, author, genre *string, status *entities.BookStatus, pageCount, currentPage *int) {
	if author != nil {
		v.Check(utf8.RuneCountInString(*author) <= maxAuthorLen, "author", "Author must be at most 120 characters")
	}
	if genre != nil {
		v.Check(utf8.RuneCountInString(*genre) <= maxGenreLen, "genre", "Genre must be at most 80 characters")
	}
	if status != nil {
		v.Check(status.Valid(), "status", "Invalid status")
	}
	if pageCount != nil {
		v.Check(*pageCount >= 1, "pageCount", "Page count must be a positive integer")
		v.Check(*pageCount <= maxPages, "pageCount", "Page count is too large")
	}
	if currentPage != nil {
		v.Check(*currentPage >= 0, "currentPage", "Current page cannot be negative")
		v.Check(*currentPage <= maxPages, "currentPage", "Current page is too large")
	}
}

func checkPageInvariant(v *Validator, pageCount, currentPage *int) {
	if pageCount != nil && currentPage != nil && *currentPage > *pageCount {
		v.AddError("currentPage", "Current page cannot be greater than total page count")
	}
}
