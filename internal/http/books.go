package http

import (
	"github.com/gin-gonic/gin"

	"github.com/readrhq/readr/internal/apperr"
	"github.com/readrhq/readr/internal/entities"
	"github.com/readrhq/readr/internal/validate"
)

type BooksController struct {
	store BookStore
}

func NewBooksController(store BookStore) *BooksController {
	return &BooksController{store: store}
}

// List returns books newest-created first, filtered and paginated.
// GET /books?search=&status=&limit=&offset=
func (controller *BooksController) List(c *gin.Context) {
	filter, appErr := validate.BookList(c.Request.URL.Query())
	if appErr != nil {
		respondError(c, appErr)
		return
	}

	books, err := controller.store.List(filter)
	if err != nil {
		respondError(c, err)
		return
	}
	if books == nil {
		books = []entities.Book{}
	}
	respondOK(c, books)
}

// Create persists a new book. Status defaults to PLANNED when omitted.
// POST /books
func (controller *BooksController) Create(c *gin.Context) {
	var input validate.BookCreate
	if appErr := bindJSON(c, &input); appErr != nil {
		respondError(c, appErr)
		return
	}

	book, appErr := input.Validate()
	if appErr != nil {
		respondError(c, appErr)
		return
	}

	if err := controller.store.Create(book); err != nil {
		respondError(c, err)
		return
	}
	respondCreated(c, book)
}

// Update applies a partial update. The page invariant is re-checked against
// the merged state, so a patch cannot push currentPage past an already
// persisted pageCount (or vice versa).
// PATCH /books/:id
func (controller *BooksController) Update(c *gin.Context) {
	id := c.Param("id")
	if !validate.UUID(id) {
		respondError(c, apperr.Validation("Invalid book id", nil))
		return
	}

	var patch validate.BookPatch
	if appErr := bindJSON(c, &patch); appErr != nil {
		respondError(c, appErr)
		return
	}
	if appErr := patch.Validate(); appErr != nil {
		respondError(c, appErr)
		return
	}

	existing, err := controller.store.GetByID(id)
	if err != nil {
		respondError(c, notFoundOr(err, "Book not found"))
		return
	}

	merged := *existing
	patch.Apply(&merged)
	if appErr := validate.BookPages(&merged); appErr != nil {
		respondError(c, appErr)
		return
	}

	if err := controller.store.Save(&merged); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, merged)
}

// Delete removes a book and all of its sessions as one logical unit.
// DELETE /books/:id
func (controller *BooksController) Delete(c *gin.Context) {
	id := c.Param("id")
	if !validate.UUID(id) {
		respondError(c, apperr.Validation("Invalid book id", nil))
		return
	}

	if _, err := controller.store.GetByID(id); err != nil {
		respondError(c, notFoundOr(err, "Book not found"))
		return
	}

	if err := controller.store.DeleteWithSessions(id); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"id": id})
}
