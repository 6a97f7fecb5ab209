package http

import (
	"github.com/gin-gonic/gin"

	"github.com/readrhq/readr/internal/apperr"
	"github.com/readrhq/readr/internal/entities"
	"github.com/readrhq/readr/internal/validate"
)

type SessionsController struct {
	store SessionStore
	books BookGetter
}

func NewSessionsController(store SessionStore, books BookGetter) *SessionsController {
	return &SessionsController{store: store, books: books}
}

// List returns sessions most recent date first, filtered and paginated.
// GET /sessions?bookId=&search=&from=&to=&limit=&offset=
func (controller *SessionsController) List(c *gin.Context) {
	filter, appErr := validate.SessionList(c.Request.URL.Query())
	if appErr != nil {
		respondError(c, appErr)
		return
	}

	sessions, err := controller.store.List(filter)
	if err != nil {
		respondError(c, err)
		return
	}
	if sessions == nil {
		sessions = []entities.Session{}
	}
	respondOK(c, sessions)
}

// Get returns a single session.
// GET /sessions/:id
func (controller *SessionsController) Get(c *gin.Context) {
	id := c.Param("id")
	if !validate.UUID(id) {
		respondError(c, apperr.Validation("Invalid session id", nil))
		return
	}

	session, err := controller.store.GetByID(id)
	if err != nil {
		respondError(c, notFoundOr(err, "Session not found"))
		return
	}
	respondOK(c, session)
}

// Create persists a new session. The referenced book must exist before
// anything is written; a dangling bookId is a not-found condition.
// POST /sessions
func (controller *SessionsController) Create(c *gin.Context) {
	var input validate.SessionCreate
	if appErr := bindJSON(c, &input); appErr != nil {
		respondError(c, appErr)
		return
	}

	session, appErr := input.Validate()
	if appErr != nil {
		respondError(c, appErr)
		return
	}

	if _, err := controller.books.GetByID(session.BookID); err != nil {
		respondError(c, notFoundOr(err, "Book not found for this session"))
		return
	}

	if err := controller.store.Create(session); err != nil {
		respondError(c, err)
		return
	}
	respondCreated(c, session)
}

// Update applies a partial update. A bookId change re-validates that the new
// book exists before anything is applied.
// PATCH /sessions/:id
func (controller *SessionsController) Update(c *gin.Context) {
	id := c.Param("id")
	if !validate.UUID(id) {
		respondError(c, apperr.Validation("Invalid session id", nil))
		return
	}

	var patch validate.SessionPatch
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
		respondError(c, notFoundOr(err, "Session not found"))
		return
	}

	if patch.BookID != nil {
		if _, err := controller.books.GetByID(*patch.BookID); err != nil {
			respondError(c, notFoundOr(err, "Book not found for this session"))
			return
		}
	}

	merged := *existing
	patch.Apply(&merged)
	if err := controller.store.Save(&merged); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, merged)
}

// Delete removes a session; its book is untouched.
// DELETE /sessions/:id
func (controller *SessionsController) Delete(c *gin.Context) {
	id := c.Param("id")
	if !validate.UUID(id) {
		respondError(c, apperr.Validation("Invalid session id", nil))
		return
	}

	if _, err := controller.store.GetByID(id); err != nil {
		respondError(c, notFoundOr(err, "Session not found"))
		return
	}

	if err := controller.store.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"id": id})
}
