package interfaces

// This file contains compile-time interface implementation checks.
// These ensure that concrete types satisfy their interfaces at compile time,
// catching missing methods before runtime.
//
// To verify all checks pass: go build ./internal/interfaces/...

import (
	"github.com/readrhq/readr/internal/database/books"
	"github.com/readrhq/readr/internal/database/sessions"
	"github.com/readrhq/readr/internal/http"
)

// BookStore implementations
var _ http.BookStore = (*books.Repository)(nil)
var _ http.BookGetter = (*books.Repository)(nil)

// SessionStore implementations
var _ http.SessionStore = (*sessions.Repository)(nil)
