package http

import (
	"github.com/gin-gonic/gin"

	"github.com/readrhq/readr/internal/apperr"
	"github.com/readrhq/readr/internal/database"
)

// RouterConfig carries all dependencies the router needs. Passing a struct
// keeps the constructor signature stable and makes tests easy to wire.
type RouterConfig struct {
	Database     *database.Database
	BookStore    BookStore
	SessionStore SessionStore
	Version      string
	CORSOrigin   string
}

// NewRouter creates and configures the HTTP router. Each resource operation
// is reachable through exactly one route.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	if cfg.CORSOrigin != "" {
		router.Use(CORSMiddleware(cfg.CORSOrigin))
	}

	health := NewHealthController(cfg.Database, cfg.Version)
	books := NewBooksController(cfg.BookStore)
	sessions := NewSessionsController(cfg.SessionStore, cfg.BookStore)

	router.GET("/health", health.Status)

	router.GET("/books", books.List)
	router.POST("/books", books.Create)
	router.PATCH("/books/:id", books.Update)
	router.DELETE("/books/:id", books.Delete)

	router.GET("/sessions", sessions.List)
	router.GET("/sessions/:id", sessions.Get)
	router.POST("/sessions", sessions.Create)
	router.PATCH("/sessions/:id", sessions.Update)
	router.DELETE("/sessions/:id", sessions.Delete)

	router.NoRoute(func(c *gin.Context) {
		respondError(c, apperr.NotFound("Resource not found"))
	})

	return router
}
