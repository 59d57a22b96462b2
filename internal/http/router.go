package http

import (
	"github.com/gin-gonic/gin"
)

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	health := NewHealthController(cfg.Database, cfg.Version)
	authors := NewCrudController(cfg.Authors, "author", "/api/authors")
	libraries := NewCrudController(cfg.Libraries, "library", "/api/libraries")
	categories := NewCrudController(cfg.Categories, "book category", "/api/bookcategories").
		WithValidation(validateCategoryParent)
	languages := NewCrudController(cfg.Languages, "language", "/api/languages")
	books := NewCrudController(cfg.Books, "book", "/api/books")

	// Health endpoints
	router.GET("/health", health.Status)
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	// Entity CRUD endpoints
	authors.RegisterRoutes(router)
	libraries.RegisterRoutes(router)
	categories.RegisterRoutes(router)
	languages.RegisterRoutes(router)
	books.RegisterRoutes(router)

	// Library owned-books sub-resource
	if cfg.LibraryBooks != nil {
		libraryBooks := NewLibraryBooksController(cfg.LibraryBooks)
		router.GET("/api/libraries/:id/books", libraryBooks.GetBooks)
	}

	return router
}
