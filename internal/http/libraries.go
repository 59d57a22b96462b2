package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/openshelf/catalog/internal/entities"
)

// LibraryBooksStore provides the owned-books read for a library.
type LibraryBooksStore interface {
	BooksForLibrary(libraryID uint) ([]entities.Book, error)
}

// LibraryBooksController serves a library's books with their author,
// category and language resolved into nested objects.
type LibraryBooksController struct {
	store LibraryBooksStore
}

func NewLibraryBooksController(store LibraryBooksStore) *LibraryBooksController {
	return &LibraryBooksController{store: store}
}

func (controller *LibraryBooksController) GetBooks(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	books, err := controller.store.BooksForLibrary(id)
	if err != nil {
		respondStoreError(c, err, "library", id)
		return
	}
	if books == nil {
		books = []entities.Book{}
	}
	c.JSON(http.StatusOK, books)
}
