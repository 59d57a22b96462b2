package http

import (
	"github.com/openshelf/catalog/internal/database"
	"github.com/openshelf/catalog/internal/database/crud"
	"github.com/openshelf/catalog/internal/entities"
)

// RouterConfig contains all dependencies needed to create the HTTP
// router. Each entity gets its own store so tests can substitute any
// of them independently.
type RouterConfig struct {
	Database *database.Database

	Authors    CrudStore[entities.Author]
	Libraries  CrudStore[entities.Library]
	Categories CrudStore[entities.BookCategory]
	Languages  CrudStore[entities.Language]
	Books      CrudStore[entities.Book]

	LibraryBooks LibraryBooksStore

	Version string
}

var _ CrudStore[entities.Author] = (*crud.Repository[entities.Author])(nil)
