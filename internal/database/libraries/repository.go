// Package libraries extends the generic library repository with the
// owned-books read: a library's books joined with their author,
// category and language in one response payload.
package libraries

import (
	"errors"

	"gorm.io/gorm"

	"github.com/openshelf/catalog/internal/database/crud"
	"github.com/openshelf/catalog/internal/entities"
)

// Repository handles library rows plus the owned-books eager fetch.
type Repository struct {
	*crud.Repository[entities.Library]

	db *gorm.DB
}

// NewRepository creates a new libraries repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		Repository: crud.NewRepository[entities.Library](db),
		db:         db,
	}
}

// BooksForLibrary returns the books owned by a library with their
// Author, BookCategory and Language resolved into nested objects.
// Returns crud.ErrNotFound when the library itself does not exist.
func (r *Repository) BooksForLibrary(libraryID uint) ([]entities.Book, error) {
	if r.db == nil {
		return nil, crud.ErrStoreUnavailable
	}

	var library entities.Library
	err := r.db.First(&library, libraryID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, crud.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var books []entities.Book
	err = r.db.
		Preload("Author").
		Preload("BookCategory").
		Preload("Language").
		Where("library_id = ?", libraryID).
		Find(&books).Error
	return books, err
}
