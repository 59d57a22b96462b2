// Package crud provides the generic repository shared by every catalog
// entity. Each entity type gets the same five operations over its table;
// nothing here is entity-specific beyond the type parameter.
//
// # Usage
//
//	authors := crud.NewRepository[entities.Author](db)
//	author, err := authors.GetByID(1)
package crud

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Entity is any catalog record with a server-assigned integer identity.
type Entity interface {
	GetID() uint
}

// Repository performs list, get, create, replace and delete operations
// against the table backing T.
type Repository[T Entity] struct {
	db *gorm.DB
}

// NewRepository creates a repository for T over the given handle.
func NewRepository[T Entity](db *gorm.DB) *Repository[T] {
	return &Repository[T]{db: db}
}

// List returns all rows of T in unspecified order.
func (r *Repository[T]) List() ([]T, error) {
	if r.db == nil {
		return nil, ErrStoreUnavailable
	}
	var rows []T
	err := r.db.Find(&rows).Error
	return rows, err
}

// GetByID returns the row with the given ID, or ErrNotFound.
func (r *Repository[T]) GetByID(id uint) (*T, error) {
	if r.db == nil {
		return nil, ErrStoreUnavailable
	}
	var row T
	err := r.db.First(&row, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// Create inserts the entity and fills in its assigned ID.
// Associations are omitted so only the row itself is written; dangling
// foreign keys fail the insert at the storage layer.
func (r *Repository[T]) Create(entity *T) error {
	if r.db == nil {
		return ErrStoreUnavailable
	}
	return r.db.Omit(clause.Associations).Create(entity).Error
}

// Replace overwrites the whole row keyed by the entity's ID. The caller
// must have verified the ID matches the row being addressed.
//
// If the update lands on nothing, a concurrent writer got there first:
// when the row no longer exists the conflict degrades to ErrNotFound,
// otherwise it surfaces as ErrWriteConflict.
func (r *Repository[T]) Replace(id uint, entity *T) error {
	if r.db == nil {
		return ErrStoreUnavailable
	}
	if (*entity).GetID() != id {
		return ErrIDMismatch
	}

	// Select("*") writes every column, zero values included, keyed by
	// the entity's primary key. Updates (not Save) so a missed row is
	// reported instead of falling back to an insert.
	result := r.db.Model(entity).Select("*").Omit(clause.Associations).Updates(entity)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.Model(new(T)).Where("id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrNotFound
		}
		return ErrWriteConflict
	}
	return nil
}

// DeleteByID removes the row with the given ID, or returns ErrNotFound.
// Deletes that violate a foreign key from a dependent table fail at the
// storage layer and propagate unwrapped.
func (r *Repository[T]) DeleteByID(id uint) error {
	if r.db == nil {
		return ErrStoreUnavailable
	}
	var row T
	err := r.db.First(&row, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	return r.db.Delete(&row).Error
}
