package http

import (
	"errors"

	"github.com/openshelf/catalog/internal/entities"
)

// validateCategoryParent rejects a category naming itself as parent.
// Longer cycles through intermediate categories are not walked; the
// parent relation is acyclic by intent only.
func validateCategoryParent(category *entities.BookCategory) error {
	if category.ParentID != nil && category.ID != 0 && *category.ParentID == category.ID {
		return errors.New("book category cannot be its own parent")
	}
	return nil
}
