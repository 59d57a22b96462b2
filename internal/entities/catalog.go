package entities

import (
	"time"
)

// Author writes books. Deleting an author that still has books on the
// shelf violates the foreign key and fails at the storage layer.
type Author struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	FirstName string    `gorm:"size:256" json:"first_name" binding:"required"`
	LastName  string    `gorm:"size:256" json:"last_name" binding:"required"`
	Books     []Book    `gorm:"foreignKey:AuthorID" json:"books,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Library is a physical location owning zero or more books.
type Library struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"index;size:256" json:"name" binding:"required"`
	Address   string    `gorm:"size:512" json:"address"`
	Books     []Book    `gorm:"foreignKey:LibraryID" json:"books,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BookCategory forms a tree through ParentID: zero or more children,
// at most one parent. The parent relation is meant to be acyclic, but
// no path check is performed on reassignment; only a direct
// self-reference is rejected at the HTTP layer.
type BookCategory struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Name      string         `gorm:"index;size:256" json:"name" binding:"required"`
	ParentID  *uint          `gorm:"index" json:"parent_id,omitempty"`
	Parent    *BookCategory  `gorm:"foreignKey:ParentID" json:"parent,omitempty"`
	Children  []BookCategory `gorm:"foreignKey:ParentID" json:"children,omitempty"`
	Books     []Book         `gorm:"foreignKey:BookCategoryID" json:"books,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// Language a book is written in.
type Language struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"uniqueIndex;size:100" json:"name" binding:"required"`
	Books     []Book    `gorm:"foreignKey:LanguageID" json:"books,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Book carries four mandatory foreign keys. Referential integrity is
// enforced by the store at write time, not by the service.
type Book struct {
	ID             uint          `gorm:"primaryKey" json:"id"`
	Title          string        `gorm:"index;size:512" json:"title" binding:"required"`
	Year           int           `json:"year"`
	ISBN           string        `gorm:"index;size:20" json:"isbn"`
	AuthorID       uint          `gorm:"not null;index" json:"author_id" binding:"required"`
	LibraryID      uint          `gorm:"not null;index" json:"library_id" binding:"required"`
	BookCategoryID uint          `gorm:"not null;index" json:"book_category_id" binding:"required"`
	LanguageID     uint          `gorm:"not null;index" json:"language_id" binding:"required"`
	Author         *Author       `gorm:"foreignKey:AuthorID" json:"author,omitempty" binding:"-"`
	Library        *Library      `gorm:"foreignKey:LibraryID" json:"library,omitempty" binding:"-"`
	BookCategory   *BookCategory `gorm:"foreignKey:BookCategoryID" json:"book_category,omitempty" binding:"-"`
	Language       *Language     `gorm:"foreignKey:LanguageID" json:"language,omitempty" binding:"-"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

func (BookCategory) TableName() string {
	return "book_categories"
}

func (a Author) GetID() uint       { return a.ID }
func (l Library) GetID() uint      { return l.ID }
func (c BookCategory) GetID() uint { return c.ID }
func (l Language) GetID() uint     { return l.ID }
func (b Book) GetID() uint         { return b.ID }
