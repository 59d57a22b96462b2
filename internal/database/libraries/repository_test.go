package libraries

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/openshelf/catalog/internal/database/crud"
	"github.com/openshelf/catalog/internal/entities"
)

func setupTestDB(t *testing.T) (*Repository, *gorm.DB, func()) {
	t.Helper()
	dbPath := "./test_libraries_" + strings.ReplaceAll(t.Name(), "/", "_") + ".db"

	db, err := gorm.Open(sqlite.Open(dbPath+"?_foreign_keys=on"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&entities.Author{},
		&entities.Library{},
		&entities.BookCategory{},
		&entities.Language{},
		&entities.Book{},
	)
	require.NoError(t, err)

	repo := NewRepository(db)

	cleanup := func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
		os.Remove(dbPath)
	}

	return repo, db, cleanup
}

func TestRepository_BooksForLibrary_NotFound(t *testing.T) {
	repo, _, cleanup := setupTestDB(t)
	defer cleanup()

	_, err := repo.BooksForLibrary(77)
	assert.ErrorIs(t, err, crud.ErrNotFound)
}

func TestRepository_BooksForLibrary_Empty(t *testing.T) {
	repo, _, cleanup := setupTestDB(t)
	defer cleanup()

	library := &entities.Library{Name: "Central", Address: "1 Main St"}
	require.NoError(t, repo.Create(library))

	books, err := repo.BooksForLibrary(library.ID)
	require.NoError(t, err)
	assert.Empty(t, books)
}

func TestRepository_BooksForLibrary_NestedRelations(t *testing.T) {
	repo, db, cleanup := setupTestDB(t)
	defer cleanup()

	author := entities.Author{FirstName: "Ada", LastName: "Lovelace"}
	category := entities.BookCategory{Name: "Science"}
	language := entities.Language{Name: "English"}
	library := entities.Library{Name: "Central", Address: "1 Main St"}
	other := entities.Library{Name: "Branch", Address: "2 Side St"}
	require.NoError(t, db.Create(&author).Error)
	require.NoError(t, db.Create(&category).Error)
	require.NoError(t, db.Create(&language).Error)
	require.NoError(t, db.Create(&library).Error)
	require.NoError(t, db.Create(&other).Error)

	for _, title := range []string{"Notes", "Sketches"} {
		require.NoError(t, db.Create(&entities.Book{
			Title:          title,
			Year:           1843,
			AuthorID:       author.ID,
			LibraryID:      library.ID,
			BookCategoryID: category.ID,
			LanguageID:     language.ID,
		}).Error)
	}
	// A book elsewhere must not leak in
	require.NoError(t, db.Create(&entities.Book{
		Title:          "Elsewhere",
		AuthorID:       author.ID,
		LibraryID:      other.ID,
		BookCategoryID: category.ID,
		LanguageID:     language.ID,
	}).Error)

	books, err := repo.BooksForLibrary(library.ID)
	require.NoError(t, err)
	require.Len(t, books, 2)

	for _, book := range books {
		require.NotNil(t, book.Author)
		require.NotNil(t, book.BookCategory)
		require.NotNil(t, book.Language)
		assert.Equal(t, "Ada", book.Author.FirstName)
		assert.Equal(t, "Science", book.BookCategory.Name)
		assert.Equal(t, "English", book.Language.Name)
	}
}
