package database

import (
	"os"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openshelf/catalog/internal/config"
	"github.com/openshelf/catalog/internal/entities"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.ErrorLevel)
	return log
}

func setupDatabase(t *testing.T) (*Database, func()) {
	t.Helper()
	dbPath := "./test_db_" + strings.ReplaceAll(t.Name(), "/", "_") + ".db"

	db, err := NewDatabase(config.Database{Driver: config.DriverSqlite, Path: dbPath}, testLogger())
	require.NoError(t, err)

	cleanup := func() {
		db.Close()
		os.Remove(dbPath)
	}
	return db, cleanup
}

func TestNewDatabase_SeedsLanguages(t *testing.T) {
	db, cleanup := setupDatabase(t)
	defer cleanup()

	languages, err := db.Languages().List()
	require.NoError(t, err)
	assert.Len(t, languages, len(defaultLanguages))
}

func TestNewDatabase_SeedingIsIdempotent(t *testing.T) {
	dbPath := "./test_db_reseed.db"
	defer os.Remove(dbPath)

	cfg := config.Database{Driver: config.DriverSqlite, Path: dbPath}

	db, err := NewDatabase(cfg, testLogger())
	require.NoError(t, err)
	require.NoError(t, db.Close())

	db, err = NewDatabase(cfg, testLogger())
	require.NoError(t, err)
	defer db.Close()

	languages, err := db.Languages().List()
	require.NoError(t, err)
	assert.Len(t, languages, len(defaultLanguages))
}

func TestNewDatabase_UnsupportedDriver(t *testing.T) {
	_, err := NewDatabase(config.Database{Driver: "oracle"}, testLogger())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported database driver")
}

func TestNewDatabase_PostgresRequiresDSN(t *testing.T) {
	_, err := NewDatabase(config.Database{Driver: config.DriverPostgres}, testLogger())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_DSN")
}

func TestDatabase_RepositoryAccessors(t *testing.T) {
	db, cleanup := setupDatabase(t)
	defer cleanup()

	author := &entities.Author{FirstName: "Ada", LastName: "Lovelace"}
	require.NoError(t, db.Authors().Create(author))

	library := &entities.Library{Name: "Central", Address: "1 Main St"}
	require.NoError(t, db.Libraries().Create(library))

	category := &entities.BookCategory{Name: "Science"}
	require.NoError(t, db.BookCategories().Create(category))

	book := &entities.Book{
		Title:          "Notes",
		Year:           1843,
		AuthorID:       author.ID,
		LibraryID:      library.ID,
		BookCategoryID: category.ID,
		LanguageID:     1, // seeded language
	}
	require.NoError(t, db.Books().Create(book))

	got, err := db.Books().GetByID(book.ID)
	require.NoError(t, err)
	assert.Equal(t, "Notes", got.Title)
}

func TestDatabase_SeedLanguagesPropagatesLookupErrors(t *testing.T) {
	db, cleanup := setupDatabase(t)
	defer cleanup()

	require.NoError(t, db.Close())

	err := db.seedLanguages()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to look up language")
}

func TestDatabase_Stats(t *testing.T) {
	db, cleanup := setupDatabase(t)
	defer cleanup()

	require.NoError(t, db.Authors().Create(&entities.Author{FirstName: "Ada", LastName: "Lovelace"}))

	counts, err := db.Stats()
	require.NoError(t, err)
	assert.Equal(t, int64(1), counts["authors"])
	assert.Equal(t, int64(0), counts["books"])
	assert.Equal(t, int64(len(defaultLanguages)), counts["languages"])
}

func TestDatabase_CategoryTree(t *testing.T) {
	db, cleanup := setupDatabase(t)
	defer cleanup()

	parent := &entities.BookCategory{Name: "Fiction"}
	require.NoError(t, db.BookCategories().Create(parent))

	child := &entities.BookCategory{Name: "Science Fiction", ParentID: &parent.ID}
	require.NoError(t, db.BookCategories().Create(child))

	got, err := db.BookCategories().GetByID(child.ID)
	require.NoError(t, err)
	require.NotNil(t, got.ParentID)
	assert.Equal(t, parent.ID, *got.ParentID)
}
