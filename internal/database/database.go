// Package database owns the store lifecycle: opening the configured
// engine, migrating the catalog schema and handing out per-entity
// repositories.
package database

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/openshelf/catalog/internal/config"
	"github.com/openshelf/catalog/internal/database/crud"
	"github.com/openshelf/catalog/internal/database/libraries"
	"github.com/openshelf/catalog/internal/entities"
)

var defaultLanguages = []entities.Language{
	{Name: "English"},
	{Name: "French"},
	{Name: "German"},
	{Name: "Spanish"},
	{Name: "Russian"},
	{Name: "Polish"},
}

type Database struct {
	DB  *gorm.DB
	log *logrus.Logger
}

func NewDatabase(cfg config.Database, log *logrus.Logger) (*Database, error) {
	dialector, err := openDialector(cfg)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	err = db.AutoMigrate(
		&entities.Author{},
		&entities.Library{},
		&entities.BookCategory{},
		&entities.Language{},
		&entities.Book{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	database := &Database{DB: db, log: log}

	if err := database.seedLanguages(); err != nil {
		return nil, fmt.Errorf("failed to seed languages: %w", err)
	}

	log.Infof("Database initialized (%s)", cfg.Driver)

	return database, nil
}

// openDialector picks the engine from config. sqlite is the default;
// postgres is selected with DATABASE_DRIVER=postgres plus a DSN.
func openDialector(cfg config.Database) (gorm.Dialector, error) {
	switch cfg.Driver {
	case config.DriverSqlite, "":
		dsn := cfg.Path
		// Foreign keys are off by default in sqlite; the catalog
		// relies on them for referential integrity.
		if !strings.Contains(dsn, "_foreign_keys") {
			if strings.Contains(dsn, "?") {
				dsn += "&_foreign_keys=on"
			} else {
				dsn += "?_foreign_keys=on"
			}
		}
		return sqlite.Open(dsn), nil
	case config.DriverPostgres:
		if cfg.DSN == "" {
			return nil, fmt.Errorf("postgres driver selected but DATABASE_DSN is empty")
		}
		return postgres.Open(cfg.DSN), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (d *Database) seedLanguages() error {
	for _, language := range defaultLanguages {
		var existing entities.Language
		result := d.DB.Where("name = ?", language.Name).First(&existing)
		if result.Error == gorm.ErrRecordNotFound {
			if err := d.DB.Create(&language).Error; err != nil {
				return fmt.Errorf("failed to create language %s: %w", language.Name, err)
			}
			d.log.Debugf("Created language: %s", language.Name)
		} else if result.Error != nil {
			return fmt.Errorf("failed to look up language %s: %w", language.Name, result.Error)
		}
	}
	return nil
}

// Ping verifies the underlying connection is alive.
func (d *Database) Ping() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

// Stats reports the row count of every catalog table.
func (d *Database) Stats() (map[string]int64, error) {
	counts := make(map[string]int64)
	tables := map[string]any{
		"authors":         &entities.Author{},
		"libraries":       &entities.Library{},
		"book_categories": &entities.BookCategory{},
		"languages":       &entities.Language{},
		"books":           &entities.Book{},
	}
	for name, model := range tables {
		var count int64
		if err := d.DB.Model(model).Count(&count).Error; err != nil {
			return nil, err
		}
		counts[name] = count
	}
	return counts, nil
}

func (d *Database) Authors() *crud.Repository[entities.Author] {
	return crud.NewRepository[entities.Author](d.DB)
}

func (d *Database) Libraries() *libraries.Repository {
	return libraries.NewRepository(d.DB)
}

func (d *Database) BookCategories() *crud.Repository[entities.BookCategory] {
	return crud.NewRepository[entities.BookCategory](d.DB)
}

func (d *Database) Languages() *crud.Repository[entities.Language] {
	return crud.NewRepository[entities.Language](d.DB)
}

func (d *Database) Books() *crud.Repository[entities.Book] {
	return crud.NewRepository[entities.Book](d.DB)
}
