package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"recipebox/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GORMDocumentStore is a GORM implementation of DocumentStore. The catalog is
// one row of the recipe_documents table, identified by key.
type GORMDocumentStore struct {
	db  *gorm.DB
	key string
}

// OpenDatabase opens a GORM connection for the "sqlite" or "postgres" driver.
func OpenDatabase(driver, dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case "sqlite":
		dialector = sqlite.Open(dsn)
	case "postgres":
		dialector = postgres.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s database: %w", driver, err)
	}
	return db, nil
}

// NewGORMDocumentStore creates a GORMDocumentStore and migrates its table.
func NewGORMDocumentStore(db *gorm.DB, key string) (*GORMDocumentStore, error) {
	if err := db.AutoMigrate(&models.RecipeDocument{}); err != nil {
		return nil, fmt.Errorf("failed to auto-migrate recipe documents: %w", err)
	}
	return &GORMDocumentStore{
		db:  db,
		key: key,
	}, nil
}

// Read retrieves the document row, or ErrNoDocument if there is none.
func (s *GORMDocumentStore) Read(ctx context.Context) ([]byte, error) {
	var doc models.RecipeDocument
	if err := s.db.WithContext(ctx).First(&doc, "name = ?", s.key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoDocument
		}
		return nil, fmt.Errorf("failed to get recipe document %s: %w", s.key, err)
	}
	return doc.Data, nil
}

// Write inserts the document row or overwrites it if it already exists.
func (s *GORMDocumentStore) Write(ctx context.Context, data []byte) error {
	doc := models.RecipeDocument{
		Name:      s.key,
		Data:      data,
		UpdatedAt: time.Now(),
	}
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&doc).Error
	if err != nil {
		return fmt.Errorf("failed to save recipe document %s: %w", s.key, err)
	}
	return nil
}
