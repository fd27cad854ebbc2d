// Package testutil provides database fixtures shared by package tests.
package testutil

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/mylanyard/server/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// OpenDB creates an in-memory SQLite database with the full schema migrated.
// Each call returns an isolated database.
func OpenDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Silent),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}

	if err := migrate(db); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return db
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Icon{},
		&models.Lanyard{},
		&models.Card{},
		&models.Tag{},
		&models.Tagging{},
	)
}
