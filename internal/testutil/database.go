// Package testutil holds the shared test scaffolding: an in-memory gorm
// database, fixtures for the planner entities, and AppError assertions.
package testutil

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"planner/internal/models"
)

var allModels = []interface{}{
	&models.User{},
	&models.PlannerSettings{},
	&models.Category{},
	&models.BudgetItem{},
	&models.Transaction{},
	&models.Goal{},
	&models.AuditLog{},
}

// SetupTestDB opens a shared in-memory SQLite database with every planner
// model migrated. The shared cache keeps the schema alive across the
// connections gorm pools, so tests must scope queries to their own users.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(allModels...); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

// TeardownTestDB closes the underlying connection.
func TeardownTestDB(t *testing.T, db *gorm.DB) {
	t.Helper()

	sqlDB, err := db.DB()
	if err != nil {
		t.Errorf("failed to get underlying DB for teardown: %v", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		t.Errorf("failed to close test database: %v", err)
	}
}
