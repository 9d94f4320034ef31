package database

import (
	"fmt"
	"time"

	"planner/internal/logger"
	"planner/internal/models"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Manager handles database operations
type Manager struct {
	db     *gorm.DB
	driver string
	url    string
}

// NewManager opens the configured database. "postgres" is the shared remote
// store; "sqlite" keeps the planner in a local file with no server at all.
func NewManager(config *Config) (*Manager, error) {
	var (
		db  *gorm.DB
		err error
	)

	switch config.Driver {
	case "postgres":
		db, err = gorm.Open(postgres.New(postgres.Config{
			DSN:                  config.DSN(),
			PreferSimpleProtocol: true, // Required for Supabase Supavisor; harmless for direct connections
		}), &gorm.Config{})
	case "sqlite":
		db, err = gorm.Open(sqlite.Open(config.SQLitePath), &gorm.Config{})
	default:
		return nil, fmt.Errorf("unsupported database driver %q", config.Driver)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying DB: %w", err)
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return &Manager{db: db, driver: config.Driver, url: config.URL()}, nil
}

// allModels is the list of GORM models migrated on the sqlite backend.
var allModels = []interface{}{
	&models.User{},
	&models.PlannerSettings{},
	&models.Category{},
	&models.BudgetItem{},
	&models.Transaction{},
	&models.Goal{},
	&models.AuditLog{},
}

// Migrate brings the schema up to date. Postgres uses the SQL migrations in
// migrations/; the sqlite backend auto-migrates from the GORM models.
func (m *Manager) Migrate() error {
	if m.driver == "sqlite" {
		logger.Get().Info("Auto-migrating sqlite schema...")
		return m.db.AutoMigrate(allModels...)
	}

	logger.Get().Info("Running database migrations...")

	mig, err := migrate.New("file://migrations", m.url)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}
	defer func() {
		srcErr, dbErr := mig.Close()
		if srcErr != nil {
			logger.Get().Warnf("migrate source close error: %v", srcErr)
		}
		if dbErr != nil {
			logger.Get().Warnf("migrate database close error: %v", dbErr)
		}
	}()

	if err := mig.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("migration failed: %w", err)
	}

	logger.Get().Info("Database migrations completed successfully")
	return nil
}

// DB returns the underlying GORM database instance
func (m *Manager) DB() *gorm.DB {
	return m.db
}
