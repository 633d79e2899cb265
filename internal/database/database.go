package database

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/julianmr/helpdesk-api/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Connect opens the SQLite database at path with foreign-key enforcement on.
// Referential integrity (comment → ticket) is enforced by the store, so the
// pragma is part of the DSN rather than a per-session statement.
func Connect(path string) error {
	dsn := fmt.Sprintf("file:%s?_foreign_keys=on", path)

	var err error
	DB, err = gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	slog.Info("database connection established", "path", path)
	return nil
}

// RequireExisting fails when no database file is present at path. The server
// refuses to start against a missing store; initdb is the tool that creates
// it.
func RequireExisting(path string) error {
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("database not found at %s, run initdb first: %w", path, err)
	}
	return nil
}

func Migrate() error {
	err := DB.AutoMigrate(
		&models.User{},
		&models.Ticket{},
		&models.Comment{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	if err := AddIndexes(DB); err != nil {
		return err
	}
	slog.Info("database migrations completed")
	return nil
}

func GetDB() *gorm.DB {
	return DB
}

// SetDB sets the database instance (used for testing)
func SetDB(db *gorm.DB) {
	DB = db
}
