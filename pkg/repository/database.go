package repository

import (
	"fmt"

	"github.com/taskodos/taskodos/pkg/config"
	"github.com/taskodos/taskodos/pkg/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase creates a new database connection
func NewDatabase(cfg *config.Config) (*gorm.DB, error) {
	logLevel := logger.Silent
	if cfg.Server.Debug {
		logLevel = logger.Info
	}

	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
		// Referential integrity is intentionally not enforced: calendar
		// events keep their goal_id/todo_id after the referenced row is
		// deleted.
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

// Migrate creates the goals, todos and calendar_events tables if they are
// missing. It is idempotent and runs once at process startup, never as part
// of request handling.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Goal{},
		&models.Todo{},
		&models.CalendarEvent{},
	); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}
