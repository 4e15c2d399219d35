// Package migration runs goose SQL migrations embedded in the binary.
package migration

import (
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
	"gorm.io/gorm"

	"anishop/internal/shared/logger"
)

//go:embed scripts/*.sql
var embedMigrations embed.FS

func setup() error {
	goose.SetBaseFS(embedMigrations)
	if err := goose.SetDialect("mysql"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	return nil
}

// Up applies all pending migrations.
func Up(db *gorm.DB) error {
	if err := setup(); err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if err := goose.Up(sqlDB, "scripts"); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	version, err := goose.GetDBVersion(sqlDB)
	if err != nil {
		return fmt.Errorf("failed to read migration version: %w", err)
	}
	logger.Info("migrations applied", "version", version)
	return nil
}

// Down rolls back the most recent migration.
func Down(db *gorm.DB) error {
	if err := setup(); err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if err := goose.Down(sqlDB, "scripts"); err != nil {
		return fmt.Errorf("failed to roll back migration: %w", err)
	}
	return nil
}

// Status prints the migration status table.
func Status(db *gorm.DB) error {
	if err := setup(); err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if err := goose.Status(sqlDB, "scripts"); err != nil {
		return fmt.Errorf("failed to read migration status: %w", err)
	}
	return nil
}
