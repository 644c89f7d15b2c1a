package migration

import (
	"embed"
	"fmt"

	"gorm.io/gorm"

	"checkmate/internal/infrastructure/persistence/models"
	"checkmate/internal/shared/logger"
)

//go:embed scripts/*.sql
var scriptsFS embed.FS

// Manager runs database migrations with the strategy matching the driver:
// versioned goose scripts for mysql, gorm automigrate for sqlite.
type Manager struct {
	strategy Strategy
	logger   logger.Interface
}

// NewManager picks the migration strategy for the configured driver.
func NewManager(driver string) *Manager {
	var strategy Strategy
	switch driver {
	case "mysql", "":
		strategy = NewGooseStrategy("mysql")
	default:
		strategy = NewGormAutoMigrateStrategy()
	}

	return &Manager{
		strategy: strategy,
		logger:   logger.NewLogger().With("component", "migration.manager"),
	}
}

// NewManagerWithStrategy creates a manager with an explicit strategy.
func NewManagerWithStrategy(strategy Strategy) *Manager {
	return &Manager{
		strategy: strategy,
		logger:   logger.NewLogger().With("component", "migration.manager"),
	}
}

// Migrate executes the configured migration strategy against the schema.
func (m *Manager) Migrate(db *gorm.DB) error {
	m.logger.Infow("starting database migration",
		"strategy", m.strategy.GetName())

	err := m.strategy.Migrate(db,
		&models.UserModel{},
		&models.OAuthAccountModel{},
		&models.BoardModel{},
	)
	if err != nil {
		m.logger.Errorw("migration failed",
			"strategy", m.strategy.GetName(),
			"error", err)
		return fmt.Errorf("migration failed: %w", err)
	}

	m.logger.Infow("database migration completed")
	return nil
}
