package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"catalogd/pkg/config"
)

// Connect establishes a database connection using the application config.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	dsn := cfg.Database.ConnectionString()

	// Default to silent logging unless DEBUG is set
	logMode := logger.Silent
	if cfg.Debug {
		logMode = logger.Info
	}

	gormDB, err := gorm.Open(
		postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true, // disables implicit prepared statement usage
		}),
		&gorm.Config{
			Logger: logger.Default.LogMode(logMode),
		},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return gormDB, nil
}
