package db

import (
	"fmt"

	"github.com/ikkim/pcbuild-backend/config"
	appLogger "github.com/ikkim/pcbuild-backend/pkg/logger"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Initialize opens the SQL database selected by STATE_BACKEND (postgres or sqlite).
func Initialize(cfg *config.Config) error {
	var dialector gorm.Dialector
	switch cfg.State.Backend {
	case config.StateBackendPostgres:
		appLogger.Info("Connecting to database", map[string]interface{}{
			"driver":   "postgres",
			"host":     cfg.Database.Host,
			"port":     cfg.Database.Port,
			"database": cfg.Database.DBName,
			"user":     cfg.Database.User,
		})
		dialector = postgres.Open(cfg.Database.DSN())
	case config.StateBackendSQLite:
		appLogger.Info("Connecting to database", map[string]interface{}{
			"driver": "sqlite",
			"path":   cfg.State.SQLitePath,
		})
		dialector = sqlite.Open(cfg.State.SQLitePath)
	default:
		return fmt.Errorf("state backend %q has no SQL database", cfg.State.Backend)
	}

	var err error
	DB, err = gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent), // Use silent mode, we'll use our own logger
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	if cfg.State.Backend == config.StateBackendSQLite {
		// sqlite allows one writer at a time
		sqlDB.SetMaxOpenConns(1)
	}

	appLogger.Info("Database connection established successfully")
	return nil
}

// Close closes the database connection
func Close() error {
	if DB == nil {
		return nil
	}
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// GetDB returns the database instance
func GetDB() *gorm.DB {
	return DB
}
