package db

import (
	"github.com/ikkim/pcbuild-backend/internal/app/model"
	"github.com/ikkim/pcbuild-backend/pkg/logger"
	"gorm.io/gorm"
)

// Models lists every table the service owns.
var Models = []interface{}{
	&model.StateBlob{},
}

// Migrate runs database migrations
func Migrate() error {
	return MigrateDB(DB)
}

// MigrateDB migrates the given handle. Defaults are not seeded here; stores fall back to them on load.
func MigrateDB(db *gorm.DB) error {
	logger.Info("Running database migrations...")

	if err := db.AutoMigrate(Models...); err != nil {
		logger.Error("Failed to run migrations", err)
		return err
	}

	logger.Info("Database migrations completed successfully", map[string]interface{}{
		"models_count": len(Models),
	})
	return nil
}
