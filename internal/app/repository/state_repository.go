package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/ikkim/pcbuild-backend/internal/app/model"
	"github.com/ikkim/pcbuild-backend/pkg/logger"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrStateNotFound = errors.New("state not found")
	ErrInvalidState  = errors.New("state value is not valid JSON")
)

// StateRepository stores opaque JSON blobs under fixed keys.
type StateRepository interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, data []byte) error
}

type stateRepository struct {
	db *gorm.DB
}

// NewStateRepository keeps blobs in the state_blobs table of a SQL database.
func NewStateRepository(db *gorm.DB) StateRepository {
	return &stateRepository{db: db}
}

func (r *stateRepository) Load(ctx context.Context, key string) ([]byte, error) {
	logger.Debug("Loading state from database", map[string]interface{}{
		"key": key,
	})

	var blob model.StateBlob
	err := r.db.WithContext(ctx).Where("state_key = ?", key).First(&blob).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Debug("State not found in database", map[string]interface{}{
				"key": key,
			})
			return nil, ErrStateNotFound
		}
		logger.Error("Failed to load state from database", err, map[string]interface{}{
			"key": key,
		})
		return nil, err
	}

	logger.Debug("State loaded from database", map[string]interface{}{
		"key":   key,
		"bytes": len(blob.Value),
	})
	return []byte(blob.Value), nil
}

func (r *stateRepository) Save(ctx context.Context, key string, data []byte) error {
	if !json.Valid(data) {
		return ErrInvalidState
	}

	logger.Debug("Saving state to database", map[string]interface{}{
		"key":   key,
		"bytes": len(data),
	})

	blob := model.StateBlob{
		Key:       key,
		Value:     datatypes.JSON(data),
		UpdatedAt: time.Now(),
	}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "state_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&blob).Error
	if err != nil {
		logger.Error("Failed to save state to database", err, map[string]interface{}{
			"key": key,
		})
		return err
	}

	logger.Debug("State saved to database", map[string]interface{}{
		"key": key,
	})
	return nil
}
