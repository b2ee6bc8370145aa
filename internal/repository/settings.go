package repository

import (
	"context"
	"encoding/json"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"estatecms_backend/internal/model"
)

type SettingsRepo struct {
	db *gorm.DB
}

func NewSettingsRepo(db *gorm.DB) *SettingsRepo {
	return &SettingsRepo{db: db}
}

// Get returns the raw JSON stored under key, or ErrNotFound.
func (r *SettingsRepo) Get(ctx context.Context, key string) (json.RawMessage, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var setting model.Setting
	err := r.db.WithContext(ctx).Where("key = ?", key).First(&setting).Error
	if err != nil {
		return nil, classify(err)
	}
	return json.RawMessage(setting.Value), nil
}

// Save serializes value and upserts it under key.
func (r *SettingsRepo) Save(ctx context.Context, key string, value interface{}) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}

	setting := model.Setting{Key: key, Value: datatypes.JSON(raw)}
	err = r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&setting).Error
	return classify(err)
}
