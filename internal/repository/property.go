package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"estatecms_backend/internal/model"
)

type PropertyRepo struct {
	db *gorm.DB
}

func NewPropertyRepo(db *gorm.DB) *PropertyRepo {
	return &PropertyRepo{db: db}
}

// List returns every property, lowest sort_order first, newest first within
// the same sort_order.
func (r *PropertyRepo) List(ctx context.Context) ([]model.Property, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	properties := []model.Property{}
	err := r.db.WithContext(ctx).
		Order("sort_order ASC, created_at DESC").
		Find(&properties).Error
	return properties, classify(err)
}

func (r *PropertyRepo) GetBySlug(ctx context.Context, slug string) (*model.Property, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var property model.Property
	err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&property).Error
	if err != nil {
		return nil, classify(err)
	}
	return &property, nil
}

func (r *PropertyRepo) GetByID(ctx context.Context, id string) (*model.Property, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var property model.Property
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&property).Error
	if err != nil {
		return nil, classify(err)
	}
	return &property, nil
}

// Upsert inserts the property or overwrites every column of the existing row
// with the same id. created_at is set once and never touched again. Returns
// the identifier used.
func (r *PropertyRepo) Upsert(ctx context.Context, property *model.Property) (string, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	if property.ID == "" {
		property.ID = uuid.NewString()
	}

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"title", "slug", "location", "area", "area_unit",
			"price", "price_label", "bedrooms", "bathrooms", "status",
			"features", "images", "floor_plans", "description",
			"sort_order", "updated_at",
		}),
	}).Create(property).Error
	if err != nil {
		return "", classify(err)
	}
	return property.ID, nil
}

// Delete removes the row. Deleting an id that does not exist is not an error.
func (r *PropertyRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	return classify(r.db.WithContext(ctx).Delete(&model.Property{}, "id = ?", id).Error)
}

func (r *PropertyRepo) Count(ctx context.Context) (int64, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var count int64
	err := r.db.WithContext(ctx).Model(&model.Property{}).Count(&count).Error
	return count, classify(err)
}
