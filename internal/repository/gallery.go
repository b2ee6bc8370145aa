package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"estatecms_backend/internal/model"
)

type GalleryRepo struct {
	db *gorm.DB
}

func NewGalleryRepo(db *gorm.DB) *GalleryRepo {
	return &GalleryRepo{db: db}
}

func (r *GalleryRepo) List(ctx context.Context) ([]model.GalleryItem, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	items := []model.GalleryItem{}
	err := r.db.WithContext(ctx).
		Order("sort_order ASC, created_at DESC").
		Find(&items).Error
	return items, classify(err)
}

func (r *GalleryRepo) Upsert(ctx context.Context, item *model.GalleryItem) (string, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	if item.ID == "" {
		item.ID = uuid.NewString()
	}

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"category", "image_url", "sort_order",
		}),
	}).Create(item).Error
	if err != nil {
		return "", classify(err)
	}
	return item.ID, nil
}

func (r *GalleryRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	return classify(r.db.WithContext(ctx).Delete(&model.GalleryItem{}, "id = ?", id).Error)
}

func (r *GalleryRepo) Count(ctx context.Context) (int64, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var count int64
	err := r.db.WithContext(ctx).Model(&model.GalleryItem{}).Count(&count).Error
	return count, classify(err)
}
