package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"estatecms_backend/internal/model"
)

type HeroRepo struct {
	db *gorm.DB
}

func NewHeroRepo(db *gorm.DB) *HeroRepo {
	return &HeroRepo{db: db}
}

func (r *HeroRepo) List(ctx context.Context) ([]model.HeroSlide, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	slides := []model.HeroSlide{}
	err := r.db.WithContext(ctx).Order("sort_order ASC").Find(&slides).Error
	return slides, classify(err)
}

// ListActive returns only the slides the public hero carousel should show.
func (r *HeroRepo) ListActive(ctx context.Context) ([]model.HeroSlide, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	slides := []model.HeroSlide{}
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("sort_order ASC").
		Find(&slides).Error
	return slides, classify(err)
}

func (r *HeroRepo) Upsert(ctx context.Context, slide *model.HeroSlide) (string, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	if slide.ID == "" {
		slide.ID = uuid.NewString()
	}

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"image", "title", "subtitle", "button_text", "button_link",
			"is_active", "sort_order",
		}),
	}).Create(slide).Error
	if err != nil {
		return "", classify(err)
	}
	return slide.ID, nil
}

func (r *HeroRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	return classify(r.db.WithContext(ctx).Delete(&model.HeroSlide{}, "id = ?", id).Error)
}
