package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"estatecms_backend/internal/model"
)

type TestimonialRepo struct {
	db *gorm.DB
}

func NewTestimonialRepo(db *gorm.DB) *TestimonialRepo {
	return &TestimonialRepo{db: db}
}

func (r *TestimonialRepo) List(ctx context.Context) ([]model.Testimonial, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	testimonials := []model.Testimonial{}
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&testimonials).Error
	return testimonials, classify(err)
}

func (r *TestimonialRepo) Upsert(ctx context.Context, testimonial *model.Testimonial) (string, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	if testimonial.ID == "" {
		testimonial.ID = uuid.NewString()
	}

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "text"}),
	}).Create(testimonial).Error
	if err != nil {
		return "", classify(err)
	}
	return testimonial.ID, nil
}

func (r *TestimonialRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	return classify(r.db.WithContext(ctx).Delete(&model.Testimonial{}, "id = ?", id).Error)
}

func (r *TestimonialRepo) Count(ctx context.Context) (int64, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var count int64
	err := r.db.WithContext(ctx).Model(&model.Testimonial{}).Count(&count).Error
	return count, classify(err)
}
