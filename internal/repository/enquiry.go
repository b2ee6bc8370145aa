package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"estatecms_backend/internal/model"
)

type EnquiryRepo struct {
	db *gorm.DB
}

func NewEnquiryRepo(db *gorm.DB) *EnquiryRepo {
	return &EnquiryRepo{db: db}
}

func (r *EnquiryRepo) List(ctx context.Context) ([]model.Enquiry, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	enquiries := []model.Enquiry{}
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&enquiries).Error
	return enquiries, classify(err)
}

func (r *EnquiryRepo) Add(ctx context.Context, enquiry *model.Enquiry) (string, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	if enquiry.ID == "" {
		enquiry.ID = uuid.NewString()
	}

	if err := r.db.WithContext(ctx).Create(enquiry).Error; err != nil {
		return "", classify(err)
	}
	return enquiry.ID, nil
}

func (r *EnquiryRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	return classify(r.db.WithContext(ctx).Delete(&model.Enquiry{}, "id = ?", id).Error)
}

func (r *EnquiryRepo) Count(ctx context.Context) (int64, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var count int64
	err := r.db.WithContext(ctx).Model(&model.Enquiry{}).Count(&count).Error
	return count, classify(err)
}
