package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"estatecms_backend/internal/model"
)

type BlogRepo struct {
	db *gorm.DB
}

func NewBlogRepo(db *gorm.DB) *BlogRepo {
	return &BlogRepo{db: db}
}

// List returns every post, newest publish date first.
func (r *BlogRepo) List(ctx context.Context) ([]model.Blog, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	blogs := []model.Blog{}
	err := r.db.WithContext(ctx).Order("published_at DESC").Find(&blogs).Error
	return blogs, classify(err)
}

func (r *BlogRepo) GetBySlug(ctx context.Context, slug string) (*model.Blog, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var blog model.Blog
	err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&blog).Error
	if err != nil {
		return nil, classify(err)
	}
	return &blog, nil
}

func (r *BlogRepo) Upsert(ctx context.Context, blog *model.Blog) (string, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	if blog.ID == "" {
		blog.ID = uuid.NewString()
	}

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"title", "slug", "category", "featured_image",
			"excerpt", "content", "published_at",
		}),
	}).Create(blog).Error
	if err != nil {
		return "", classify(err)
	}
	return blog.ID, nil
}

func (r *BlogRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	return classify(r.db.WithContext(ctx).Delete(&model.Blog{}, "id = ?", id).Error)
}

func (r *BlogRepo) Count(ctx context.Context) (int64, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var count int64
	err := r.db.WithContext(ctx).Model(&model.Blog{}).Count(&count).Error
	return count, classify(err)
}

// Categories returns the category names in alphabetical order.
func (r *BlogRepo) Categories(ctx context.Context) ([]string, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	names := []string{}
	err := r.db.WithContext(ctx).Model(&model.BlogCategory{}).
		Order("name ASC").
		Pluck("name", &names).Error
	return names, classify(err)
}

// AddCategory inserts the category if a row with the same name does not
// already exist.
func (r *BlogRepo) AddCategory(ctx context.Context, name string) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	category := model.BlogCategory{ID: uuid.NewString(), Name: name}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoNothing: true,
	}).Create(&category).Error
	return classify(err)
}

func (r *BlogRepo) DeleteCategory(ctx context.Context, name string) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	return classify(r.db.WithContext(ctx).Delete(&model.BlogCategory{}, "name = ?", name).Error)
}
