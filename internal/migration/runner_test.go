package migration

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"estatecms_backend/internal/branding"
	"estatecms_backend/internal/model"
	"estatecms_backend/internal/repository"
)

// fakeSource serves canned documents; a collection that is not present
// behaves like an unreachable one.
type fakeSource struct {
	collections map[string][]Document
	documents   map[string]Document
}

func (s *fakeSource) Collection(_ context.Context, name string) ([]Document, error) {
	docs, ok := s.collections[name]
	if !ok {
		return nil, fmt.Errorf("collection %q unavailable", name)
	}
	return docs, nil
}

func (s *fakeSource) Document(_ context.Context, collection, id string) (Document, error) {
	doc, ok := s.documents[collection+"/"+id]
	if !ok {
		return nil, ErrDocumentNotFound
	}
	return doc, nil
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

func setupRunnerDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get database instance: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	return db
}

func fullSource() *fakeSource {
	return &fakeSource{
		collections: map[string][]Document{
			"properties": {
				{"id": "prop-1", "title": "Lake View Residences", "slug": "lake-view"},
				{"id": "prop-2", "title": "Green Garden Tower", "slug": "green-garden"},
			},
			"posts": {
				{"id": "post-1", "title": "Old Post", "date": "2022-01-01"},
			},
			"blogs": {
				{"id": "blog-1", "title": "New Post", "date": "2024-01-01"},
			},
			"hero_slides": {
				{"id": "slide-1", "image": "hero.jpg", "title": "Welcome"},
			},
			"gallery": {
				{"id": "g-1", "image": "pool.jpg", "caption": "Amenities"},
			},
			"testimonials": {
				{"id": "t-1", "name": "Owner", "text": "Great build."},
			},
		},
		documents: map[string]Document{
			"settings/blog_categories": {
				"categories": []interface{}{"News", "Guides"},
			},
			"site_branding/main": {
				"id":   "main",
				"name": "Skyline Developments",
			},
		},
	}
}

func TestRunnerMigratesEveryEntity(t *testing.T) {
	db := setupRunnerDB(t)
	runner := NewRunner(db, fullSource(), quietLogger())

	assert.Equal(t, StatusIdle, runner.Status())

	report, err := runner.Run(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, StatusSuccess, runner.Status())
	assert.Empty(t, report.Failures)
	// 2 properties + 2 blogs + 1 slide + 1 gallery + 1 testimonial + branding.
	// Categories are tracked separately and do not count.
	assert.Equal(t, 8, report.Migrated)

	ctx := context.Background()

	properties, err := repository.NewPropertyRepo(db).List(ctx)
	assert.NoError(t, err)
	assert.Len(t, properties, 2)

	blogs, err := repository.NewBlogRepo(db).List(ctx)
	assert.NoError(t, err)
	assert.Len(t, blogs, 2)
	assert.Equal(t, "New Post", blogs[0].Title)

	categories, err := repository.NewBlogRepo(db).Categories(ctx)
	assert.NoError(t, err)
	assert.Equal(t, []string{"Guides", "News"}, categories)

	stored, err := repository.NewSettingsRepo(db).Get(ctx, branding.SettingsKey)
	assert.NoError(t, err)
	merged, err := branding.Merge(stored)
	assert.NoError(t, err)
	assert.Equal(t, "Skyline Developments", merged.Name)
}

func TestRunnerSkipsBadRecords(t *testing.T) {
	db := setupRunnerDB(t)
	src := fullSource()
	src.collections["gallery"] = append(src.collections["gallery"],
		Document{"id": "g-broken", "caption": "No image"})
	src.collections["hero_slides"] = append(src.collections["hero_slides"],
		Document{"id": "slide-broken", "title": "No image"})

	runner := NewRunner(db, src, quietLogger())
	report, err := runner.Run(context.Background())
	assert.NoError(t, err)
	// Bad records are reported, not fatal.
	assert.Equal(t, StatusSuccess, runner.Status())
	assert.Len(t, report.Failures, 2)
	assert.Equal(t, 8, report.Migrated)

	entities := []string{report.Failures[0].Entity, report.Failures[1].Entity}
	assert.Contains(t, entities, "hero_slide")
	assert.Contains(t, entities, "gallery")
}

func TestRunnerRerunIsIdempotent(t *testing.T) {
	db := setupRunnerDB(t)
	src := fullSource()

	_, err := NewRunner(db, src, quietLogger()).Run(context.Background())
	assert.NoError(t, err)
	_, err = NewRunner(db, src, quietLogger()).Run(context.Background())
	assert.NoError(t, err)

	ctx := context.Background()
	count, err := repository.NewPropertyRepo(db).Count(ctx)
	assert.NoError(t, err)
	assert.EqualValues(t, 2, count)

	var galleryCount int64
	assert.NoError(t, db.Model(&model.GalleryItem{}).Count(&galleryCount).Error)
	assert.EqualValues(t, 1, galleryCount)

	var settingsCount int64
	assert.NoError(t, db.Model(&model.Setting{}).Count(&settingsCount).Error)
	assert.EqualValues(t, 1, settingsCount)
}

func TestRunnerMissingBlogCollectionIsWarning(t *testing.T) {
	db := setupRunnerDB(t)
	src := fullSource()
	delete(src.collections, "posts")

	report, err := NewRunner(db, src, quietLogger()).Run(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 7, report.Migrated)
}

func TestRunnerFatalOnUnreachableSource(t *testing.T) {
	db := setupRunnerDB(t)
	src := &fakeSource{collections: map[string][]Document{}}

	runner := NewRunner(db, src, quietLogger())
	_, err := runner.Run(context.Background())
	assert.Error(t, err)
	assert.Equal(t, StatusError, runner.Status())
}

func TestRunnerMissingBrandingDocumentIsNotAnError(t *testing.T) {
	db := setupRunnerDB(t)
	src := fullSource()
	delete(src.documents, "site_branding/main")

	report, err := NewRunner(db, src, quietLogger()).Run(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 7, report.Migrated)

	_, err = repository.NewSettingsRepo(db).Get(context.Background(), branding.SettingsKey)
	assert.True(t, errors.Is(err, repository.ErrNotFound))
}
