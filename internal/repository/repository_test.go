package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"estatecms_backend/internal/model"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}

	// A single connection keeps every query on the same in-memory database,
	// including the concurrent dashboard counts.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get database instance: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&model.Property{},
		&model.Blog{},
		&model.BlogCategory{},
		&model.GalleryItem{},
		&model.Testimonial{},
		&model.HeroSlide{},
		&model.Setting{},
		&model.Enquiry{},
	)
	if err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func TestClassifyNotFound(t *testing.T) {
	err := classify(gorm.ErrRecordNotFound)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestClassifyTimeout(t *testing.T) {
	err := classify(context.DeadlineExceeded)
	assert.ErrorIs(t, err, ErrTimeout)
}

func TestClassifyPassesThroughOtherErrors(t *testing.T) {
	cause := errors.New("connection refused")
	err := classify(cause)
	assert.Equal(t, cause, err)
	assert.NotErrorIs(t, err, ErrNotFound)
	assert.NotErrorIs(t, err, ErrTimeout)
}

func TestClassifyNil(t *testing.T) {
	assert.NoError(t, classify(nil))
}
