package model

import (
	"time"

	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

type Blog struct {
	ID            string    `json:"id" gorm:"primaryKey"`
	Title         string    `json:"title" gorm:"not null"`
	Slug          string    `json:"slug" gorm:"uniqueIndex;not null"`
	Category      string    `json:"category"`
	FeaturedImage string    `json:"featured_image"`
	Excerpt       string    `json:"excerpt"`
	Content       string    `json:"content" gorm:"type:text"`
	PublishedAt   time.Time `json:"published_at" gorm:"autoCreateTime"`
	CreatedAt     time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (b *Blog) BeforeSave(tx *gorm.DB) error {
	if b.Slug == "" {
		b.Slug = slug.Make(b.Title)
	}
	if b.PublishedAt.IsZero() {
		b.PublishedAt = time.Now()
	}
	return nil
}

type BlogCategory struct {
	ID   string `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"uniqueIndex;not null"`
}
