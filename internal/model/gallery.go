package model

import "time"

type GalleryItem struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	Category  string    `json:"category"`
	ImageURL  string    `json:"image_url" gorm:"not null"`
	SortOrder int       `json:"sort_order" gorm:"default:0"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (GalleryItem) TableName() string {
	return "gallery"
}
