package model

import "time"

type HeroSlide struct {
	ID         string    `json:"id" gorm:"primaryKey"`
	Image      string    `json:"image" gorm:"not null"`
	Title      string    `json:"title"`
	Subtitle   string    `json:"subtitle"`
	ButtonText string    `json:"button_text"`
	ButtonLink string    `json:"button_link"`
	IsActive   bool      `json:"is_active"`
	SortOrder  int       `json:"sort_order" gorm:"default:0"`
	CreatedAt  time.Time `json:"created_at" gorm:"autoCreateTime"`
}
