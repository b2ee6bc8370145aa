package model

import (
	"time"

	"github.com/gosimple/slug"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// PropertyStatus is the lifecycle stage of a development project.
type PropertyStatus string

const (
	PropertyStatusOngoing   PropertyStatus = "Ongoing"
	PropertyStatusCompleted PropertyStatus = "Completed"
	PropertyStatusUpcoming  PropertyStatus = "Upcoming"
)

// FloorPlanDetails holds the optional unit breakdown shown on a plan card.
type FloorPlanDetails struct {
	Size    string `json:"size"`
	Bed     string `json:"bed"`
	Bath    string `json:"bath"`
	Balcony string `json:"balcony"`
	Living  bool   `json:"living"`
	Dining  bool   `json:"dining"`
}

type FloorPlan struct {
	Name         string            `json:"name"`
	Image        string            `json:"image"`
	IsSimplePlan bool              `json:"is_simple_plan"`
	Details      *FloorPlanDetails `json:"details,omitempty"`
}

type Property struct {
	ID         string                         `json:"id" gorm:"primaryKey"`
	Title      string                         `json:"title" gorm:"not null"`
	Slug       string                         `json:"slug" gorm:"uniqueIndex;not null"`
	Location   string                         `json:"location"`
	Area       string                         `json:"area"`
	AreaUnit   string                         `json:"area_unit" gorm:"default:'sft'"`
	Price      string                         `json:"price"`
	PriceLabel string                         `json:"price_label"`
	Bedrooms   int                            `json:"bedrooms"`
	Bathrooms  int                            `json:"bathrooms"`
	Status     PropertyStatus                 `json:"status" gorm:"default:'Ongoing'"`
	Features   datatypes.JSONSlice[string]    `json:"features"`
	Images     datatypes.JSONSlice[string]    `json:"images"`
	FloorPlans datatypes.JSONSlice[FloorPlan] `json:"floor_plans" gorm:"column:floor_plans"`
	// Rich HTML produced by the admin editor.
	Description string    `json:"description" gorm:"type:text"`
	SortOrder   int       `json:"sort_order" gorm:"default:0"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// BeforeSave derives the slug from the title when missing and keeps the
// JSON collections non-null so they serialize as empty arrays.
func (p *Property) BeforeSave(tx *gorm.DB) error {
	if p.Slug == "" {
		p.Slug = slug.Make(p.Title)
	}
	if p.Status == "" {
		p.Status = PropertyStatusOngoing
	}
	if p.AreaUnit == "" {
		p.AreaUnit = "sft"
	}
	if p.Features == nil {
		p.Features = datatypes.JSONSlice[string]{}
	}
	if p.Images == nil {
		p.Images = datatypes.JSONSlice[string]{}
	}
	if p.FloorPlans == nil {
		p.FloorPlans = datatypes.JSONSlice[FloorPlan]{}
	}
	return nil
}
