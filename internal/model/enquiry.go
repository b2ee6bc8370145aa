package model

import "time"

// Enquiry is a contact-form submission, optionally tied to a property.
// The property reference is not a foreign key: deleting a property leaves
// the enquiry in place.
type Enquiry struct {
	ID         string    `json:"id" gorm:"primaryKey"`
	Name       string    `json:"name" gorm:"not null"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	Message    string    `json:"message" gorm:"type:text"`
	PropertyID string    `json:"property_id"`
	CreatedAt  time.Time `json:"created_at" gorm:"autoCreateTime"`
}
