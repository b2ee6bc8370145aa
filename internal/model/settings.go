package model

import "gorm.io/datatypes"

// Setting is one row of the key → JSON value store. The only well-known key
// today is "site_branding".
type Setting struct {
	Key   string         `json:"key" gorm:"primaryKey"`
	Value datatypes.JSON `json:"value"`
}
