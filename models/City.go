package models

import "gorm.io/gorm"

// City is reference data, created by the seed script and effectively
// immutable afterwards. The slug is the stable identifier used in URLs and
// filter parameters.
type City struct {
	gorm.Model
	Name   string `json:"name" gorm:"not null"`
	Slug   string `json:"slug" gorm:"uniqueIndex;not null"`
	Region string `json:"region,omitempty"`
}
