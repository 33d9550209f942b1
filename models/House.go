package models

import "gorm.io/gorm"

// House is a customer property on file: where the cleaning happens. Managed
// by the customer-management flow; the booking flow only reads it.
type House struct {
	gorm.Model
	UserID       uint   `json:"userID" gorm:"not null;index"`
	User         User   `json:"-"`
	CityID       uint   `json:"cityID" gorm:"not null;index"`
	City         City   `json:"city"`
	Address      string `json:"address" gorm:"not null"`
	Description  string `json:"description" gorm:"type:text"`
	SpecialNotes string `json:"specialNotes,omitempty" gorm:"type:text"`
	KeyLocation  string `json:"keyLocation,omitempty"`
}
