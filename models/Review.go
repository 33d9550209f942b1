package models

import "gorm.io/gorm"

// Review is append-only: one customer's star rating of one cleaner.
// Inserting a review recomputes the cleaner's aggregate in the same
// transaction (see routes.ReviewHandler).
type Review struct {
	gorm.Model
	CleanerID uint    `json:"cleanerID" gorm:"not null;index"`
	Cleaner   Cleaner `json:"-"`
	UserID    uint    `json:"userID" gorm:"not null;index"`
	User      User    `json:"user"`
	Rating    int     `json:"rating" gorm:"not null;check:rating >= 1 AND rating <= 5"`
	Comment   string  `json:"comment" gorm:"type:text"`
}
