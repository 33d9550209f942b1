package models

import "gorm.io/gorm"

const (
	RoleCustomer = "CUSTOMER"
	RoleStaff    = "STAFF"
)

// User is a customer record, created lazily on the first booking request
// that carries an unseen email address. Profile fields are first-write-wins:
// later bookings with the same email reuse the row untouched.
type User struct {
	gorm.Model
	Email   string `json:"email" gorm:"uniqueIndex;not null"`
	Name    string `json:"name"`
	Phone   string `json:"phone,omitempty"`
	Country string `json:"country,omitempty"`
	Role    string `json:"role" gorm:"type:varchar(20);default:CUSTOMER;index"`
}
