package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// BookingStatus is the workflow state of a booking request. Transitions are
// administrator-triggered only and validated server-side.
type BookingStatus string

const (
	StatusPending   BookingStatus = "PENDING"
	StatusContacted BookingStatus = "CONTACTED"
	StatusConfirmed BookingStatus = "CONFIRMED"
	StatusDeclined  BookingStatus = "DECLINED"
)

// transitions: PENDING -> CONTACTED | DECLINED, CONTACTED -> CONFIRMED |
// DECLINED. CONFIRMED and DECLINED are terminal.
var transitions = map[BookingStatus][]BookingStatus{
	StatusPending:   {StatusContacted, StatusDeclined},
	StatusContacted: {StatusConfirmed, StatusDeclined},
}

func (s BookingStatus) Valid() bool {
	switch s {
	case StatusPending, StatusContacted, StatusConfirmed, StatusDeclined:
		return true
	}
	return false
}

// CanTransitionTo reports whether next is reachable from s. A same-status
// update is treated as a permitted no-op.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	if s == next {
		return true
	}
	for _, allowed := range transitions[s] {
		if next == allowed {
			return true
		}
	}
	return false
}

// BookingIntake is the supplemental data the booking form collects beyond
// the first-class columns. Packed into a single JSON column, wire-compatible
// with what the frontend has always sent.
type BookingIntake struct {
	Services     []string `json:"services"`
	PropertyType *string  `json:"propertyType"`
	PropertySize *string  `json:"propertySize"`
	Frequency    *string  `json:"frequency"`
	Source       string   `json:"source"`
}

// BookingRequest is the one mutable workflow entity: created once by the
// public booking flow, only its status changes afterwards, never deleted.
// A request always has a city, either chosen explicitly or inherited from
// the chosen cleaner.
type BookingRequest struct {
	gorm.Model
	FullName       string         `json:"fullName" gorm:"not null"`
	PhoneE164      string         `json:"phoneE164" gorm:"not null"`
	Email          *string        `json:"email,omitempty"`
	UserID         *uint          `json:"userID" gorm:"index"`
	User           *User          `json:"user,omitempty"`
	CityID         uint           `json:"cityID" gorm:"not null;index"`
	City           City           `json:"city"`
	CleanerID      *uint          `json:"cleanerID" gorm:"index"`
	Cleaner        *Cleaner       `json:"cleaner,omitempty"`
	PreferredDate  *time.Time     `json:"preferredDate"`
	Message        *string        `json:"message,omitempty"`
	AdditionalData datatypes.JSON `json:"additionalData,omitempty"`
	Status         BookingStatus  `json:"status" gorm:"type:varchar(20);default:PENDING;index"`
}

func (b *BookingRequest) SetIntake(intake BookingIntake) error {
	if intake.Services == nil {
		intake.Services = []string{}
	}
	raw, err := json.Marshal(intake)
	if err != nil {
		return err
	}
	b.AdditionalData = datatypes.JSON(raw)
	return nil
}

func (b *BookingRequest) Intake() BookingIntake {
	intake := BookingIntake{Services: []string{}}
	if len(b.AdditionalData) == 0 {
		return intake
	}
	if err := json.Unmarshal(b.AdditionalData, &intake); err != nil {
		return BookingIntake{Services: []string{}}
	}
	if intake.Services == nil {
		intake.Services = []string{}
	}
	return intake
}
