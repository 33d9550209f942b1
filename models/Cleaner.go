package models

import (
	"encoding/json"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// TimeRange is a single availability window within a day, "HH:MM" local time.
type TimeRange struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// WeeklyAvailability maps lowercase English weekday names ("monday" ...
// "sunday") to an optional window. A missing or nil entry means unavailable.
// Stored as a JSON column, same wire shape the frontend already consumes.
type WeeklyAvailability map[string]*TimeRange

// Cleaner is a service provider profile, created and maintained by the seed
// script or an admin. Rating and ReviewCount are derived from the reviews
// table and recomputed whenever a review is inserted; they are never edited
// by hand.
type Cleaner struct {
	gorm.Model
	Name         string         `json:"name" gorm:"not null"`
	Slug         string         `json:"slug" gorm:"uniqueIndex;not null"`
	PhoneE164    string         `json:"phoneE164"`
	Email        *string        `json:"email,omitempty"`
	Bio          string         `json:"bio" gorm:"type:text"`
	PhotoURL     string         `json:"photoUrl"`
	CityID       uint           `json:"cityID" gorm:"not null;index"`
	City         City           `json:"city"`
	PricePerHour *int           `json:"pricePerHour"`
	Rating       *float64       `json:"rating"`
	ReviewCount  int            `json:"reviewCount" gorm:"default:0"`
	Services     datatypes.JSON `json:"services"`
	Languages    datatypes.JSON `json:"languages"`
	Availability datatypes.JSON `json:"availability"`
	IsActive     bool           `json:"isActive" gorm:"index"`
	IsVerified   bool           `json:"isVerified" gorm:"default:false"`
	Reviews      []Review       `json:"reviews,omitempty"`
}

// ServiceList decodes the services column. Returns an empty slice for a
// missing or malformed column so callers never deal with nil.
func (c *Cleaner) ServiceList() []string {
	return decodeStringList(c.Services)
}

func (c *Cleaner) SetServiceList(services []string) error {
	raw, err := json.Marshal(services)
	if err != nil {
		return err
	}
	c.Services = datatypes.JSON(raw)
	return nil
}

func (c *Cleaner) LanguageList() []string {
	return decodeStringList(c.Languages)
}

func (c *Cleaner) SetLanguageList(languages []string) error {
	raw, err := json.Marshal(languages)
	if err != nil {
		return err
	}
	c.Languages = datatypes.JSON(raw)
	return nil
}

func (c *Cleaner) AvailabilityWindows() WeeklyAvailability {
	windows := WeeklyAvailability{}
	if len(c.Availability) == 0 {
		return windows
	}
	if err := json.Unmarshal(c.Availability, &windows); err != nil {
		return WeeklyAvailability{}
	}
	return windows
}

func (c *Cleaner) SetAvailabilityWindows(windows WeeklyAvailability) error {
	raw, err := json.Marshal(windows)
	if err != nil {
		return err
	}
	c.Availability = datatypes.JSON(raw)
	return nil
}

func decodeStringList(col datatypes.JSON) []string {
	if len(col) == 0 {
		return []string{}
	}
	var list []string
	if err := json.Unmarshal(col, &list); err != nil {
		return []string{}
	}
	return list
}
