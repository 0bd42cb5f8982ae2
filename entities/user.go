package entities

import (
	"github.com/google/uuid"
)

type User struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name              string    `gorm:"not null" json:"name"`
	Email             string    `gorm:"uniqueIndex;not null" json:"email"`
	Password          string    `gorm:"not null" json:"-"`
	Location          string    `gorm:"default:''" json:"location"`
	DietaryPreference string    `gorm:"default:general" json:"dietary_preference"` // veg, non-veg, general, budget
	HouseholdSize     int       `gorm:"default:1" json:"household_size"`

	Timestamp
}
