package entities

import (
	"github.com/google/uuid"
)

// FoodLog records something a user consumed. Category is free text and is
// not linked to the catalog.
type FoodLog struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID   uuid.UUID `gorm:"type:uuid;index;not null" json:"user_id"`
	ItemName string    `gorm:"not null" json:"item_name"`
	Category string    `gorm:"index;not null" json:"category"`
	Quantity float64   `gorm:"not null" json:"quantity"`

	User *User `gorm:"foreignKey:UserID" json:"-"`
	Timestamp
}
