package entities

import (
	"github.com/google/uuid"
)

// FoodItem is a catalog entry: the canonical definition shared by every
// user's inventory.
type FoodItem struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name           string    `gorm:"index;not null" json:"name"`
	Category       string    `gorm:"index;not null" json:"category"` // fruit, grain, dairy, vegetable etc
	ExpirationDays int       `gorm:"not null" json:"expiration_days"`
	CostPerUnit    float64   `gorm:"not null" json:"cost_per_unit"`

	Timestamp
}
