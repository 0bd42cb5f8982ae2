package entities

import (
	"time"

	"github.com/google/uuid"
)

type InventoryItem struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	UserID     uuid.UUID  `gorm:"type:uuid;index;not null" json:"user_id"`
	FoodItemID uuid.UUID  `gorm:"type:uuid;not null" json:"food_item_id"`
	Quantity   float64    `gorm:"not null" json:"quantity"`
	ExpiryDate *time.Time `json:"expiry_date,omitempty"`

	User     *User     `gorm:"foreignKey:UserID" json:"-"`
	FoodItem *FoodItem `gorm:"foreignKey:FoodItemID" json:"item,omitempty"`
	Timestamp
}
