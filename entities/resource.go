package entities

import (
	"github.com/google/uuid"
)

type Resource struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `json:"description"`
	URL         string    `json:"url"`
	Category    string    `gorm:"index;not null" json:"category"` // waste-reduction, storage, nutrition, budget
	Type        string    `gorm:"not null" json:"type"`           // article, video, guide

	Timestamp
}
