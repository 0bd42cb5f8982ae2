package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Timestamp struct {
	CreatedAt time.Time `gorm:"type:timestamp" json:"created_at"`
	UpdatedAt time.Time `gorm:"type:timestamp" json:"updated_at"`
}

// assignID fills a missing primary key so rows can be created without relying
// on database-side uuid generation.
func assignID(id *uuid.UUID) {
	if *id == uuid.Nil {
		*id = uuid.New()
	}
}

func (u *User) BeforeCreate(_ *gorm.DB) error {
	assignID(&u.ID)
	return nil
}

func (f *FoodItem) BeforeCreate(_ *gorm.DB) error {
	assignID(&f.ID)
	return nil
}

func (i *InventoryItem) BeforeCreate(_ *gorm.DB) error {
	assignID(&i.ID)
	return nil
}

func (l *FoodLog) BeforeCreate(_ *gorm.DB) error {
	assignID(&l.ID)
	return nil
}

func (r *Resource) BeforeCreate(_ *gorm.DB) error {
	assignID(&r.ID)
	return nil
}

func (u *Upload) BeforeCreate(_ *gorm.DB) error {
	assignID(&u.ID)
	return nil
}
