package entities

import (
	"github.com/google/uuid"
)

const UploadTypeReceipt = "receipt"

type Upload struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID       uuid.UUID `gorm:"type:uuid;index;not null" json:"user_id"`
	URL          string    `gorm:"not null" json:"url"`
	StorageKey   string    `json:"storage_key"`
	OriginalName string    `json:"original_name"`
	MimeType     string    `json:"mime_type"`
	Size         int64     `json:"size"`
	Folder       string    `gorm:"default:receipts" json:"folder"`
	Type         string    `gorm:"default:receipt" json:"type"`

	User *User `gorm:"foreignKey:UserID" json:"-"`
	Timestamp
}
