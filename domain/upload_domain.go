package domain

import (
	"errors"
	"time"
)

const (
	ReceiptFolder     = "receipts"
	MaxReceiptSize    = 5 << 20
	UnknownItemName   = "Unknown Item"
	DefaultExpiryDays = 7
)

var (
	MessageSuccessUploadReceipt = "Receipt uploaded successfully"
	MessageSuccessGetReceipts   = "My receipts fetched"

	MessageFailedUploadReceipt = "failed to upload receipt"
	MessageFailedGetReceipts   = "failed to fetch receipts"

	ErrNoFileReceived  = errors.New(`no file received, make sure the form-data field name is "file"`)
	ErrInvalidFileType = errors.New("invalid file type, only JPG, PNG & PDF allowed")
	ErrFileTooLarge    = errors.New("file too large, max 5MB allowed")
)

// AllowedReceiptTypes lists the mime types accepted for receipts.
var AllowedReceiptTypes = []string{"image/jpeg", "image/jpg", "image/png", "application/pdf"}

type (
	UploadResponse struct {
		ID           string    `json:"id"`
		URL          string    `json:"url"`
		OriginalName string    `json:"original_name"`
		MimeType     string    `json:"mime_type"`
		Size         int64     `json:"size"`
		Folder       string    `json:"folder"`
		Type         string    `json:"type"`
		CreatedAt    time.Time `json:"created_at"`
	}

	UploadReceiptResponse struct {
		Upload        UploadResponse `json:"upload"`
		ProposedItems []ProposedItem `json:"proposed_items"`
		SavedCount    int            `json:"saved_count"`
	}

	ReceiptListResponse struct {
		Count int              `json:"count"`
		Data  []UploadResponse `json:"data"`
	}
)
