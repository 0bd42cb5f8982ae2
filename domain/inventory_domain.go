package domain

import (
	"errors"
	"time"
)

const (
	RiskHigh    = "high"
	RiskMedium  = "medium"
	RiskLow     = "low"
	RiskUnknown = "unknown"
)

var (
	MessageSuccessAddInventoryItem    = "inventory item added successfully"
	MessageSuccessGetInventory        = "inventory retrieved successfully"
	MessageSuccessRemoveInventoryItem = "Inventory item removed"

	MessageFailedAddInventoryItem    = "failed to add inventory item"
	MessageFailedGetInventory        = "failed to retrieve inventory"
	MessageFailedRemoveInventoryItem = "failed to remove inventory item"

	ErrInventoryItemNotFound = errors.New("inventory item not found")
	ErrInvalidExpiryDate     = errors.New("invalid expiry date")
)

type (
	// AddInventoryRequest.Item holds either a catalog id or a display name.
	AddInventoryRequest struct {
		Item       string  `json:"item" validate:"required"`
		Quantity   float64 `json:"quantity" validate:"required,gt=0"`
		ExpiryDate string  `json:"expiry_date" validate:"omitempty"`
	}

	InventoryItemResponse struct {
		ID            string            `json:"id"`
		Item          *FoodItemResponse `json:"item,omitempty"`
		Quantity      float64           `json:"quantity"`
		ExpiryDate    *time.Time        `json:"expiry_date,omitempty"`
		DaysRemaining *float64          `json:"days_remaining,omitempty"`
		Risk          string            `json:"risk"`
		CreatedAt     time.Time         `json:"created_at"`
	}
)
