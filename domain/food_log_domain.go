package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessCreateFoodLog = "food log created successfully"
	MessageSuccessGetFoodLogs   = "food logs retrieved successfully"
	MessageSuccessRemoveFoodLog = "Food log removed"

	MessageFailedCreateFoodLog = "failed to create food log"
	MessageFailedGetFoodLogs   = "failed to retrieve food logs"
	MessageFailedRemoveFoodLog = "failed to remove food log"

	ErrFoodLogNotFound = errors.New("food log not found")
)

type (
	CreateFoodLogRequest struct {
		ItemName string  `json:"item_name" validate:"required"`
		Category string  `json:"category" validate:"required"`
		Quantity float64 `json:"quantity" validate:"required"`
	}

	FoodLogResponse struct {
		ID        string    `json:"id"`
		ItemName  string    `json:"item_name"`
		Category  string    `json:"category"`
		Quantity  float64   `json:"quantity"`
		CreatedAt time.Time `json:"created_at"`
	}
)
