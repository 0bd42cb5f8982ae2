package domain

import (
	"errors"
	"time"
)

const (
	CategoryUncategorized = "Uncategorized"

	MessageFoodItemsSeeded        = "Food items seeding completed."
	MessageFoodItemsAlreadySeeded = "Food items already seeded."
)

var (
	MessageSuccessAddFoodItem    = "food item added successfully"
	MessageSuccessDeleteFoodItem = "food item deleted successfully"
	MessageSuccessGetFoodItems   = "food items retrieved successfully"
	MessageSuccessSeedFoodItems  = "food items seed finished"

	MessageFailedAddFoodItem    = "failed to add food item"
	MessageFailedDeleteFoodItem = "failed to delete food item"
	MessageFailedGetFoodItems   = "failed to retrieve food items"
	MessageFailedSeedFoodItems  = "failed to seed food items"

	ErrFoodItemNotFound = errors.New("food item not found")
)

type (
	CreateFoodItemRequest struct {
		Name           string  `json:"name" validate:"required"`
		Category       string  `json:"category" validate:"required"`
		ExpirationDays int     `json:"expiration_days" validate:"required,min=1"`
		CostPerUnit    float64 `json:"cost_per_unit" validate:"required,min=1"`
	}

	FoodItemResponse struct {
		ID             string    `json:"id"`
		Name           string    `json:"name"`
		Category       string    `json:"category"`
		ExpirationDays int       `json:"expiration_days"`
		CostPerUnit    float64   `json:"cost_per_unit"`
		CreatedAt      time.Time `json:"created_at"`
	}
)
