package food

import "Food-Sustainability-Backend/entities"

type seedItem struct {
	name           string
	category       string
	expirationDays int
	costPerUnit    float64
}

var seedItems = []seedItem{
	{"Milk", "dairy", 7, 60},
	{"Yogurt", "dairy", 14, 40},
	{"Cheddar Cheese", "dairy", 30, 120},
	{"Eggs", "protein", 21, 8},
	{"Chicken Breast", "protein", 2, 250},
	{"Rice", "grain", 365, 55},
	{"Bread", "grain", 5, 45},
	{"Apple", "fruit", 30, 20},
	{"Banana", "fruit", 5, 6},
	{"Spinach", "vegetable", 5, 30},
	{"Tomato", "vegetable", 7, 15},
	{"Potato", "vegetable", 60, 12},
}

func seedFoodItems() []*entities.FoodItem {
	foodItems := make([]*entities.FoodItem, 0, len(seedItems))
	for _, it := range seedItems {
		foodItems = append(foodItems, &entities.FoodItem{
			Name:           it.name,
			Category:       it.category,
			ExpirationDays: it.expirationDays,
			CostPerUnit:    it.costPerUnit,
		})
	}
	return foodItems
}
