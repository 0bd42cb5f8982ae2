package food

import (
	"context"

	"Food-Sustainability-Backend/entities"

	"gorm.io/gorm"
)

type (
	FoodRepository interface {
		AddFoodItem(ctx context.Context, foodItem *entities.FoodItem) error
		AddFoodItems(ctx context.Context, foodItems []*entities.FoodItem) error
		GetFoodItemByID(ctx context.Context, id string) (*entities.FoodItem, error)
		GetFoodItemByName(ctx context.Context, name string) (*entities.FoodItem, error)
		GetFoodItems(ctx context.Context) ([]*entities.FoodItem, error)
		GetFoodItemsByCategory(ctx context.Context, category string) ([]*entities.FoodItem, error)
		CountFoodItems(ctx context.Context) (int64, error)
		DeleteFoodItem(ctx context.Context, id string) error
	}

	foodRepository struct {
		db *gorm.DB
	}
)

func NewFoodRepository(db *gorm.DB) FoodRepository {
	return &foodRepository{db: db}
}

func (r *foodRepository) AddFoodItem(ctx context.Context, foodItem *entities.FoodItem) error {
	return r.db.WithContext(ctx).Create(foodItem).Error
}

func (r *foodRepository) AddFoodItems(ctx context.Context, foodItems []*entities.FoodItem) error {
	return r.db.WithContext(ctx).Create(&foodItems).Error
}

func (r *foodRepository) GetFoodItemByID(ctx context.Context, id string) (*entities.FoodItem, error) {
	var foodItem entities.FoodItem
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&foodItem).Error; err != nil {
		return nil, err
	}
	return &foodItem, nil
}

// GetFoodItemByName matches the name exactly. Names are not unique, the
// oldest entry wins.
func (r *foodRepository) GetFoodItemByName(ctx context.Context, name string) (*entities.FoodItem, error) {
	var foodItem entities.FoodItem
	if err := r.db.WithContext(ctx).
		Where("name = ?", name).
		Order("created_at asc").
		First(&foodItem).Error; err != nil {
		return nil, err
	}
	return &foodItem, nil
}

func (r *foodRepository) GetFoodItems(ctx context.Context) ([]*entities.FoodItem, error) {
	var foodItems []*entities.FoodItem
	if err := r.db.WithContext(ctx).Order("name asc").Find(&foodItems).Error; err != nil {
		return nil, err
	}
	return foodItems, nil
}

func (r *foodRepository) GetFoodItemsByCategory(ctx context.Context, category string) ([]*entities.FoodItem, error) {
	var foodItems []*entities.FoodItem
	if err := r.db.WithContext(ctx).
		Where("category = ?", category).
		Order("name asc").
		Find(&foodItems).Error; err != nil {
		return nil, err
	}
	return foodItems, nil
}

func (r *foodRepository) CountFoodItems(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.FoodItem{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *foodRepository) DeleteFoodItem(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.FoodItem{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
