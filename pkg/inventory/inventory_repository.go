package inventory

import (
	"context"
	"time"

	"Food-Sustainability-Backend/entities"

	"gorm.io/gorm"
)

type (
	InventoryRepository interface {
		AddInventoryItem(ctx context.Context, item *entities.InventoryItem) error
		GetInventoryItemByID(ctx context.Context, id string) (*entities.InventoryItem, error)
		GetInventoryByUser(ctx context.Context, userID string) ([]*entities.InventoryItem, error)
		GetItemsExpiringBefore(ctx context.Context, cutoff time.Time) ([]*entities.InventoryItem, error)
		DeleteInventoryItem(ctx context.Context, id string) error
	}

	inventoryRepository struct {
		db *gorm.DB
	}
)

func NewInventoryRepository(db *gorm.DB) InventoryRepository {
	return &inventoryRepository{db: db}
}

func (r *inventoryRepository) AddInventoryItem(ctx context.Context, item *entities.InventoryItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *inventoryRepository) GetInventoryItemByID(ctx context.Context, id string) (*entities.InventoryItem, error) {
	var item entities.InventoryItem
	if err := r.db.WithContext(ctx).Preload("FoodItem").Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *inventoryRepository) GetInventoryByUser(ctx context.Context, userID string) ([]*entities.InventoryItem, error) {
	var items []*entities.InventoryItem
	if err := r.db.WithContext(ctx).
		Preload("FoodItem").
		Where("user_id = ?", userID).
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *inventoryRepository) GetItemsExpiringBefore(ctx context.Context, cutoff time.Time) ([]*entities.InventoryItem, error) {
	var items []*entities.InventoryItem
	if err := r.db.WithContext(ctx).
		Preload("User").
		Preload("FoodItem").
		Where("expiry_date IS NOT NULL AND expiry_date <= ?", cutoff).
		Order("user_id asc, expiry_date asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *inventoryRepository) DeleteInventoryItem(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.InventoryItem{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
