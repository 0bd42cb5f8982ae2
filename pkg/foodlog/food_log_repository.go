package foodlog

import (
	"context"

	"Food-Sustainability-Backend/entities"

	"gorm.io/gorm"
)

type (
	FoodLogRepository interface {
		CreateFoodLog(ctx context.Context, log *entities.FoodLog) error
		GetFoodLogsByUser(ctx context.Context, userID string, limit int) ([]*entities.FoodLog, error)
		DeleteFoodLog(ctx context.Context, id string) error
	}

	foodLogRepository struct {
		db *gorm.DB
	}
)

func NewFoodLogRepository(db *gorm.DB) FoodLogRepository {
	return &foodLogRepository{db: db}
}

func (r *foodLogRepository) CreateFoodLog(ctx context.Context, log *entities.FoodLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

// GetFoodLogsByUser returns newest first; limit <= 0 means no limit.
func (r *foodLogRepository) GetFoodLogsByUser(ctx context.Context, userID string, limit int) ([]*entities.FoodLog, error) {
	var logs []*entities.FoodLog

	query := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at desc")
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (r *foodLogRepository) DeleteFoodLog(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.FoodLog{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
