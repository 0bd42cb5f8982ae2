package migration

import (
	"fmt"

	"Food-Sustainability-Backend/entities"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	models := []any{
		&entities.User{},
		&entities.FoodItem{},
		&entities.InventoryItem{},
		&entities.FoodLog{},
		&entities.Resource{},
		&entities.Upload{},
	}

	for _, model := range models {
		if err := db.AutoMigrate(model); err != nil {
			return fmt.Errorf("error migrating %T, %w", model, err)
		}
	}

	zap.L().Info("database migration complete")
	return nil
}
