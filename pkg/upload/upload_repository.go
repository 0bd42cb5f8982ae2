package upload

import (
	"context"

	"Food-Sustainability-Backend/entities"

	"gorm.io/gorm"
)

type (
	UploadRepository interface {
		CreateUpload(ctx context.Context, upload *entities.Upload) error
		GetUploadsByUser(ctx context.Context, userID string, uploadType string) ([]*entities.Upload, error)
	}

	uploadRepository struct {
		db *gorm.DB
	}
)

func NewUploadRepository(db *gorm.DB) UploadRepository {
	return &uploadRepository{db: db}
}

func (r *uploadRepository) CreateUpload(ctx context.Context, upload *entities.Upload) error {
	return r.db.WithContext(ctx).Create(upload).Error
}

func (r *uploadRepository) GetUploadsByUser(ctx context.Context, userID string, uploadType string) ([]*entities.Upload, error) {
	var uploads []*entities.Upload
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND type = ?", userID, uploadType).
		Order("created_at desc").
		Find(&uploads).Error; err != nil {
		return nil, err
	}
	return uploads, nil
}
