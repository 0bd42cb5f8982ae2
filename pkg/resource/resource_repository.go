package resource

import (
	"context"

	"Food-Sustainability-Backend/entities"

	"gorm.io/gorm"
)

type (
	ResourceRepository interface {
		CreateResource(ctx context.Context, resource *entities.Resource) error
		CreateResources(ctx context.Context, resources []*entities.Resource) error
		GetResources(ctx context.Context) ([]*entities.Resource, error)
		GetResourcesByCategories(ctx context.Context, categories []string) ([]*entities.Resource, error)
		CountResources(ctx context.Context) (int64, error)
	}

	resourceRepository struct {
		db *gorm.DB
	}
)

func NewResourceRepository(db *gorm.DB) ResourceRepository {
	return &resourceRepository{db: db}
}

func (r *resourceRepository) CreateResource(ctx context.Context, resource *entities.Resource) error {
	return r.db.WithContext(ctx).Create(resource).Error
}

func (r *resourceRepository) CreateResources(ctx context.Context, resources []*entities.Resource) error {
	return r.db.WithContext(ctx).Create(&resources).Error
}

func (r *resourceRepository) GetResources(ctx context.Context) ([]*entities.Resource, error) {
	var resources []*entities.Resource
	if err := r.db.WithContext(ctx).Order("created_at asc").Find(&resources).Error; err != nil {
		return nil, err
	}
	return resources, nil
}

func (r *resourceRepository) GetResourcesByCategories(ctx context.Context, categories []string) ([]*entities.Resource, error) {
	var resources []*entities.Resource
	if err := r.db.WithContext(ctx).
		Where("category IN ?", categories).
		Order("created_at asc").
		Find(&resources).Error; err != nil {
		return nil, err
	}
	return resources, nil
}

func (r *resourceRepository) CountResources(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.Resource{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
