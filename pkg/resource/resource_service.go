package resource

import (
	"context"

	"Food-Sustainability-Backend/domain"
	"Food-Sustainability-Backend/entities"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type (
	ResourceService interface {
		Create(ctx context.Context, req domain.CreateResourceRequest) (domain.ResourceResponse, error)
		FindAll(ctx context.Context) ([]domain.ResourceResponse, error)
		FindByCategory(ctx context.Context, category string) ([]domain.ResourceResponse, error)
		Seed(ctx context.Context) (string, error)
		Recommend(ctx context.Context, logs []domain.FoodLogResponse) ([]domain.RecommendedResource, error)
	}

	resourceService struct {
		resourceRepository ResourceRepository
	}
)

func NewResourceService(resourceRepository ResourceRepository) ResourceService {
	return &resourceService{resourceRepository: resourceRepository}
}

func (s *resourceService) Create(ctx context.Context, req domain.CreateResourceRequest) (domain.ResourceResponse, error) {
	resource := &entities.Resource{
		ID:          uuid.New(),
		Title:       req.Title,
		Description: req.Description,
		URL:         req.URL,
		Category:    req.Category,
		Type:        req.Type,
	}

	if err := s.resourceRepository.CreateResource(ctx, resource); err != nil {
		return domain.ResourceResponse{}, err
	}
	return toResponse(resource), nil
}

func (s *resourceService) FindAll(ctx context.Context) ([]domain.ResourceResponse, error) {
	resources, err := s.resourceRepository.GetResources(ctx)
	if err != nil {
		return nil, err
	}
	return toResponses(resources), nil
}

func (s *resourceService) FindByCategory(ctx context.Context, category string) ([]domain.ResourceResponse, error) {
	resources, err := s.resourceRepository.GetResourcesByCategories(ctx, []string{category})
	if err != nil {
		return nil, err
	}
	return toResponses(resources), nil
}

func (s *resourceService) Seed(ctx context.Context) (string, error) {
	count, err := s.resourceRepository.CountResources(ctx)
	if err != nil {
		return "", err
	}
	if count > 0 {
		return domain.MessageResourcesAlreadySeeded, nil
	}

	resources := seedResources()
	if err := s.resourceRepository.CreateResources(ctx, resources); err != nil {
		return "", err
	}

	zap.L().Info("resources seeded", zap.Int("count", len(resources)))
	return domain.MessageResourcesSeeded, nil
}

// Recommend matches resources against the categories present in logs.
// No logs means no recommendations.
func (s *resourceService) Recommend(ctx context.Context, logs []domain.FoodLogResponse) ([]domain.RecommendedResource, error) {
	res := []domain.RecommendedResource{}

	seen := make(map[string]struct{}, len(logs))
	categories := make([]string, 0, len(logs))
	for _, log := range logs {
		if _, ok := seen[log.Category]; ok {
			continue
		}
		seen[log.Category] = struct{}{}
		categories = append(categories, log.Category)
	}
	if len(categories) == 0 {
		return res, nil
	}

	resources, err := s.resourceRepository.GetResourcesByCategories(ctx, categories)
	if err != nil {
		return nil, err
	}

	for _, resource := range resources {
		res = append(res, domain.RecommendedResource{
			Title:    resource.Title,
			Category: resource.Category,
			Reason:   "Related to: " + resource.Category + " category",
		})
	}
	return res, nil
}

func toResponse(resource *entities.Resource) domain.ResourceResponse {
	return domain.ResourceResponse{
		ID:          resource.ID.String(),
		Title:       resource.Title,
		Description: resource.Description,
		URL:         resource.URL,
		Category:    resource.Category,
		Type:        resource.Type,
	}
}

func toResponses(resources []*entities.Resource) []domain.ResourceResponse {
	res := make([]domain.ResourceResponse, 0, len(resources))
	for _, resource := range resources {
		res = append(res, toResponse(resource))
	}
	return res
}
