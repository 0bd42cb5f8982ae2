package food

import (
	"context"
	"errors"

	"Food-Sustainability-Backend/domain"
	"Food-Sustainability-Backend/entities"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type (
	FoodService interface {
		Create(ctx context.Context, req domain.CreateFoodItemRequest) (domain.FoodItemResponse, error)
		FindAll(ctx context.Context) ([]domain.FoodItemResponse, error)
		FindByCategory(ctx context.Context, category string) ([]domain.FoodItemResponse, error)
		FindOne(ctx context.Context, id string) (domain.FoodItemResponse, error)
		FindByName(ctx context.Context, name string) (*entities.FoodItem, error)
		Remove(ctx context.Context, id string) error
		Seed(ctx context.Context) (string, error)

		// CreateEntry persists an already built catalog entry.
		CreateEntry(ctx context.Context, foodItem *entities.FoodItem) error
		GetEntry(ctx context.Context, id string) (*entities.FoodItem, error)
	}

	foodService struct {
		foodRepository FoodRepository
	}
)

func NewFoodService(foodRepository FoodRepository) FoodService {
	return &foodService{foodRepository: foodRepository}
}

func (s *foodService) Create(ctx context.Context, req domain.CreateFoodItemRequest) (domain.FoodItemResponse, error) {
	foodItem := &entities.FoodItem{
		ID:             uuid.New(),
		Name:           req.Name,
		Category:       req.Category,
		ExpirationDays: req.ExpirationDays,
		CostPerUnit:    req.CostPerUnit,
	}

	if err := s.foodRepository.AddFoodItem(ctx, foodItem); err != nil {
		return domain.FoodItemResponse{}, err
	}

	return ToResponse(foodItem), nil
}

func (s *foodService) FindAll(ctx context.Context) ([]domain.FoodItemResponse, error) {
	foodItems, err := s.foodRepository.GetFoodItems(ctx)
	if err != nil {
		return nil, err
	}
	return toResponses(foodItems), nil
}

func (s *foodService) FindByCategory(ctx context.Context, category string) ([]domain.FoodItemResponse, error) {
	foodItems, err := s.foodRepository.GetFoodItemsByCategory(ctx, category)
	if err != nil {
		return nil, err
	}
	return toResponses(foodItems), nil
}

func (s *foodService) FindOne(ctx context.Context, id string) (domain.FoodItemResponse, error) {
	foodItem, err := s.GetEntry(ctx, id)
	if err != nil {
		return domain.FoodItemResponse{}, err
	}
	return ToResponse(foodItem), nil
}

func (s *foodService) GetEntry(ctx context.Context, id string) (*entities.FoodItem, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrFoodItemNotFound
	}

	foodItem, err := s.foodRepository.GetFoodItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrFoodItemNotFound
		}
		return nil, err
	}
	return foodItem, nil
}

// FindByName returns nil without error when no entry carries the name.
func (s *foodService) FindByName(ctx context.Context, name string) (*entities.FoodItem, error) {
	foodItem, err := s.foodRepository.GetFoodItemByName(ctx, name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return foodItem, nil
}

func (s *foodService) CreateEntry(ctx context.Context, foodItem *entities.FoodItem) error {
	return s.foodRepository.AddFoodItem(ctx, foodItem)
}

func (s *foodService) Remove(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return domain.ErrFoodItemNotFound
	}

	if err := s.foodRepository.DeleteFoodItem(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrFoodItemNotFound
		}
		return err
	}
	return nil
}

func (s *foodService) Seed(ctx context.Context) (string, error) {
	count, err := s.foodRepository.CountFoodItems(ctx)
	if err != nil {
		return "", err
	}
	if count > 0 {
		return domain.MessageFoodItemsAlreadySeeded, nil
	}

	if err := s.foodRepository.AddFoodItems(ctx, seedFoodItems()); err != nil {
		return "", err
	}

	zap.L().Info("food catalog seeded", zap.Int("count", len(seedItems)))
	return domain.MessageFoodItemsSeeded, nil
}

func ToResponse(foodItem *entities.FoodItem) domain.FoodItemResponse {
	return domain.FoodItemResponse{
		ID:             foodItem.ID.String(),
		Name:           foodItem.Name,
		Category:       foodItem.Category,
		ExpirationDays: foodItem.ExpirationDays,
		CostPerUnit:    foodItem.CostPerUnit,
		CreatedAt:      foodItem.CreatedAt,
	}
}

func toResponses(foodItems []*entities.FoodItem) []domain.FoodItemResponse {
	res := make([]domain.FoodItemResponse, 0, len(foodItems))
	for _, foodItem := range foodItems {
		res = append(res, ToResponse(foodItem))
	}
	return res
}
