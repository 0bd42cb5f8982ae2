package inventory

import (
	"context"
	"errors"
	"time"

	"Food-Sustainability-Backend/domain"
	"Food-Sustainability-Backend/entities"
	"Food-Sustainability-Backend/internal/utils"
	"Food-Sustainability-Backend/pkg/food"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type (
	InventoryService interface {
		Add(ctx context.Context, userID string, req domain.AddInventoryRequest) (domain.InventoryItemResponse, error)
		AddItem(ctx context.Context, userID string, item string, quantity float64, expiry *time.Time) (*entities.InventoryItem, error)
		FindByUser(ctx context.Context, userID string) ([]domain.InventoryItemResponse, error)
		Items(ctx context.Context, userID string) ([]*entities.InventoryItem, error)
		Summary(ctx context.Context, userID string) (domain.InventorySummary, error)
		ExpiringSoon(ctx context.Context) ([]*entities.InventoryItem, error)
		Remove(ctx context.Context, requesterID string, id string) error
	}

	inventoryService struct {
		inventoryRepository InventoryRepository
		foodService         food.FoodService
		clock               utils.Clock
	}
)

func NewInventoryService(inventoryRepository InventoryRepository, foodService food.FoodService, clock utils.Clock) InventoryService {
	return &inventoryService{
		inventoryRepository: inventoryRepository,
		foodService:         foodService,
		clock:               clock,
	}
}

func (s *inventoryService) Add(ctx context.Context, userID string, req domain.AddInventoryRequest) (domain.InventoryItemResponse, error) {
	var expiry *time.Time
	if req.ExpiryDate != "" {
		t, ok := utils.ParseDate(req.ExpiryDate)
		if !ok {
			return domain.InventoryItemResponse{}, domain.ErrInvalidExpiryDate
		}
		expiry = &t
	}

	item, err := s.AddItem(ctx, userID, req.Item, req.Quantity, expiry)
	if err != nil {
		return domain.InventoryItemResponse{}, err
	}

	return ToResponse(item, s.clock.Now()), nil
}

// AddItem records quantity of item for the user. item is either a catalog id
// or a display name; unknown names get a catalog entry of their own.
func (s *inventoryService) AddItem(ctx context.Context, userID string, item string, quantity float64, expiry *time.Time) (*entities.InventoryItem, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	foodItem, err := s.resolve(ctx, item, expiry)
	if err != nil {
		return nil, err
	}

	inventoryItem := &entities.InventoryItem{
		ID:         uuid.New(),
		UserID:     userUUID,
		FoodItemID: foodItem.ID,
		Quantity:   quantity,
		ExpiryDate: expiry,
	}
	if err := s.inventoryRepository.AddInventoryItem(ctx, inventoryItem); err != nil {
		return nil, err
	}
	inventoryItem.FoodItem = foodItem

	return inventoryItem, nil
}

func (s *inventoryService) resolve(ctx context.Context, item string, expiry *time.Time) (*entities.FoodItem, error) {
	if _, err := uuid.Parse(item); err == nil {
		return s.foodService.GetEntry(ctx, item)
	}

	existing, err := s.foodService.FindByName(ctx, item)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	created := &entities.FoodItem{
		ID:             uuid.New(),
		Name:           item,
		Category:       domain.CategoryUncategorized,
		ExpirationDays: shelfLifeDays(expiry, s.clock.Now()),
		CostPerUnit:    0,
	}
	if err := s.foodService.CreateEntry(ctx, created); err != nil {
		return nil, err
	}

	zap.L().Debug("catalog entry created from inventory add", zap.String("name", item))
	return created, nil
}

func (s *inventoryService) Items(ctx context.Context, userID string) ([]*entities.InventoryItem, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return nil, domain.ErrParseUUID
	}
	return s.inventoryRepository.GetInventoryByUser(ctx, userID)
}

func (s *inventoryService) FindByUser(ctx context.Context, userID string) ([]domain.InventoryItemResponse, error) {
	items, err := s.Items(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	res := make([]domain.InventoryItemResponse, 0, len(items))
	for _, item := range items {
		res = append(res, ToResponse(item, now))
	}
	return res, nil
}

func (s *inventoryService) Summary(ctx context.Context, userID string) (domain.InventorySummary, error) {
	items, err := s.Items(ctx, userID)
	if err != nil {
		return domain.InventorySummary{}, err
	}

	now := s.clock.Now()
	summary := domain.InventorySummary{TotalItems: len(items)}
	for _, item := range items {
		if IsExpiringSoon(item.ExpiryDate, now) {
			summary.ExpiringSoon++
		}
	}
	return summary, nil
}

func (s *inventoryService) ExpiringSoon(ctx context.Context) ([]*entities.InventoryItem, error) {
	return s.inventoryRepository.GetItemsExpiringBefore(ctx, s.clock.Now().Add(expiringSoonFor))
}

// Remove deletes by id without checking that requesterID owns the record.
func (s *inventoryService) Remove(ctx context.Context, requesterID string, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return domain.ErrInventoryItemNotFound
	}

	item, err := s.inventoryRepository.GetInventoryItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrInventoryItemNotFound
		}
		return err
	}

	if err := s.inventoryRepository.DeleteInventoryItem(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrInventoryItemNotFound
		}
		return err
	}

	owner := item.UserID.String()
	if owner != requesterID {
		zap.L().Warn("inventory item removed by non-owner",
			zap.String("id", id),
			zap.String("owner", owner),
			zap.String("requested_by", requesterID),
		)
		return nil
	}

	zap.L().Info("inventory item removed", zap.String("id", id), zap.String("requested_by", requesterID))
	return nil
}

func ToResponse(item *entities.InventoryItem, now time.Time) domain.InventoryItemResponse {
	res := domain.InventoryItemResponse{
		ID:         item.ID.String(),
		Quantity:   item.Quantity,
		ExpiryDate: item.ExpiryDate,
		Risk:       Risk(item.ExpiryDate, now),
		CreatedAt:  item.CreatedAt,
	}
	if item.FoodItem != nil {
		foodItem := food.ToResponse(item.FoodItem)
		res.Item = &foodItem
	}
	if item.ExpiryDate != nil {
		days := DaysRemaining(*item.ExpiryDate, now)
		res.DaysRemaining = &days
	}
	return res
}
