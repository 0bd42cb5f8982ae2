package foodlog

import (
	"context"
	"errors"

	"Food-Sustainability-Backend/domain"
	"Food-Sustainability-Backend/entities"
	"Food-Sustainability-Backend/internal/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	FoodLogService interface {
		Create(ctx context.Context, userID string, req domain.CreateFoodLogRequest) (domain.FoodLogResponse, error)
		FindByUser(ctx context.Context, userID string) ([]domain.FoodLogResponse, error)
		Recent(ctx context.Context, userID string, n int) ([]domain.FoodLogResponse, error)
		Remove(ctx context.Context, id string) error
	}

	foodLogService struct {
		foodLogRepository FoodLogRepository
		clock             utils.Clock
	}
)

func NewFoodLogService(foodLogRepository FoodLogRepository, clock utils.Clock) FoodLogService {
	return &foodLogService{
		foodLogRepository: foodLogRepository,
		clock:             clock,
	}
}

func (s *foodLogService) Create(ctx context.Context, userID string, req domain.CreateFoodLogRequest) (domain.FoodLogResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.FoodLogResponse{}, domain.ErrParseUUID
	}

	log := &entities.FoodLog{
		ID:       uuid.New(),
		UserID:   userUUID,
		ItemName: req.ItemName,
		Category: req.Category,
		Quantity: req.Quantity,
	}
	log.CreatedAt = s.clock.Now()

	if err := s.foodLogRepository.CreateFoodLog(ctx, log); err != nil {
		return domain.FoodLogResponse{}, err
	}

	return ToResponse(log), nil
}

func (s *foodLogService) FindByUser(ctx context.Context, userID string) ([]domain.FoodLogResponse, error) {
	return s.Recent(ctx, userID, 0)
}

func (s *foodLogService) Recent(ctx context.Context, userID string, n int) ([]domain.FoodLogResponse, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return nil, domain.ErrParseUUID
	}

	logs, err := s.foodLogRepository.GetFoodLogsByUser(ctx, userID, n)
	if err != nil {
		return nil, err
	}

	res := make([]domain.FoodLogResponse, 0, len(logs))
	for _, log := range logs {
		res = append(res, ToResponse(log))
	}
	return res, nil
}

func (s *foodLogService) Remove(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return domain.ErrFoodLogNotFound
	}

	if err := s.foodLogRepository.DeleteFoodLog(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrFoodLogNotFound
		}
		return err
	}
	return nil
}

func ToResponse(log *entities.FoodLog) domain.FoodLogResponse {
	return domain.FoodLogResponse{
		ID:        log.ID.String(),
		ItemName:  log.ItemName,
		Category:  log.Category,
		Quantity:  log.Quantity,
		CreatedAt: log.CreatedAt,
	}
}
