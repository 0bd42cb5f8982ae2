package dashboard

import (
	"context"

	"Food-Sustainability-Backend/domain"
	"Food-Sustainability-Backend/pkg/foodlog"
	"Food-Sustainability-Backend/pkg/inventory"
	"Food-Sustainability-Backend/pkg/resource"
	"Food-Sustainability-Backend/pkg/user"

	"golang.org/x/sync/errgroup"
)

const recentLogCount = 5

type (
	DashboardService interface {
		GetUserDashboard(ctx context.Context, userID string) (domain.DashboardResponse, error)
	}

	dashboardService struct {
		userService      user.UserService
		inventoryService inventory.InventoryService
		foodLogService   foodlog.FoodLogService
		resourceService  resource.ResourceService
	}
)

func NewDashboardService(
	userService user.UserService,
	inventoryService inventory.InventoryService,
	foodLogService foodlog.FoodLogService,
	resourceService resource.ResourceService,
) DashboardService {
	return &dashboardService{
		userService:      userService,
		inventoryService: inventoryService,
		foodLogService:   foodLogService,
		resourceService:  resourceService,
	}
}

func (s *dashboardService) GetUserDashboard(ctx context.Context, userID string) (domain.DashboardResponse, error) {
	var (
		profile domain.UserProfile
		summary domain.InventorySummary
		logs    []domain.FoodLogResponse
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		profile, err = s.userService.Me(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		summary, err = s.inventoryService.Summary(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		logs, err = s.foodLogService.Recent(gctx, userID, recentLogCount)
		return err
	})
	if err := g.Wait(); err != nil {
		return domain.DashboardResponse{}, err
	}

	recommended, err := s.resourceService.Recommend(ctx, logs)
	if err != nil {
		return domain.DashboardResponse{}, err
	}

	return domain.DashboardResponse{
		Profile:              profile,
		InventorySummary:     summary,
		RecentLogs:           logs,
		RecommendedResources: recommended,
	}, nil
}
