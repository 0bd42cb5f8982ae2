package config

import (
	"fmt"
	"io"
	"os"
	"time"

	"Food-Sustainability-Backend/internal/api/handlers"
	"Food-Sustainability-Backend/internal/api/routes"
	"Food-Sustainability-Backend/internal/middleware"
	"Food-Sustainability-Backend/internal/utils"
	"Food-Sustainability-Backend/internal/utils/mailing"
	"Food-Sustainability-Backend/internal/utils/storage"
	"Food-Sustainability-Backend/pkg/alert"
	"Food-Sustainability-Backend/pkg/dashboard"
	"Food-Sustainability-Backend/pkg/food"
	"Food-Sustainability-Backend/pkg/foodlog"
	"Food-Sustainability-Backend/pkg/gemini"
	"Food-Sustainability-Backend/pkg/inventory"
	"Food-Sustainability-Backend/pkg/jwt"
	"Food-Sustainability-Backend/pkg/resource"
	"Food-Sustainability-Backend/pkg/upload"
	"Food-Sustainability-Backend/pkg/user"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"gorm.io/gorm"
)

const maxBodySize = 10 << 20

// Dependencies are the collaborators NewApp wires together. Clock, Mailer
// and AccessLog fall back to real implementations when nil.
type Dependencies struct {
	DB        *gorm.DB
	Config    utils.Config
	Storage   storage.AwsS3
	AI        gemini.GeminiService
	Clock     utils.Clock
	Mailer    mailing.Mailer
	AccessLog io.Writer
}

type Application struct {
	App          *fiber.App
	ExpiryDigest *alert.ExpiryDigest
}

func NewApp(deps Dependencies) (*Application, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes:     deps.AccessLog == nil,
		DisableStartupMessage: deps.AccessLog != nil,
		BodyLimit:             maxBodySize,
	})
	cfg := deps.Config
	middlewares := middleware.NewMiddleware(cfg.Origins())
	validator := utils.Validate

	clock := deps.Clock
	if clock == nil {
		clock = utils.SystemClock{}
	}
	mailer := deps.Mailer
	if mailer == nil {
		mailer = mailing.NewMailer(cfg)
	}
	ai := deps.AI
	if ai == nil {
		ai = gemini.NewGeminiService(cfg, clock)
	}

	// setting up logging and limiter
	accessLog := deps.AccessLog
	if accessLog == nil {
		if err := os.MkdirAll("./logs", os.ModePerm); err != nil {
			return nil, fmt.Errorf("error creating logs directory, %w", err)
		}
		file, err := os.OpenFile(
			"./logs/app.log",
			os.O_RDWR|os.O_CREATE|os.O_APPEND,
			0666,
		)
		if err != nil {
			return nil, fmt.Errorf("error opening access log, %w", err)
		}
		accessLog = file
	}
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "UTC",
		Output:     accessLog,
	}))

	if cfg.RateLimit > 0 {
		app.Use(limiter.New(limiter.Config{
			Max:        cfg.RateLimit,
			Expiration: 1 * time.Second,
		}))
	}

	// Repository
	userRepository := user.NewUserRepository(deps.DB)
	foodRepository := food.NewFoodRepository(deps.DB)
	inventoryRepository := inventory.NewInventoryRepository(deps.DB)
	foodLogRepository := foodlog.NewFoodLogRepository(deps.DB)
	resourceRepository := resource.NewResourceRepository(deps.DB)
	uploadRepository := upload.NewUploadRepository(deps.DB)

	// Service
	jwtService, err := jwt.NewJWTService(cfg.JWTSecret, time.Duration(cfg.JWTTTLHours)*time.Hour)
	if err != nil {
		return nil, err
	}
	userService := user.NewUserService(userRepository, jwtService, mailer, cfg.AppURL)
	foodService := food.NewFoodService(foodRepository)
	inventoryService := inventory.NewInventoryService(inventoryRepository, foodService, clock)
	foodLogService := foodlog.NewFoodLogService(foodLogRepository, clock)
	resourceService := resource.NewResourceService(resourceRepository)
	dashboardService := dashboard.NewDashboardService(userService, inventoryService, foodLogService, resourceService)
	uploadService := upload.NewUploadService(uploadRepository, inventoryService, ai, deps.Storage, clock)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	foodHandler := handlers.NewFoodHandler(foodService, validator)
	inventoryHandler := handlers.NewInventoryHandler(inventoryService, validator)
	foodLogHandler := handlers.NewFoodLogHandler(foodLogService, validator)
	resourceHandler := handlers.NewResourceHandler(resourceService, validator)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	uploadHandler := handlers.NewUploadHandler(uploadService)
	aiHandler := handlers.NewAIHandler(ai, inventoryService, foodLogService, validator)

	// routes
	routesConfig := routes.Config{
		App:              app,
		UserHandler:      userHandler,
		FoodHandler:      foodHandler,
		InventoryHandler: inventoryHandler,
		FoodLogHandler:   foodLogHandler,
		ResourceHandler:  resourceHandler,
		DashboardHandler: dashboardHandler,
		UploadHandler:    uploadHandler,
		AIHandler:        aiHandler,
		Middleware:       middlewares,
		JWTService:       jwtService,
	}
	routesConfig.Setup()

	return &Application{
		App:          app,
		ExpiryDigest: alert.NewExpiryDigest(inventoryService, mailer),
	}, nil
}
