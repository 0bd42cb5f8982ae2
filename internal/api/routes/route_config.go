package routes

import (
	"Food-Sustainability-Backend/internal/api/handlers"
	"Food-Sustainability-Backend/internal/middleware"
	"Food-Sustainability-Backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App              *fiber.App
	UserHandler      handlers.UserHandler
	FoodHandler      handlers.FoodHandler
	InventoryHandler handlers.InventoryHandler
	FoodLogHandler   handlers.FoodLogHandler
	ResourceHandler  handlers.ResourceHandler
	DashboardHandler handlers.DashboardHandler
	UploadHandler    handlers.UploadHandler
	AIHandler        handlers.AIHandler
	Middleware       middleware.Middleware
	JWTService       jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.GuestRoute()
	c.User()
	c.FoodItems()
	c.Inventory()
	c.FoodLog()
	c.Resources()
	c.Dashboard()
	c.Uploads()
	c.AI()
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Get("/profile", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
		user.Patch("/profile", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.UpdateProfile)
	}
}

func (c *Config) FoodItems() {
	foodItems := c.App.Group("/api/v1/food-items")
	foodItems.Post("", c.FoodHandler.AddFoodItem)
	foodItems.Get("", c.FoodHandler.GetFoodItems)
	foodItems.Get("/category", c.FoodHandler.GetFoodItemsByCategory)
	foodItems.Post("/seed", c.FoodHandler.SeedFoodItems)
	foodItems.Get("/:id", c.FoodHandler.GetFoodItemDetails)
	foodItems.Delete("/:id", c.FoodHandler.DeleteFoodItem)
}

func (c *Config) Inventory() {
	inventory := c.App.Group("/api/v1/inventory", c.Middleware.AuthMiddleware(c.JWTService))
	inventory.Post("", c.InventoryHandler.AddInventoryItem)
	inventory.Get("", c.InventoryHandler.GetMyInventory)
	inventory.Delete("/:id", c.InventoryHandler.RemoveInventoryItem)
}

func (c *Config) FoodLog() {
	foodLog := c.App.Group("/api/v1/food-log", c.Middleware.AuthMiddleware(c.JWTService))
	foodLog.Post("", c.FoodLogHandler.CreateFoodLog)
	foodLog.Get("", c.FoodLogHandler.GetMyFoodLogs)
	foodLog.Delete("/:id", c.FoodLogHandler.RemoveFoodLog)
}

func (c *Config) Resources() {
	resources := c.App.Group("/api/v1/resources")
	resources.Post("", c.ResourceHandler.CreateResource)
	resources.Get("", c.ResourceHandler.GetResources)
	resources.Get("/category", c.ResourceHandler.GetResourcesByCategory)
	resources.Post("/seed", c.ResourceHandler.SeedResources)
}

func (c *Config) Dashboard() {
	c.App.Get("/api/v1/dashboard", c.Middleware.AuthMiddleware(c.JWTService), c.DashboardHandler.GetDashboard)
}

func (c *Config) Uploads() {
	uploads := c.App.Group("/api/v1/uploads", c.Middleware.AuthMiddleware(c.JWTService))
	uploads.Post("/receipt", c.UploadHandler.UploadReceipt)
	uploads.Get("/receipt", c.UploadHandler.GetMyReceipts)
}

func (c *Config) AI() {
	ai := c.App.Group("/api/v1/ai", c.Middleware.AuthMiddleware(c.JWTService))
	ai.Post("/analyze-image", c.AIHandler.AnalyzeImage)
	ai.Post("/meal-plan", c.AIHandler.MealPlan)
	ai.Post("/insights", c.AIHandler.Insights)
	ai.Post("/chat", c.AIHandler.Chat)
}
