package routes

import (
	"FreshTrack-API/internal/api/handlers"
	"FreshTrack-API/internal/middleware"
	"FreshTrack-API/pkg/user"
	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Config struct {
	App                 *fiber.App
	GroceryHandler      handlers.GroceryHandler
	PredictionHandler   handlers.PredictionHandler
	NotificationHandler handlers.NotificationHandler
	Middleware          middleware.Middleware
	UserService         user.UserService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Groceries()
	c.Predictions()
	c.Notifications()
	c.GuestRoute()
}

func (c *Config) Groceries() {
	groceries := c.App.Group("/api/v1/groceries", c.Middleware.UserContext(c.UserService))

	// static routes before :id
	groceries.Get("/expiring", c.GroceryHandler.GetExpiringItems)
	groceries.Post("/sync", c.GroceryHandler.SyncGroceries)

	// Basic CRUD operations
	groceries.Post("", c.GroceryHandler.AddGroceryItem)
	groceries.Get("", c.GroceryHandler.GetGroceryItems)
	groceries.Get("/:id", c.GroceryHandler.GetGroceryItemDetails)
	groceries.Patch("/:id", c.GroceryHandler.UpdateGroceryItem)
	groceries.Delete("/:id", c.GroceryHandler.DeleteGroceryItem)
	groceries.Post("/:id/consume", c.GroceryHandler.ConsumeGroceryItem)
}

func (c *Config) Predictions() {
	predictions := c.App.Group("/api/v1/predictions")
	predictions.Post("", c.PredictionHandler.PredictExpiration)
}

func (c *Config) Notifications() {
	notifications := c.App.Group("/api/v1/notifications")
	notifications.Post("/digest", c.NotificationHandler.SendExpiryDigest)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong, it works"})
	})
	c.App.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "healthy"})
	})
	c.App.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
}
