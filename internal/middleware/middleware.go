package middleware

import (
	"FreshTrack-API/domain"
	"FreshTrack-API/internal/api/presenters"
	"FreshTrack-API/pkg/user"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

type (
	Middleware interface {
		CORSMiddleware() fiber.Handler
		UserContext(userService user.UserService) fiber.Handler
	}

	middleware struct{}
)

func NewMiddleware() Middleware {
	return &middleware{}
}

func (m *middleware) CORSMiddleware() fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	})
}

// UserContext attributes the request to the development user and stores its id
// for handlers. Stands in for token authentication until the account flow ships.
func (m *middleware) UserContext(userService user.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		resolved, err := userService.GetDefaultUser(c.Context())
		if err != nil {
			return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedResolveUser, err)
		}
		c.Locals("user_id", resolved.ID.String())
		return c.Next()
	}
}
