package middlewares

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// DBMiddleware stores the db connection in the request context so helpers
// (slug lookup, tenant resolution) can reach it without import cycles.
func DBMiddleware(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals("DB", db)
		return c.Next()
	}
}
