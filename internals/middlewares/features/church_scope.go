package features

import (
	"github.com/gofiber/fiber/v2"

	helperAuth "weonamission_backend/internals/helpers/auth"
)

// UseChurchScope resolves the active church for the request and stores it in
// locals. Resolution never fails hard: unknown slugs fall back to the
// default church, so rendering is never blocked here.
func UseChurchScope() fiber.Handler {
	return func(c *fiber.Ctx) error {
		helperAuth.ResolveChurchContext(c)
		return c.Next()
	}
}

// RequireChurchScope refuses to continue when no church could be resolved at
// all (no selector, no profile, no default configured).
func RequireChurchScope() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, err := helperAuth.GetActiveChurchID(c); err != nil {
			return err
		}
		return c.Next()
	}
}
