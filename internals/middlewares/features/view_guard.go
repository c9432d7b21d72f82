package features

import (
	"github.com/gofiber/fiber/v2"

	helperAuth "weonamission_backend/internals/helpers/auth"
)

// RequireView gates a role-scoped view. Order of checks mirrors the session
// lifecycle: unauthenticated → sign-in; authenticated but profile not yet
// loaded → hold (202, no redirect) so a real admin is never misrouted before
// their role is known; otherwise apply the role table.
func RequireView(requiredRole string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := c.Locals("user_id").(string); !ok {
			return c.Redirect(helperAuth.PathSignIn, fiber.StatusFound)
		}

		if ready, ok := c.Locals("profile_ready").(bool); ok && !ready {
			return c.Status(fiber.StatusAccepted).JSON(fiber.Map{
				"status":  "pending",
				"message": "Profile is still loading, retry shortly",
			})
		}

		actual, _ := c.Locals("userRole").(string)
		decision := helperAuth.DecideAccess(requiredRole, actual)
		if !decision.Authorize {
			return c.Redirect(decision.RedirectTo, fiber.StatusFound)
		}
		return c.Next()
	}
}
