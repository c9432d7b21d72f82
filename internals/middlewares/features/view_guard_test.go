package features

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"

	"weonamission_backend/internals/constants"
	helperAuth "weonamission_backend/internals/helpers/auth"
)

func guardApp(requiredRole string, userID, role string, profileReady bool) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		if userID != "" {
			c.Locals("user_id", userID)
			c.Locals("userRole", role)
			c.Locals("profile_ready", profileReady)
		}
		return c.Next()
	})
	app.Get("/view", RequireView(requiredRole), func(c *fiber.Ctx) error {
		return c.SendString("protected")
	})
	return app
}

func TestRequireView_NoUserRedirectsToSignIn(t *testing.T) {
	app := guardApp(constants.RoleAdmin, "", "", false)
	resp, err := app.Test(httptest.NewRequest("GET", "/view", nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, helperAuth.PathSignIn, resp.Header.Get("Location"))
}

// User exists but the profile has not loaded: neither authorize nor redirect.
func TestRequireView_ProfilePendingHolds(t *testing.T) {
	app := guardApp(constants.RoleAdmin, "some-user", "", false)
	resp, err := app.Test(httptest.NewRequest("GET", "/view", nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusAccepted, resp.StatusCode)
	assert.Empty(t, resp.Header.Get("Location"), "no redirect while profile is pending")
}

func TestRequireView_RoleMismatchRedirects(t *testing.T) {
	// parent visiting the student view lands on /parent, not sign-in
	app := guardApp(constants.RoleStudent, "some-user", constants.RoleParent, true)
	resp, err := app.Test(httptest.NewRequest("GET", "/view", nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, helperAuth.PathParentView, resp.Header.Get("Location"))
}

func TestRequireView_AdminBlockedFromSuperadminView(t *testing.T) {
	app := guardApp(constants.RoleSuperadmin, "some-user", constants.RoleAdmin, true)
	resp, err := app.Test(httptest.NewRequest("GET", "/view", nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, helperAuth.PathSignIn, resp.Header.Get("Location"))
}

func TestRequireView_MatchAuthorizes(t *testing.T) {
	app := guardApp(constants.RoleAdmin, "some-user", constants.RoleAdmin, true)
	resp, err := app.Test(httptest.NewRequest("GET", "/view", nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
