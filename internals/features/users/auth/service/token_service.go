// file: internals/features/users/auth/service/token_service.go
package service

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	authModel "weonamission_backend/internals/features/users/auth/model"
	authRepo "weonamission_backend/internals/features/users/auth/repository"
	helper "weonamission_backend/internals/helpers"
)

// shared validator for the auth services
var validate = validator.New()

// ========================== REFRESH TOKEN ==========================
// POST /api/auth/refresh-token — rotates the refresh session and issues a
// fresh access token.
func RefreshToken(db *gorm.DB, c *fiber.Ctx) error {
	refreshCookie := strings.TrimSpace(c.Cookies("refresh_token"))
	if refreshCookie == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token missing")
	}

	refreshSecret, err := getRefreshSecret()
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	tok, err := jwt.Parse(refreshCookie, func(t *jwt.Token) (any, error) {
		return []byte(refreshSecret), nil
	})
	if err != nil || !tok.Valid {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token invalid")
	}
	claims, _ := tok.Claims.(jwt.MapClaims)
	sub, _ := claims["sub"].(string)
	userID, err := uuid.Parse(sub)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token invalid")
	}

	// the hash must still exist (i.e. session not revoked)
	hash := computeRefreshHash(refreshCookie, refreshSecret)
	var exists bool
	if err := db.Raw(`SELECT EXISTS(SELECT 1 FROM refresh_tokens WHERE token_hash = ? AND revoked_at IS NULL)`, hash).
		Scan(&exists).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}
	if !exists {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token not recognized")
	}

	user, err := authRepo.FindUserByID(db, userID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User not found")
	}
	if !user.IsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Your account has been deactivated")
	}

	// ROTATE: drop the old session before issuing the next
	if err := db.Where("token_hash = ?", hash).Delete(&authModel.RefreshToken{}).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to rotate refresh token")
	}

	access, err := issueTokens(db, c, user)
	if err != nil {
		return err
	}
	return helper.JsonSuccess(c, "Token refreshed", fiber.Map{"access_token": access})
}
