package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"errors"
	"log"
	"strings"
	"time"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"weonamission_backend/internals/configs"
	"weonamission_backend/internals/constants"
	authModel "weonamission_backend/internals/features/users/auth/model"
	authRepo "weonamission_backend/internals/features/users/auth/repository"
	userDTO "weonamission_backend/internals/features/users/user/dto"
	userModel "weonamission_backend/internals/features/users/user/model"
	helper "weonamission_backend/internals/helpers"
	helperAuth "weonamission_backend/internals/helpers/auth"
)

/* ==========================
   Const & small helpers
========================== */

const (
	accessTTLDefault  = 24 * time.Hour
	refreshTTLDefault = 7 * 24 * time.Hour
)

func nowUTC() time.Time { return time.Now().UTC() }

func getJWTSecret() (string, error) {
	secret := strings.TrimSpace(configs.JWTSecret)
	if secret == "" {
		return "", fiber.NewError(fiber.StatusInternalServerError, "JWT_SECRET is not set")
	}
	return secret, nil
}

func getRefreshSecret() (string, error) {
	secret := strings.TrimSpace(configs.JWTRefreshSecret)
	if secret == "" {
		return "", fiber.NewError(fiber.StatusInternalServerError, "JWT_REFRESH_SECRET is not set")
	}
	return secret, nil
}

func computeRefreshHash(token, secret string) []byte {
	m := hmac.New(sha256.New, []byte(secret))
	_, _ = m.Write([]byte(token))
	return m.Sum(nil)
}

/* ==========================
   Token issuance
========================== */

func buildAccessClaims(u *userModel.UserModel, ttl time.Duration) jwt.MapClaims {
	claims := jwt.MapClaims{
		"id":        u.ID.String(),
		"user_name": u.UserName,
		"role":      u.Role,
		// profile_ready=false is only minted during the sign-up window
		// before the role/church assignment lands; the view guard holds on
		// it instead of misrouting.
		"profile_ready": u.Role != "",
		"exp":           nowUTC().Add(ttl).Unix(),
		"iat":           nowUTC().Unix(),
	}
	if u.ChurchID != nil {
		claims["church_id"] = u.ChurchID.String()
	}
	return claims
}

func issueTokens(db *gorm.DB, c *fiber.Ctx, u *userModel.UserModel) (string, error) {
	jwtSecret, err := getJWTSecret()
	if err != nil {
		return "", err
	}
	refreshSecret, err := getRefreshSecret()
	if err != nil {
		return "", err
	}

	access := jwt.NewWithClaims(jwt.SigningMethodHS256, buildAccessClaims(u, accessTTLDefault))
	accessStr, err := access.SignedString([]byte(jwtSecret))
	if err != nil {
		return "", fiber.NewError(fiber.StatusInternalServerError, "Failed to sign access token")
	}

	refresh := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": u.ID.String(),
		"exp": nowUTC().Add(refreshTTLDefault).Unix(),
	})
	refreshStr, err := refresh.SignedString([]byte(refreshSecret))
	if err != nil {
		return "", fiber.NewError(fiber.StatusInternalServerError, "Failed to sign refresh token")
	}

	ua := strings.TrimSpace(c.Get("User-Agent"))
	ip := c.IP()
	row := authModel.RefreshToken{
		UserID:    u.ID,
		TokenHash: computeRefreshHash(refreshStr, refreshSecret),
		ExpiresAt: nowUTC().Add(refreshTTLDefault),
		UserAgent: &ua,
		IP:        &ip,
	}
	if err := db.Create(&row).Error; err != nil {
		return "", fiber.NewError(fiber.StatusInternalServerError, "Failed to store refresh token")
	}

	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    refreshStr,
		Path:     "/api/auth",
		Expires:  nowUTC().Add(refreshTTLDefault),
		HTTPOnly: true,
		SameSite: "Lax",
	})

	return accessStr, nil
}

/* ==========================
   Register / Login
========================== */

// Register creates a self-serve account. New sign-ups default to the parent
// role, scoped to the church named by slug (or the resolved context).
func Register(db *gorm.DB, c *fiber.Ctx) error {
	var req userDTO.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	// church from slug first, then resolved request context
	var churchID uuid.UUID
	if slug := strings.TrimSpace(req.ChurchSlug); slug != "" {
		id, err := helperAuth.GetChurchIDBySlug(c, slug)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Unknown church")
		}
		churchID = id
	} else if id, err := helperAuth.GetActiveChurchID(c); err == nil {
		churchID = id
	}
	if churchID == uuid.Nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "A church must be selected to register")
	}

	if _, err := authRepo.FindUserByEmail(db, req.Email); err == nil {
		return helper.JsonError(c, fiber.StatusConflict, "Email already registered")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash password")
	}

	user := userModel.UserModel{
		UserName: strings.TrimSpace(req.UserName),
		Email:    strings.ToLower(strings.TrimSpace(req.Email)),
		Password: string(hashed),
		Role:     constants.RoleParent,
		ChurchID: &churchID,
		Phone:    strings.TrimSpace(req.Phone),
		IsActive: true,
	}
	if err := user.Validate(); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := db.Create(&user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create user")
	}

	access, err := issueTokens(db, c, &user)
	if err != nil {
		return err
	}
	return helper.JsonSuccessWithCode(c, fiber.StatusCreated, "Registered", fiber.Map{
		"access_token": access,
		"user":         userDTO.ToUserResponse(user),
	})
}

func Login(db *gorm.DB, c *fiber.Ctx) error {
	var req userDTO.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	user, err := authRepo.FindUserByEmail(db, req.Email)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid email or password")
	}
	if !user.IsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Your account has been deactivated")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid email or password")
	}

	access, err := issueTokens(db, c, user)
	if err != nil {
		return err
	}
	return helper.JsonSuccess(c, "Logged in", fiber.Map{
		"access_token": access,
		"user":         userDTO.ToUserResponse(*user),
	})
}

// LoginGoogle verifies a Google ID token and signs the matching account in,
// creating one on first sight when the church context is resolvable.
func LoginGoogle(db *gorm.DB, c *fiber.Ctx) error {
	var req userDTO.GoogleLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if strings.TrimSpace(req.IDToken) == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "id_token is required")
	}

	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(req.IDToken, []string{configs.GoogleClientID}); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid Google token")
	}
	claimSet, err := googleAuthIDTokenVerifier.Decode(req.IDToken)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid Google token")
	}

	user, err := authRepo.FindUserByGoogleID(db, claimSet.Sub)
	if err != nil && errors.Is(err, gorm.ErrRecordNotFound) {
		// link by email when the account already exists
		if byEmail, err2 := authRepo.FindUserByEmail(db, claimSet.Email); err2 == nil {
			byEmail.GoogleID = &claimSet.Sub
			if err := db.Save(byEmail).Error; err != nil {
				return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to link Google account")
			}
			user = byEmail
		} else {
			churchID, cerr := helperAuth.GetActiveChurchID(c)
			if cerr != nil {
				return helper.JsonError(c, fiber.StatusBadRequest, "A church must be selected to register")
			}
			created := userModel.UserModel{
				UserName: strings.TrimSpace(claimSet.Name),
				Email:    strings.ToLower(claimSet.Email),
				Password: uuid.NewString(), // unusable placeholder, Google-only login
				GoogleID: &claimSet.Sub,
				Role:     constants.RoleParent,
				ChurchID: &churchID,
				IsActive: true,
			}
			if err := db.Create(&created).Error; err != nil {
				return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create user")
			}
			user = &created
		}
	} else if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Lookup failed")
	}

	if !user.IsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Your account has been deactivated")
	}

	access, err := issueTokens(db, c, user)
	if err != nil {
		return err
	}
	return helper.JsonSuccess(c, "Logged in", fiber.Map{
		"access_token": access,
		"user":         userDTO.ToUserResponse(*user),
	})
}

/* ==========================
   Logout / Me
========================== */

func Logout(db *gorm.DB, c *fiber.Ctx) error {
	// blacklist the current access token until its natural expiry
	auth := strings.TrimSpace(c.Get("Authorization"))
	fields := strings.Fields(auth)
	if len(fields) == 2 && strings.EqualFold(fields[0], "Bearer") {
		entry := authModel.TokenBlacklist{
			Token:     fields[1],
			ExpiredAt: nowUTC().Add(accessTTLDefault),
		}
		if err := db.Create(&entry).Error; err != nil {
			log.Printf("[WARN] failed to blacklist token: %v", err)
		}
	}

	// drop the refresh session
	if refreshCookie := strings.TrimSpace(c.Cookies("refresh_token")); refreshCookie != "" {
		if secret, err := getRefreshSecret(); err == nil {
			_ = db.Where("token_hash = ?", computeRefreshHash(refreshCookie, secret)).
				Delete(&authModel.RefreshToken{}).Error
		}
	}

	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    "",
		Path:     "/api/auth",
		Expires:  nowUTC().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
	})

	return helper.JsonSuccess(c, "Logged out", nil)
}

func Me(db *gorm.DB, c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	user, err := authRepo.FindUserByID(db, userID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}
	return helper.JsonSuccess(c, "OK", userDTO.ToUserResponse(*user))
}
