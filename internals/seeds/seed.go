package seeds

import (
	"errors"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"weonamission_backend/internals/configs"
	"weonamission_backend/internals/constants"
	churchModel "weonamission_backend/internals/features/churches/churches/model"
	userModel "weonamission_backend/internals/features/users/user/model"
	helper "weonamission_backend/internals/helpers"
)

// Run seeds the minimum a fresh install needs: the default church (the
// resolver's final fallback) and one superadmin account.
func Run(db *gorm.DB) error {
	if err := seedDefaultChurch(db); err != nil {
		return err
	}
	return seedSuperadmin(db)
}

func seedDefaultChurch(db *gorm.DB) error {
	defaultID := configs.DefaultChurchID
	if defaultID == "" {
		log.Println("[SEED] DEFAULT_CHURCH_ID not set, skipping default church")
		return nil
	}

	var existing churchModel.ChurchModel
	err := db.First(&existing, "church_id = ?", defaultID).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	name := configs.GetEnv("DEFAULT_CHURCH_NAME", "First Church")
	slug, serr := helper.EnsureUniqueSlug(db, helper.GenerateSlug(name), "churches", "church_slug")
	if serr != nil {
		return serr
	}

	church := churchModel.ChurchModel{
		ChurchName:     name,
		ChurchSlug:     slug,
		ChurchIsActive: true,
	}
	if err := db.Exec(
		`INSERT INTO churches (church_id, church_name, church_slug, church_is_active) VALUES (?, ?, ?, TRUE)`,
		defaultID, church.ChurchName, church.ChurchSlug,
	).Error; err != nil {
		return err
	}
	log.Printf("[SEED] default church %q created (%s)", name, slug)
	return nil
}

func seedSuperadmin(db *gorm.DB) error {
	email := configs.GetEnv("SEED_SUPERADMIN_EMAIL", "")
	password := configs.GetEnv("SEED_SUPERADMIN_PASSWORD", "")
	if email == "" || password == "" {
		log.Println("[SEED] superadmin credentials not set, skipping")
		return nil
	}

	var existing userModel.UserModel
	err := db.First(&existing, "email = ?", email).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashed, herr := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if herr != nil {
		return herr
	}
	admin := userModel.UserModel{
		UserName: configs.GetEnv("SEED_SUPERADMIN_NAME", "Mission Control"),
		Email:    email,
		Password: string(hashed),
		Role:     constants.RoleSuperadmin,
		IsActive: true,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}
	log.Printf("[SEED] superadmin %s created", email)
	return nil
}
