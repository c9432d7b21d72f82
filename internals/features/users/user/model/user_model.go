package model

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"weonamission_backend/internals/constants"
)

// Validator instance
var validate = validator.New()

// UserModel represents the users table. ChurchID is the sole scoping key for
// all of the user's data visibility; it is nullable only for superadmin.
type UserModel struct {
	ID       uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserName string     `gorm:"size:50;not null" json:"user_name" validate:"required,min=3,max=50"`
	Email    string     `gorm:"size:255;unique;not null" json:"email" validate:"required,email"`
	Password string     `gorm:"not null" json:"-" validate:"required,min=8"`
	GoogleID *string    `gorm:"size:255;unique" json:"google_id,omitempty"`
	Role     string     `gorm:"type:varchar(20);not null;default:'parent'" json:"role" validate:"omitempty,oneof=parent student admin superadmin"`
	ChurchID *uuid.UUID `gorm:"type:uuid;index" json:"church_id,omitempty"`
	Phone    string     `gorm:"size:30" json:"phone"`

	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (UserModel) TableName() string {
	return "users"
}

func (u *UserModel) SetDefaultValues() {
	if u.Role == "" {
		u.Role = constants.RoleParent
	}
}

// Validate checks the record against the rules above. Superadmin is the only
// role allowed to have no church.
func (u *UserModel) Validate() error {
	u.SetDefaultValues()

	if err := validate.Struct(u); err != nil {
		return err
	}
	if u.Role != constants.RoleSuperadmin && u.ChurchID == nil {
		return errors.New("church_id is required for non-superadmin users")
	}
	return nil
}
