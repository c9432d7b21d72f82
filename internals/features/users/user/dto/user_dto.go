package dto

import (
	"time"

	"github.com/google/uuid"

	"weonamission_backend/internals/features/users/user/model"
)

type RegisterRequest struct {
	UserName   string `json:"user_name" validate:"required,min=3,max=50"`
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,min=8"`
	Phone      string `json:"phone" validate:"omitempty,max=30"`
	ChurchSlug string `json:"church_slug" validate:"omitempty,max=100"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type GoogleLoginRequest struct {
	IDToken string `json:"id_token" validate:"required"`
}

// UpdateRoleRequest is admin/superadmin-only; a user can never change their
// own role.
type UpdateRoleRequest struct {
	Role     string     `json:"role" validate:"required,oneof=parent student admin superadmin"`
	ChurchID *uuid.UUID `json:"church_id,omitempty"`
}

type UserResponse struct {
	ID        string     `json:"id"`
	UserName  string     `json:"user_name"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	ChurchID  *uuid.UUID `json:"church_id,omitempty"`
	Phone     string     `json:"phone"`
	IsActive  bool       `json:"is_active"`
	CreatedAt time.Time  `json:"created_at"`
}

func ToUserResponse(u model.UserModel) UserResponse {
	return UserResponse{
		ID:        u.ID.String(),
		UserName:  u.UserName,
		Email:     u.Email,
		Role:      u.Role,
		ChurchID:  u.ChurchID,
		Phone:     u.Phone,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
	}
}

func ToUserResponses(us []model.UserModel) []UserResponse {
	out := make([]UserResponse, 0, len(us))
	for _, u := range us {
		out = append(out, ToUserResponse(u))
	}
	return out
}
