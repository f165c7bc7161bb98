package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	uModel "locallibrary_backend/internals/features/users/user/model"
)

/* =======================================================
   REQUEST DTOs
   ======================================================= */

// CreateUserRequest is used by staff to open an account.
type CreateUserRequest struct {
	UserName string `json:"user_name" validate:"required,min=3,max=50"`
	Email    string `json:"email"     validate:"required,email,max=255"`
	Password string `json:"password"  validate:"required,min=8"`
	Role     string `json:"role"      validate:"omitempty,oneof=user librarian admin"`
	IsActive *bool  `json:"is_active,omitempty"`
}

func (r *CreateUserRequest) Normalize() {
	r.UserName = strings.TrimSpace(r.UserName)
	r.Email = strings.TrimSpace(strings.ToLower(r.Email))
	r.Role = strings.TrimSpace(strings.ToLower(r.Role))
}

// ToModel leaves the password as given; the controller hashes it.
func (r *CreateUserRequest) ToModel() *uModel.UserModel {
	m := &uModel.UserModel{
		UserName: r.UserName,
		Email:    r.Email,
		Password: r.Password,
		Role:     r.Role,
		IsActive: true,
	}
	if r.IsActive != nil {
		m.IsActive = *r.IsActive
	}
	m.SetDefaultValues()
	return m
}

// UpdateUserRequest is a partial update; nil fields are left alone.
type UpdateUserRequest struct {
	Email    *string `json:"email,omitempty"     validate:"omitempty,email,max=255"`
	Password *string `json:"password,omitempty"  validate:"omitempty,min=8"`
	Role     *string `json:"role,omitempty"      validate:"omitempty,oneof=user librarian admin"`
	IsActive *bool   `json:"is_active,omitempty"`
}

func (r *UpdateUserRequest) Normalize() {
	if r.Email != nil {
		v := strings.TrimSpace(strings.ToLower(*r.Email))
		r.Email = &v
	}
	if r.Role != nil {
		v := strings.TrimSpace(strings.ToLower(*r.Role))
		r.Role = &v
	}
}

// ApplyToModel copies set fields; a new password must already be hashed.
func (r *UpdateUserRequest) ApplyToModel(m *uModel.UserModel, hashedPassword string) {
	if r.Email != nil {
		m.Email = *r.Email
	}
	if hashedPassword != "" {
		m.Password = hashedPassword
	}
	if r.Role != nil {
		m.Role = *r.Role
	}
	if r.IsActive != nil {
		m.IsActive = *r.IsActive
	}
}

/* =======================================================
   RESPONSE DTOs
   ======================================================= */

type UserResponse struct {
	ID          uuid.UUID `json:"id"`
	UserName    string    `json:"user_name"`
	Email       string    `json:"email"`
	Role        string    `json:"role"`
	IsActive    bool      `json:"is_active"`
	Permissions []string  `json:"permissions,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func FromModel(m uModel.UserModel) UserResponse {
	return UserResponse{
		ID:        m.ID,
		UserName:  m.UserName,
		Email:     m.Email,
		Role:      m.Role,
		IsActive:  m.IsActive,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func FromModels(list []uModel.UserModel) []UserResponse {
	out := make([]UserResponse, 0, len(list))
	for _, it := range list {
		out = append(out, FromModel(it))
	}
	return out
}
