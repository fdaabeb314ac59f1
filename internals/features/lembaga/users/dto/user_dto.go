package dto

import (
	"time"

	"github.com/google/uuid"

	m "lembagaku_backend/internals/features/lembaga/users/model"
)

/* =============== REQUESTS =============== */

type CreateUserRequest struct {
	UserName  string     `json:"user_name" validate:"required,min=3,max=50"`
	Email     string     `json:"email" validate:"required,email"`
	Password  string     `json:"password" validate:"required,min=8"`
	Role      string     `json:"role" validate:"required,oneof=user student admin owner"`
	LembagaID *uuid.UUID `json:"lembaga_id" validate:"omitempty"`
}

type UpdateUserRequest struct {
	UserName  *string    `json:"user_name" validate:"omitempty,min=3,max=50"`
	Role      *string    `json:"role" validate:"omitempty,oneof=user student admin owner"`
	LembagaID *uuid.UUID `json:"lembaga_id" validate:"omitempty"`
	IsActive  *bool      `json:"is_active" validate:"omitempty"`
}

func (r UpdateUserRequest) ApplyTo(mo *m.UserModel) {
	if r.UserName != nil {
		mo.UserName = *r.UserName
	}
	if r.Role != nil {
		mo.Role = *r.Role
	}
	if r.LembagaID != nil {
		mo.LembagaID = r.LembagaID
	}
	if r.IsActive != nil {
		mo.IsActive = *r.IsActive
	}
}

/* =============== RESPONSES =============== */

type UserResponse struct {
	ID        uuid.UUID  `json:"id"`
	UserName  string     `json:"user_name"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	LembagaID *uuid.UUID `json:"lembaga_id,omitempty"`
	IsActive  bool       `json:"is_active"`
	CreatedAt time.Time  `json:"created_at"`
}

func FromModel(x m.UserModel) UserResponse {
	return UserResponse{
		ID:        x.ID,
		UserName:  x.UserName,
		Email:     x.Email,
		Role:      x.Role,
		LembagaID: x.LembagaID,
		IsActive:  x.IsActive,
		CreatedAt: x.CreatedAt,
	}
}

func FromModels(list []m.UserModel) []UserResponse {
	out := make([]UserResponse, 0, len(list))
	for _, it := range list {
		out = append(out, FromModel(it))
	}
	return out
}
