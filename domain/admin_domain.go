package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetAdmin   = "admin retrieved successfully"
	MessageSuccessCountAdmin = "admin count retrieved successfully"

	MessageFailedGetAdmin   = "failed to get admin"
	MessageFailedCountAdmin = "failed to count admins"

	ErrAdminNotFound = errors.New("admin not found")
)

type (
	AdminRegisterRequest struct {
		Name     string `json:"name" validate:"required"`
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=6"`
	}

	AdminResponse struct {
		ID        string     `json:"id"`
		Name      string     `json:"name"`
		Email     string     `json:"email"`
		Role      string     `json:"role"`
		IsActive  bool       `json:"is_active"`
		LastLogin *time.Time `json:"last_login,omitempty"`
		CreatedAt time.Time  `json:"created_at"`
	}
)
