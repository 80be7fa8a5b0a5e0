package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessRegister       = "registration successful"
	MessageSuccessLogin          = "login successful"
	MessageSuccessGetDetailUser  = "user retrieved successfully"
	MessageSuccessVerifyEmail    = "email verified successfully"
	MessageSuccessForgotPassword = "reset password link sent, please check your email"
	MessageSuccessResetPassword  = "password has been reset successfully"
	MessageSuccessMarkExisting   = "user marked as existing"
	MessageSuccessCountUsers     = "user count retrieved successfully"

	MessageFailedRegister       = "registration failed"
	MessageFailedLogin          = "login failed"
	MessageFailedGetDetailUser  = "failed to get user"
	MessageFailedVerifyEmail    = "email not found, please check your email address"
	MessageFailedForgotPassword = "failed to send reset password link"
	MessageFailedResetPassword  = "failed to reset password"
	MessageFailedMarkExisting   = "failed to mark user as existing"
	MessageFailedCountUsers     = "failed to count users"

	ErrEmailAlreadyExists  = errors.New("email already exists")
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrUserNotFound        = errors.New("user not found")
	ErrAccountInactive     = errors.New("account is inactive")
	ErrHashPasswordFailed  = errors.New("failed to hash password")
	ErrInvalidResetPurpose = errors.New("token is not a reset password token")
)

type (
	UserRegisterRequest struct {
		FirstName string `json:"first_name" validate:"required"`
		LastName  string `json:"last_name"`
		Email     string `json:"email" validate:"required,email"`
		Password  string `json:"password" validate:"required,min=6"`
	}

	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	VerifyEmailRequest struct {
		Email string `json:"email" validate:"required,email"`
	}

	ForgotPasswordRequest struct {
		Email string `json:"email" validate:"required,email"`
	}

	ResetPasswordRequest struct {
		Token       string `json:"token" validate:"required"`
		NewPassword string `json:"new_password" validate:"required,min=6"`
	}

	UserResponse struct {
		ID        string    `json:"id"`
		FirstName string    `json:"first_name"`
		LastName  string    `json:"last_name"`
		Email     string    `json:"email"`
		IsActive  bool      `json:"is_active"`
		IsNewUser bool      `json:"is_new_user"`
		CreatedAt time.Time `json:"created_at"`
		UpdatedAt time.Time `json:"updated_at"`
	}

	LoginResponse struct {
		Token string `json:"token"`
		Role  string `json:"role"`
		User  any    `json:"user"`
	}
)
