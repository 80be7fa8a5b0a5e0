package user

import (
	"career-bridge/domain"
	"career-bridge/entities"
	"career-bridge/internal/utils"
	"career-bridge/internal/utils/mailing"
	"career-bridge/pkg/jwt"
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

const resetTokenTTL = 15 * time.Minute

type (
	UserService interface {
		Register(ctx context.Context, req domain.UserRegisterRequest) (*domain.UserResponse, error)
		Login(ctx context.Context, req domain.LoginRequest) (*domain.LoginResponse, error)
		GetMe(ctx context.Context, userID string) (*domain.UserResponse, error)
		MarkExistingUser(ctx context.Context, userID string) error
		VerifyEmail(ctx context.Context, req domain.VerifyEmailRequest) error
		ForgotPassword(ctx context.Context, req domain.ForgotPasswordRequest) error
		ResetPassword(ctx context.Context, req domain.ResetPasswordRequest) error
		CountUsers(ctx context.Context) (int64, error)
	}

	userService struct {
		userRepository UserRepository
		jwtService     jwt.JWTService
		mailer         mailing.Mailer
		log            *zerolog.Logger
	}
)

func NewUserService(userRepository UserRepository, jwtService jwt.JWTService, mailer mailing.Mailer, log *zerolog.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		jwtService:     jwtService,
		mailer:         mailer,
		log:            log,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *userService) Register(ctx context.Context, req domain.UserRegisterRequest) (*domain.UserResponse, error) {
	email := normalizeEmail(req.Email)
	exists, err := s.userRepository.EmailExists(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrEmailAlreadyExists
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, domain.ErrHashPasswordFailed
	}

	user := &entities.User{
		ID:        uuid.New(),
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
		Email:     email,
		Password:  hashed,
		IsActive:  true,
		IsNewUser: true,
		Timestamp: entities.Timestamp{
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
	}
	if err := s.userRepository.Create(ctx, user); err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", user.ID.String()).Msg("user registered")
	return toUserResponse(user), nil
}

func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (*domain.LoginResponse, error) {
	user, err := s.userRepository.GetByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !user.IsActive || !utils.CheckPassword(req.Password, user.Password) {
		return nil, domain.ErrInvalidCredentials
	}

	return &domain.LoginResponse{
		Token: s.jwtService.GenerateTokenUser(user.ID.String(), domain.RoleUser),
		Role:  domain.RoleUser,
		User:  toUserResponse(user),
	}, nil
}

func (s *userService) GetMe(ctx context.Context, userID string) (*domain.UserResponse, error) {
	user, err := s.find(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

func (s *userService) MarkExistingUser(ctx context.Context, userID string) error {
	user, err := s.find(ctx, userID)
	if err != nil {
		return err
	}
	return s.userRepository.MarkExisting(ctx, user.ID)
}

func (s *userService) VerifyEmail(ctx context.Context, req domain.VerifyEmailRequest) error {
	exists, err := s.userRepository.EmailExists(ctx, normalizeEmail(req.Email))
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrUserNotFound
	}
	return nil
}

func (s *userService) ForgotPassword(ctx context.Context, req domain.ForgotPasswordRequest) error {
	user, err := s.userRepository.GetByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	token, err := s.jwtService.GenerateTokenForgetPassword(map[string]any{
		"email":   user.Email,
		"role":    domain.RoleUser,
		"purpose": jwt.PurposeResetPassword,
	}, resetTokenTTL)
	if err != nil {
		return err
	}

	link := ResetPasswordLink(utils.GetConfig("APP_URL"), token)
	body := mailing.ResetPasswordBody(user.FirstName, link)
	if err := s.mailer.SendMail(user.Email, "Reset your CareerBridge password", body); err != nil {
		s.log.Error().Err(err).Str("user_id", user.ID.String()).Msg("failed to send reset password mail")
		return fmt.Errorf("send reset password mail: %w", err)
	}
	return nil
}

func (s *userService) ResetPassword(ctx context.Context, req domain.ResetPasswordRequest) error {
	claims, err := s.jwtService.ValidateTokenForgetPassword(req.Token)
	if err != nil {
		return err
	}
	if claims["role"] != domain.RoleUser {
		return domain.ErrInvalidResetPurpose
	}
	email, _ := claims["email"].(string)

	user, err := s.userRepository.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	hashed, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return domain.ErrHashPasswordFailed
	}
	if err := s.userRepository.UpdatePassword(ctx, user.ID, hashed); err != nil {
		return err
	}

	s.log.Info().Str("user_id", user.ID.String()).Msg("user password reset")
	return nil
}

func (s *userService) CountUsers(ctx context.Context) (int64, error) {
	return s.userRepository.Count(ctx)
}

func (s *userService) find(ctx context.Context, userID string) (*entities.User, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	user, err := s.userRepository.GetByID(ctx, userUUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// ResetPasswordLink builds the frontend URL carrying a reset token.
func ResetPasswordLink(appURL string, token string) string {
	return strings.TrimRight(appURL, "/") + "/reset-password?token=" + url.QueryEscape(token)
}

func toUserResponse(user *entities.User) *domain.UserResponse {
	return &domain.UserResponse{
		ID:        user.ID.String(),
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		IsActive:  user.IsActive,
		IsNewUser: user.IsNewUser,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}
