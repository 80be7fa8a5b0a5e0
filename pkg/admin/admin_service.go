package admin

import (
	"career-bridge/domain"
	"career-bridge/entities"
	"career-bridge/internal/utils"
	"career-bridge/internal/utils/mailing"
	"career-bridge/pkg/jwt"
	"career-bridge/pkg/user"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

const resetTokenTTL = 15 * time.Minute

type (
	AdminService interface {
		Register(ctx context.Context, req domain.AdminRegisterRequest) (*domain.AdminResponse, error)
		Login(ctx context.Context, req domain.LoginRequest) (*domain.LoginResponse, error)
		GetByID(ctx context.Context, id string) (*domain.AdminResponse, error)
		VerifyEmail(ctx context.Context, req domain.VerifyEmailRequest) error
		ForgotPassword(ctx context.Context, req domain.ForgotPasswordRequest) error
		ResetPassword(ctx context.Context, req domain.ResetPasswordRequest) error
		CountAdmins(ctx context.Context) (int64, error)
	}

	adminService struct {
		adminRepository AdminRepository
		jwtService      jwt.JWTService
		mailer          mailing.Mailer
		log             *zerolog.Logger
	}
)

func NewAdminService(adminRepository AdminRepository, jwtService jwt.JWTService, mailer mailing.Mailer, log *zerolog.Logger) AdminService {
	return &adminService{
		adminRepository: adminRepository,
		jwtService:      jwtService,
		mailer:          mailer,
		log:             log,
	}
}

func (s *adminService) Register(ctx context.Context, req domain.AdminRegisterRequest) (*domain.AdminResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	exists, err := s.adminRepository.EmailExists(ctx, email)
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

	admin := &entities.Admin{
		ID:       uuid.New(),
		Name:     strings.TrimSpace(req.Name),
		Email:    email,
		Password: hashed,
		Role:     domain.RoleAdmin,
		IsActive: true,
		Timestamp: entities.Timestamp{
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
	}
	if err := s.adminRepository.Create(ctx, admin); err != nil {
		return nil, err
	}

	s.log.Info().Str("admin_id", admin.ID.String()).Msg("admin registered")
	return toAdminResponse(admin), nil
}

func (s *adminService) Login(ctx context.Context, req domain.LoginRequest) (*domain.LoginResponse, error) {
	admin, err := s.adminRepository.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !admin.IsActive || !utils.CheckPassword(req.Password, admin.Password) {
		return nil, domain.ErrInvalidCredentials
	}

	now := time.Now()
	if err := s.adminRepository.UpdateLastLogin(ctx, admin.ID, now); err != nil {
		return nil, err
	}
	admin.LastLogin = &now

	return &domain.LoginResponse{
		Token: s.jwtService.GenerateTokenUser(admin.ID.String(), domain.RoleAdmin),
		Role:  domain.RoleAdmin,
		User:  toAdminResponse(admin),
	}, nil
}

func (s *adminService) GetByID(ctx context.Context, id string) (*domain.AdminResponse, error) {
	adminUUID, err := uuid.Parse(id)
	if err != nil {
		return nil, domain.ErrAdminNotFound
	}

	admin, err := s.adminRepository.GetByID(ctx, adminUUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAdminNotFound
		}
		return nil, err
	}
	return toAdminResponse(admin), nil
}

func (s *adminService) VerifyEmail(ctx context.Context, req domain.VerifyEmailRequest) error {
	exists, err := s.adminRepository.EmailExists(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrAdminNotFound
	}
	return nil
}

func (s *adminService) ForgotPassword(ctx context.Context, req domain.ForgotPasswordRequest) error {
	admin, err := s.adminRepository.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrAdminNotFound
		}
		return err
	}

	token, err := s.jwtService.GenerateTokenForgetPassword(map[string]any{
		"email":   admin.Email,
		"role":    domain.RoleAdmin,
		"purpose": jwt.PurposeResetPassword,
	}, resetTokenTTL)
	if err != nil {
		return err
	}

	link := user.ResetPasswordLink(utils.GetConfig("APP_URL")+"/admin", token)
	if err := s.mailer.SendMail(admin.Email, "Reset your CareerBridge admin password", mailing.ResetPasswordBody(admin.Name, link)); err != nil {
		s.log.Error().Err(err).Str("admin_id", admin.ID.String()).Msg("failed to send reset password mail")
		return fmt.Errorf("send reset password mail: %w", err)
	}
	return nil
}

func (s *adminService) ResetPassword(ctx context.Context, req domain.ResetPasswordRequest) error {
	claims, err := s.jwtService.ValidateTokenForgetPassword(req.Token)
	if err != nil {
		return err
	}
	if claims["role"] != domain.RoleAdmin {
		return domain.ErrInvalidResetPurpose
	}
	email, _ := claims["email"].(string)

	admin, err := s.adminRepository.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrAdminNotFound
		}
		return err
	}

	hashed, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return domain.ErrHashPasswordFailed
	}
	return s.adminRepository.UpdatePassword(ctx, admin.ID, hashed)
}

func (s *adminService) CountAdmins(ctx context.Context) (int64, error) {
	return s.adminRepository.Count(ctx)
}

func toAdminResponse(admin *entities.Admin) *domain.AdminResponse {
	return &domain.AdminResponse{
		ID:        admin.ID.String(),
		Name:      admin.Name,
		Email:     admin.Email,
		Role:      admin.Role,
		IsActive:  admin.IsActive,
		LastLogin: admin.LastLogin,
		CreatedAt: admin.CreatedAt,
	}
}
