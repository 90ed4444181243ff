package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/e3mc/bschool-admin/internal/app/repositories"
	"github.com/e3mc/bschool-admin/internal/pkg/apperrors"
	"github.com/e3mc/bschool-admin/internal/pkg/auth"
	"github.com/e3mc/bschool-admin/internal/pkg/logger"
)

// AuthService defines admin account operations.
type AuthService interface {
	Register(ctx context.Context, username, password string) error
	Login(ctx context.Context, username, password string) (string, error)
}

type authServiceImpl struct {
	adminRepo  *repositories.AdminRepository
	jwtService *auth.JWTService
}

// NewAuthService creates a new auth service instance.
func NewAuthService(adminRepo *repositories.AdminRepository, jwtService *auth.JWTService) AuthService {
	return &authServiceImpl{
		adminRepo:  adminRepo,
		jwtService: jwtService,
	}
}

// Register creates a new admin account with a bcrypt-hashed password.
func (s *authServiceImpl) Register(ctx context.Context, username, password string) error {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if _, err := s.adminRepo.Create(ctx, username, hash); err != nil {
		return err
	}

	logger.Info().Str("username", username).Msg("Admin account registered")
	return nil
}

// Login verifies credentials and issues a bearer token. Unknown usernames
// and wrong passwords both map to ErrInvalidCredentials so the response
// does not reveal which part failed.
func (s *authServiceImpl) Login(ctx context.Context, username, password string) (string, error) {
	admin, err := s.adminRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", apperrors.ErrInvalidCredentials
		}
		return "", err
	}

	if !auth.CheckPassword(admin.PasswordHash, password) {
		return "", apperrors.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(admin.ID, admin.Username)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return token, nil
}
