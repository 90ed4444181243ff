package seed

import (
	"context"
	"errors"

	"github.com/e3mc/bschool-admin/internal/app/repositories"
	"github.com/e3mc/bschool-admin/internal/config"
	"github.com/e3mc/bschool-admin/internal/pkg/apperrors"
	"github.com/e3mc/bschool-admin/internal/pkg/auth"
	"github.com/e3mc/bschool-admin/internal/pkg/logger"
)

// DefaultAdmin creates the configured admin account if it does not exist
// yet. Without configured credentials nothing is seeded; the register
// endpoint is the fallback.
func DefaultAdmin(ctx context.Context, cfg *config.Config, adminRepo *repositories.AdminRepository) error {
	if cfg.Admin.Username == "" || cfg.Admin.Password == "" {
		logger.Debug().Msg("No default admin configured, skipping seed")
		return nil
	}

	hash, err := auth.HashPassword(cfg.Admin.Password)
	if err != nil {
		return err
	}

	if _, err := adminRepo.Create(ctx, cfg.Admin.Username, hash); err != nil {
		if errors.Is(err, apperrors.ErrAdminExists) {
			logger.Debug().Str("username", cfg.Admin.Username).Msg("Default admin already present")
			return nil
		}
		return err
	}

	logger.Info().Str("username", cfg.Admin.Username).Msg("Default admin account seeded")
	return nil
}
