// Package seed provisions the default admin credential at startup.
package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/captaintojo/srms/internal/app/models"
	appRepos "github.com/captaintojo/srms/internal/app/repositories"
	"github.com/captaintojo/srms/internal/config"
	"github.com/captaintojo/srms/internal/pkg/auth"
)

// CreateDefaultAdmin inserts the bootstrap admin user if it doesn't exist
// yet. The check-then-insert runs once per process start, so across the
// system's lifetime the store is mutated at most once; later calls are
// no-ops. The configured default password must be rotated before production
// use.
func CreateDefaultAdmin(ctx context.Context, dbPool *pgxpool.Pool, cfg *config.Config, lgr zerolog.Logger) error {
	userRepo := appRepos.NewUserRepository(dbPool)

	exists, err := userRepo.UsernameExists(ctx, cfg.Seed.AdminUsername)
	if err != nil {
		return fmt.Errorf("failed to check for existing admin: %w", err)
	}
	if exists {
		lgr.Debug().Str("username", cfg.Seed.AdminUsername).Msg("Admin user already present, skipping seed")
		return nil
	}

	hashed, err := auth.HashPassword(cfg.Seed.AdminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin := &appModels.User{
		Username: cfg.Seed.AdminUsername,
		Password: hashed,
		Role:     appModels.RoleAdmin,
	}

	if err := userRepo.Create(ctx, admin); err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	lgr.Info().Str("username", admin.Username).Msg("Default admin user created")
	return nil
}
