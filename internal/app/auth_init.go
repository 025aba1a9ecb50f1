// Package app provides authentication initialization.
package app

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/guttosm/freight-service/config"
	"github.com/guttosm/freight-service/internal/repository"
	"github.com/guttosm/freight-service/internal/service"
)

// InitializeAuth builds the JWT auth service when auth is enabled and user storage is
// available, and seeds the admin account. A nil result leaves the API on API keys.
func InitializeAuth(cfg config.AuthConfig, users repository.UsersRepositoryInterface) service.AuthService {
	if !cfg.Enabled {
		return nil
	}
	if users == nil {
		log.Warn().Msg("AUTH_ENABLED requires MongoDB; falling back to API key authentication")
		return nil
	}

	tokens := service.NewTokenService(service.NewTokenConfigFromAuthConfig(cfg))
	authService := service.NewAuthService(users, tokens)

	if cfg.AdminEmail != "" && cfg.AdminPassword != "" {
		if err := seedAdmin(authService, cfg.AdminEmail, cfg.AdminPassword); err != nil {
			log.Warn().Err(err).Str("email", cfg.AdminEmail).Msg("Failed to create admin account")
		}
	}
	return authService
}

func seedAdmin(authService service.AuthService, email, password string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return authService.EnsureAdmin(ctx, email, password)
}
