//go:build !integration

package app

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/guttosm/freight-service/config"
	"github.com/guttosm/freight-service/internal/domain/model"
	"github.com/guttosm/freight-service/internal/mocks"
)

func authConfig(enabled bool) config.AuthConfig {
	return config.AuthConfig{
		Enabled:          enabled,
		JWTSecretKey:     "access-secret",
		JWTRefreshSecret: "refresh-secret",
		AccessTokenTTL:   time.Minute,
		RefreshTokenTTL:  time.Hour,
	}
}

func TestInitializeAuth(t *testing.T) {
	t.Run("disabled", func(t *testing.T) {
		repo := new(mocks.MockUsersRepositoryInterface)
		assert.Nil(t, InitializeAuth(authConfig(false), repo))
		repo.AssertExpectations(t)
	})

	t.Run("enabled without user storage", func(t *testing.T) {
		assert.Nil(t, InitializeAuth(authConfig(true), nil))
	})

	t.Run("enabled without admin seed", func(t *testing.T) {
		repo := new(mocks.MockUsersRepositoryInterface)
		assert.NotNil(t, InitializeAuth(authConfig(true), repo))
		repo.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything)
	})

	t.Run("seeds missing admin", func(t *testing.T) {
		cfg := authConfig(true)
		cfg.AdminEmail = "ops@example.com"
		cfg.AdminPassword = "correct-horse"

		repo := new(mocks.MockUsersRepositoryInterface)
		repo.On("FindByEmail", mock.Anything, "ops@example.com").Return(nil, nil)
		repo.On("Create", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
			return u.Email == "ops@example.com" && u.Role == model.RoleAdmin && u.Password != "correct-horse"
		})).Return(nil)

		assert.NotNil(t, InitializeAuth(cfg, repo))
		repo.AssertExpectations(t)
	})

	t.Run("existing admin is left alone", func(t *testing.T) {
		cfg := authConfig(true)
		cfg.AdminEmail = "ops@example.com"
		cfg.AdminPassword = "correct-horse"

		repo := new(mocks.MockUsersRepositoryInterface)
		repo.On("FindByEmail", mock.Anything, "ops@example.com").
			Return(&model.User{Email: "ops@example.com", Role: model.RoleAdmin}, nil)

		assert.NotNil(t, InitializeAuth(cfg, repo))
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("seed failure keeps auth enabled", func(t *testing.T) {
		cfg := authConfig(true)
		cfg.AdminEmail = "ops@example.com"
		cfg.AdminPassword = "correct-horse"

		repo := new(mocks.MockUsersRepositoryInterface)
		repo.On("FindByEmail", mock.Anything, "ops@example.com").Return(nil, errors.New("connection refused"))

		assert.NotNil(t, InitializeAuth(cfg, repo))
		repo.AssertExpectations(t)
	})
}
