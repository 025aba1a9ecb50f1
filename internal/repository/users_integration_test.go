//go:build integration

package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/guttosm/freight-service/internal/domain/model"
)

func TestUsersRepository_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := NewUsersRepository(setupTestDB(t))

	user := &model.User{Email: "ops@example.com", Password: "hash", Name: "Ops", Role: model.RoleOperator, Active: true}

	t.Run("create", func(t *testing.T) {
		require.NoError(t, repo.Create(ctx, user))
		assert.False(t, user.ID.IsZero())
		assert.False(t, user.CreatedAt.IsZero())
	})

	t.Run("duplicate email", func(t *testing.T) {
		err := repo.Create(ctx, &model.User{Email: "ops@example.com", Password: "other"})
		assert.ErrorIs(t, err, ErrDuplicateUser)
	})

	t.Run("find by email", func(t *testing.T) {
		found, err := repo.FindByEmail(ctx, "ops@example.com")
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, user.ID, found.ID)
		assert.Equal(t, model.RoleOperator, found.Role)
	})

	t.Run("find by id", func(t *testing.T) {
		found, err := repo.FindByID(ctx, user.ID)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, "ops@example.com", found.Email)
	})

	t.Run("missing user is nil", func(t *testing.T) {
		found, err := repo.FindByEmail(ctx, "nobody@example.com")
		require.NoError(t, err)
		assert.Nil(t, found)

		found, err = repo.FindByID(ctx, primitive.NewObjectID())
		require.NoError(t, err)
		assert.Nil(t, found)
	})
}
