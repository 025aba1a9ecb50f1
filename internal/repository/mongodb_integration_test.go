//go:build integration

package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestMongoDB_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	db := setupTestDB(t)

	t.Run("collections are wired", func(t *testing.T) {
		assert.NotNil(t, db.Tariffs)
		assert.NotNil(t, db.Parts)
		assert.NotNil(t, db.Logs)
		assert.NotNil(t, db.Users)
	})

	t.Run("health check", func(t *testing.T) {
		assert.NoError(t, db.HealthCheck(ctx))
	})

	t.Run("set logs TTL is repeatable", func(t *testing.T) {
		require.NoError(t, db.SetLogsTTL(ctx, 30))
		require.NoError(t, db.SetLogsTTL(ctx, 7))
	})

	t.Run("zero TTL is a no-op", func(t *testing.T) {
		assert.NoError(t, db.SetLogsTTL(ctx, 0))
	})

	t.Run("users email index is unique", func(t *testing.T) {
		cursor, err := db.Users.Indexes().List(ctx)
		require.NoError(t, err)
		var indexes []bson.M
		require.NoError(t, cursor.All(ctx, &indexes))

		found := false
		for _, idx := range indexes {
			if idx["name"] == "email_1" {
				found = idx["unique"] == true
			}
		}
		assert.True(t, found)
	})
}

func TestNewMongoDB_InvalidURI(t *testing.T) {
	_, err := NewMongoDB("not-a-mongo-uri", "freight_test")
	assert.Error(t, err)
}
