//go:build integration

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestMongoDB_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	db, err := NewMongoDB(getSharedContainerURI(), sanitizeDBName(t.Name()))
	require.NoError(t, err)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()

	t.Run("collections wired", func(t *testing.T) {
		require.NotNil(t, db.Client)
		require.NotNil(t, db.Database)
		assert.NotNil(t, db.Materials)
		assert.NotNil(t, db.Logs)
	})

	t.Run("ping and health check", func(t *testing.T) {
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()

		assert.NoError(t, db.Client.Ping(pingCtx, nil))
		assert.NoError(t, db.HealthCheck(ctx))
	})

	t.Run("material_id index is unique", func(t *testing.T) {
		_, err := db.Materials.InsertOne(ctx, bson.M{"material_id": "BOPP-30", "name": "BOPP 30mic"})
		require.NoError(t, err)

		_, err = db.Materials.InsertOne(ctx, bson.M{"material_id": "BOPP-30", "name": "duplicate"})
		assert.Error(t, err, "duplicate material_id must be rejected by the index")
	})

	t.Run("logs TTL can be set and retuned", func(t *testing.T) {
		require.NoError(t, db.SetLogsTTL(ctx, 30))

		// Changing the retention drops and recreates the index.
		assert.NoError(t, db.SetLogsTTL(ctx, 60))
	})
}
