//go:build integration

package app

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Adela-Cal/Misty-Manufacturing-sub002/config"
	"github.com/Adela-Cal/Misty-Manufacturing-sub002/internal/domain/model"
)

func TestInitializeDatabase_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	// Use shared container with unique database names for each subtest
	uri := getSharedContainerURI()

	seed := []model.Material{
		{MaterialID: "BOPP-30", MaterialName: "BOPP Clear 30um", MasterWidthMM: 1300, GSM: 27.4, PricePerTonneAUD: 3200, TotalLinearMeters: 8000},
		{MaterialID: "PET-12", MaterialName: "PET Film 12um", MasterWidthMM: 1600, GSM: 16.8, PricePerTonneAUD: 4100, TotalLinearMeters: 12000},
	}

	t.Run("initialize with enabled database", func(t *testing.T) {
		t.Parallel()
		dbName := sanitizeDBNameForApp(t.Name())
		cfg := config.DatabaseConfig{
			URI:                            uri,
			DatabaseName:                   dbName,
			LogsTTL:                        30 * 24 * time.Hour,
			Enabled:                        true,
			CircuitBreakerFailureThreshold: 5,
			CircuitBreakerSuccessThreshold: 2,
			CircuitBreakerTimeout:          30 * time.Second,
		}

		components := InitializeDatabase(cfg, seed)

		require.NotNil(t, components)
		assert.NotNil(t, components.MaterialRepo)
		assert.NotNil(t, components.LoggingService)
		assert.NotNil(t, components.MaterialCircuitBreaker)
		assert.NotNil(t, components.LogsCircuitBreaker)
	})

	t.Run("initialize with disabled database", func(t *testing.T) {
		t.Parallel()
		cfg := config.DatabaseConfig{
			Enabled: false,
		}

		components := InitializeDatabase(cfg, seed)
		assert.Nil(t, components)
	})

	t.Run("seeds missing catalog materials", func(t *testing.T) {
		t.Parallel()
		dbName := sanitizeDBNameForApp(t.Name())
		cfg := config.DatabaseConfig{
			URI:                            uri,
			DatabaseName:                   dbName,
			LogsTTL:                        30 * 24 * time.Hour,
			Enabled:                        true,
			CircuitBreakerFailureThreshold: 5,
			CircuitBreakerSuccessThreshold: 2,
			CircuitBreakerTimeout:          30 * time.Second,
		}

		components := InitializeDatabase(cfg, seed)
		require.NotNil(t, components)

		for _, m := range seed {
			got, err := components.MaterialRepo.GetByID(ctx, m.MaterialID)
			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, m.MaterialName, got.MaterialName)
			assert.Equal(t, m.MasterWidthMM, got.MasterWidthMM)
			assert.True(t, got.Active)
		}
	})

	t.Run("seeding never overwrites existing materials", func(t *testing.T) {
		t.Parallel()
		dbName := sanitizeDBNameForApp(t.Name())
		cfg := config.DatabaseConfig{
			URI:                            uri,
			DatabaseName:                   dbName,
			LogsTTL:                        30 * 24 * time.Hour,
			Enabled:                        true,
			CircuitBreakerFailureThreshold: 5,
			CircuitBreakerSuccessThreshold: 2,
			CircuitBreakerTimeout:          30 * time.Second,
		}

		components := InitializeDatabase(cfg, seed)
		require.NotNil(t, components)

		// Simulate an operator edit, then re-run initialization.
		edited := seed[0]
		edited.MasterWidthMM = 1250
		_, err := components.MaterialRepo.Update(ctx, edited.MaterialID, edited)
		require.NoError(t, err)

		again := InitializeDatabase(cfg, seed)
		require.NotNil(t, again)

		got, err := again.MaterialRepo.GetByID(ctx, edited.MaterialID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, 1250.0, got.MasterWidthMM)
	})

	t.Run("circuit breaker integration", func(t *testing.T) {
		t.Parallel()
		dbName := sanitizeDBNameForApp(t.Name())
		cfg := config.DatabaseConfig{
			URI:                            uri,
			DatabaseName:                   dbName,
			LogsTTL:                        30 * 24 * time.Hour,
			Enabled:                        true,
			CircuitBreakerFailureThreshold: 2,
			CircuitBreakerSuccessThreshold: 1,
			CircuitBreakerTimeout:          100 * time.Millisecond,
		}

		components := InitializeDatabase(cfg, seed)
		require.NotNil(t, components)

		stats := components.MaterialCircuitBreaker.GetStats()
		assert.Equal(t, "closed", stats.State)
		assert.True(t, stats.IsHealthy)

		logsStats := components.LogsCircuitBreaker.GetStats()
		assert.Equal(t, "closed", logsStats.State)
		assert.True(t, logsStats.IsHealthy)
	})
}
