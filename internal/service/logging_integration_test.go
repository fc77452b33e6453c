//go:build integration

package service

import (
	"context"
	"testing"
	"time"

	"github.com/Adela-Cal/Misty-Manufacturing-sub002/internal/circuitbreaker"
	"github.com/Adela-Cal/Misty-Manufacturing-sub002/internal/domain/model"
	"github.com/Adela-Cal/Misty-Manufacturing-sub002/internal/repository"
	"github.com/Adela-Cal/Misty-Manufacturing-sub002/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupLoggingBackend(t *testing.T, dbName string) *repository.LogsRepository {
	t.Helper()
	ctx := context.Background()

	mongoContainer, err := testutil.SetupMongoDB(ctx)
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, mongoContainer.Cleanup(context.Background()))
	})

	db, err := repository.NewMongoDB(mongoContainer.URI, dbName)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close(context.Background())
	})

	require.NoError(t, db.SetLogsTTL(ctx, 30))
	return repository.NewLogsRepository(db)
}

func TestLoggingService_Integration(t *testing.T) {
	ctx := context.Background()
	loggingService := NewLoggingService(setupLoggingBackend(t, "slitting_audit_trail"))

	t.Run("calculation audit round-trips", func(t *testing.T) {
		entry := &model.LogEntry{
			Level:      "info",
			Message:    "Pattern calculation completed",
			RequestID:  "req-calc-7",
			Method:     "POST",
			Path:       "/api/calculate",
			StatusCode: 200,
			UserEmail:  "planner@misty",
			ActionType: "calculate",
			Fields: map[string]interface{}{
				"material_id":   "BOPP-30",
				"pattern_count": int32(7),
			},
		}

		require.NoError(t, loggingService.CreateLog(ctx, entry))
		assert.False(t, entry.ID.IsZero())

		got, err := loggingService.QueryLogs(ctx, model.LogQueryOptions{RequestID: "req-calc-7"})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "calculate", got[0].ActionType)
		assert.Equal(t, "BOPP-30", got[0].Fields["material_id"])
	})

	t.Run("bulk insert of request logs", func(t *testing.T) {
		entries := []*model.LogEntry{
			{Level: "info", Message: "GET /api/materials", RequestID: "req-list-1", Path: "/api/materials"},
			{Level: "error", Message: "POST /api/calculate failed", RequestID: "req-calc-8", Path: "/api/calculate"},
		}

		require.NoError(t, loggingService.CreateLogs(ctx, entries))

		errored, err := loggingService.QueryLogs(ctx, model.LogQueryOptions{Level: "error"})
		require.NoError(t, err)
		require.NotEmpty(t, errored)
		assert.Equal(t, "req-calc-8", errored[0].RequestID)
	})

	t.Run("counts respect filters", func(t *testing.T) {
		total, err := loggingService.CountLogs(ctx, model.LogQueryOptions{})
		require.NoError(t, err)
		assert.GreaterOrEqual(t, total, int64(3))

		infoOnly, err := loggingService.CountLogs(ctx, model.LogQueryOptions{Level: "info"})
		require.NoError(t, err)
		assert.Less(t, infoOnly, total)
	})

	t.Run("time-range query brackets recent entries", func(t *testing.T) {
		start := time.Now().Add(-time.Hour)
		end := time.Now().Add(time.Hour)

		entries, err := loggingService.QueryLogs(ctx, model.LogQueryOptions{
			StartTime: &start,
			EndTime:   &end,
		})
		require.NoError(t, err)
		assert.NotEmpty(t, entries)
	})
}

func TestLoggingServiceWithCircuitBreaker_Integration(t *testing.T) {
	ctx := context.Background()
	logsRepo := setupLoggingBackend(t, "slitting_audit_cb")

	wrapped := repository.NewLogsRepositoryWithCircuitBreaker(
		logsRepo,
		circuitbreaker.New(circuitbreaker.Config{
			FailureThreshold: 2,
			SuccessThreshold: 1,
			Timeout:          100 * time.Millisecond,
			Name:             "audit-logs",
		}),
	)
	loggingService := NewLoggingService(wrapped)

	entry := &model.LogEntry{
		Level:      "info",
		Message:    "Material catalog updated",
		ActionType: "update_material",
	}

	require.NoError(t, loggingService.CreateLog(ctx, entry))

	count, err := loggingService.CountLogs(ctx, model.LogQueryOptions{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
