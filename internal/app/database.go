// Package app provides database initialization and setup.
package app

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Adela-Cal/Misty-Manufacturing-sub002/config"
	"github.com/Adela-Cal/Misty-Manufacturing-sub002/internal/circuitbreaker"
	"github.com/Adela-Cal/Misty-Manufacturing-sub002/internal/domain/model"
	"github.com/Adela-Cal/Misty-Manufacturing-sub002/internal/repository"
	"github.com/Adela-Cal/Misty-Manufacturing-sub002/internal/service"
)

// DatabaseComponents holds database-related components.
type DatabaseComponents struct {
	Mongo                  *repository.MongoDB
	MaterialRepo           repository.MaterialRepositoryInterface
	LoggingService         service.LoggingService
	MaterialCircuitBreaker *circuitbreaker.CircuitBreaker
	LogsCircuitBreaker     *circuitbreaker.CircuitBreaker
}

// InitializeDatabase initializes MongoDB connection and creates required repositories and services.
// Returns nil if database is disabled or connection fails; the caller then
// runs against the in-memory catalog alone.
func InitializeDatabase(cfg config.DatabaseConfig, seed []model.Material) *DatabaseComponents {
	if !cfg.Enabled {
		return nil
	}

	db, err := repository.NewMongoDB(cfg.URI, cfg.DatabaseName)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to MongoDB - continuing without database")
		return nil
	}

	log.Info().Msg("Connected to MongoDB")

	// Set TTL for logs
	ttlDays := int(cfg.LogsTTL.Hours() / 24)
	if err := db.SetLogsTTL(context.Background(), ttlDays); err != nil {
		log.Warn().Err(err).Msg("Failed to set logs TTL index (may already exist)")
	}

	// Initialize circuit breakers
	materialCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             "mongodb-materials",
	})

	logsCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             "mongodb-logs",
	})

	// Initialize repositories
	logsRepo := repository.NewLogsRepository(db)
	logsRepoWithCB := repository.NewLogsRepositoryWithCircuitBreaker(logsRepo, logsCB)
	loggingService := service.NewLoggingService(logsRepoWithCB)

	// Catalog reads fall back to the seeded in-memory catalog while the
	// circuit is open; writes surface the error to the caller.
	materialRepo := repository.NewMaterialRepository(db)
	fallback := repository.NewInMemoryMaterialRepository(seed)
	materialRepoWithCB := repository.NewMaterialRepositoryWithCircuitBreaker(materialRepo, materialCB, fallback)

	// Seed the catalog with any configured materials that are missing
	if err := seedMaterialCatalog(materialRepoWithCB, seed); err != nil {
		log.Warn().Err(err).Msg("Failed to seed material catalog")
	}

	return &DatabaseComponents{
		Mongo:                  db,
		MaterialRepo:           materialRepoWithCB,
		LoggingService:         loggingService,
		MaterialCircuitBreaker: materialCB,
		LogsCircuitBreaker:     logsCB,
	}
}

// seedMaterialCatalog inserts seed materials that are not yet in the catalog.
// Existing materials are never overwritten.
func seedMaterialCatalog(repo repository.MaterialRepositoryInterface, seed []model.Material) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	for _, m := range seed {
		existing, err := repo.GetByID(ctx, m.MaterialID)
		if err != nil {
			return err
		}
		if existing != nil {
			continue
		}

		m.Active = true
		if _, err := repo.Create(ctx, m); err != nil {
			return err
		}
		log.Info().Str("material_id", m.MaterialID).Msg("Seeded catalog material")
	}

	return nil
}
