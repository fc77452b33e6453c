// Package app provides router configuration.
package app

import (
	"context"
	"time"

	"github.com/Adela-Cal/Misty-Manufacturing-sub002/config"
	"github.com/Adela-Cal/Misty-Manufacturing-sub002/internal/domain/model"
	"github.com/Adela-Cal/Misty-Manufacturing-sub002/internal/http"
	"github.com/Adela-Cal/Misty-Manufacturing-sub002/internal/middleware"
	"github.com/Adela-Cal/Misty-Manufacturing-sub002/internal/repository"
	"github.com/Adela-Cal/Misty-Manufacturing-sub002/internal/service"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	Handler       *http.Handler
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
}

// InitializeRouter initializes HTTP handlers and router configuration.
func InitializeRouter(
	calculator service.PermutationCalculator,
	dbComponents *DatabaseComponents,
	seed []model.Material,
	cfg config.Config,
) *RouterComponents {
	// Material catalog: MongoDB behind a circuit breaker when enabled,
	// otherwise the seeded in-memory catalog.
	var materialRepo repository.MaterialRepositoryInterface
	var loggingService service.LoggingService
	if dbComponents != nil {
		materialRepo = dbComponents.MaterialRepo
		loggingService = dbComponents.LoggingService
	} else {
		materialRepo = repository.NewInMemoryMaterialRepository(seed)
	}

	materialService := service.NewMaterialService(materialRepo)

	handler := http.NewHandler(calculator, materialService)
	healthHandler := http.NewHealthHandler()

	// Readiness reflects the Mongo connection and both circuit breakers
	if dbComponents != nil {
		if dbComponents.Mongo != nil {
			mongo := dbComponents.Mongo
			healthHandler.RegisterChecker("mongodb", http.CheckerFunc(func() error {
				ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
				defer cancel()
				return mongo.HealthCheck(ctx)
			}))
		}
		if dbComponents.MaterialCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_materials", dbComponents.MaterialCircuitBreaker)
		}
		if dbComponents.LogsCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_logs", dbComponents.LogsCircuitBreaker)
		}
	}

	// Request logs are written through the buffered async logger when a
	// logging backend exists
	if loggingService != nil {
		middleware.InitAsyncLogger(loggingService, middleware.DefaultAsyncLoggerConfig())
	}

	routerCfg := http.RouterConfig{
		RateLimit:         cfg.Server.RateLimit,
		RateWindow:        cfg.Server.RateWindow,
		EnableAuth:        cfg.Auth.Enabled,
		JWTSecret:         cfg.Auth.JWTSecretKey,
		APIKeys:           cfg.Auth.APIKeys,
		EnableIdempotency: true,
		CORSOrigins:       cfg.Server.CORSOrigins,
		SwaggerUser:       cfg.Server.SwaggerUser,
		SwaggerPass:       cfg.Server.SwaggerPass,
		LoggingService:    loggingService,
		MaterialService:   materialService,
		Calculator:        calculator,
	}

	return &RouterComponents{
		Handler:       handler,
		HealthHandler: healthHandler,
		Config:        routerCfg,
	}
}
