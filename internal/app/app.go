// Package app provides application initialization and dependency injection.
package app

import (
	"github.com/gin-gonic/gin"

	"github.com/Adela-Cal/Misty-Manufacturing-sub002/config"
	"github.com/Adela-Cal/Misty-Manufacturing-sub002/internal/domain/model"
	"github.com/Adela-Cal/Misty-Manufacturing-sub002/internal/http"
	"github.com/Adela-Cal/Misty-Manufacturing-sub002/internal/repository"
)

// InitializeApp creates and wires all application dependencies.
// This is the main orchestration function that initializes all components.
func InitializeApp(cfg config.Config) *gin.Engine {
	// Initialize logger first (needed by other components)
	InitializeLogger()

	// Initialize business services
	serviceComponents := InitializeServices(cfg.Calculator)

	// Material catalog seed: configured materials, or the built-in catalog.
	seed := materialSeed(cfg.Calculator)

	// Initialize database components (MongoDB repositories and services)
	dbComponents := InitializeDatabase(cfg.Database, seed)

	// Initialize router components (handlers and configuration)
	routerComponents := InitializeRouter(serviceComponents.Calculator, dbComponents, seed, cfg)

	return http.NewRouter(routerComponents.Handler, routerComponents.HealthHandler, routerComponents.Config)
}

// materialSeed converts configured materials into catalog entries, falling
// back to the built-in catalog when none are configured.
func materialSeed(cfg config.CalculatorConfig) []model.Material {
	if len(cfg.Materials) == 0 {
		return repository.DefaultMaterialCatalog()
	}

	seed := make([]model.Material, 0, len(cfg.Materials))
	for _, m := range cfg.Materials {
		seed = append(seed, model.Material{
			MaterialID:        m.MaterialID,
			MaterialName:      m.MaterialName,
			MasterWidthMM:     m.MasterWidthMM,
			GSM:               m.GSM,
			PricePerTonneAUD:  m.PricePerTonneAUD,
			TotalLinearMeters: m.TotalLinearMeters,
		})
	}
	return seed
}
