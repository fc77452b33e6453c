// Package app provides service initialization.
package app

import (
	"github.com/Adela-Cal/Misty-Manufacturing-sub002/config"
	"github.com/Adela-Cal/Misty-Manufacturing-sub002/internal/service"
)

// ServiceComponents holds service-related components.
type ServiceComponents struct {
	Calculator service.PermutationCalculator
}

// InitializeServices initializes business logic services.
func InitializeServices(cfg config.CalculatorConfig) *ServiceComponents {
	var opts []service.Option

	if cfg.MaxPatterns > 0 {
		opts = append(opts, service.WithMaxPatterns(cfg.MaxPatterns))
	}

	if cfg.CacheSize > 0 {
		opts = append(opts, service.WithCache(cfg.CacheSize, cfg.CacheTTL))
	}

	calculator := service.NewSlittingCalculatorService(opts...)

	return &ServiceComponents{
		Calculator: calculator,
	}
}
