package cache

import "github.com/Adela-Cal/Misty-Manufacturing-sub002/internal/domain/model"

// Cache defines the interface for calculation-result cache operations.
// Keys are deterministic fingerprints of a material plus request.
type Cache interface {
	Get(key string) (model.CalculationResult, bool)
	Set(key string, value model.CalculationResult)
	Invalidate(key string)
	Clear()
	Stop()
}

// Metrics provides cache performance metrics.
type Metrics struct {
	Hits      int64
	Misses    int64
	Evictions int64
	Size      int
	Capacity  int
}

// CacheWithMetrics extends Cache with metrics reporting.
type CacheWithMetrics interface {
	Cache
	Metrics() Metrics
}
