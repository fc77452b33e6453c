package repository

import (
	"context"

	"github.com/Adela-Cal/Misty-Manufacturing-sub002/internal/circuitbreaker"
	"github.com/Adela-Cal/Misty-Manufacturing-sub002/internal/domain/model"
)

// MaterialRepositoryWithCircuitBreaker wraps a material repository with
// circuit breaker protection. When the circuit is open, reads are served
// from the fallback repository (the seeded in-memory catalog) so slitting
// calculations keep working through a database outage.
type MaterialRepositoryWithCircuitBreaker struct {
	repo           MaterialRepositoryInterface
	fallback       MaterialRepositoryInterface
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewMaterialRepositoryWithCircuitBreaker creates a new repository wrapper.
// fallback may be nil, in which case open-circuit reads fail with
// circuitbreaker.ErrCircuitOpen.
func NewMaterialRepositoryWithCircuitBreaker(repo MaterialRepositoryInterface, cb *circuitbreaker.CircuitBreaker, fallback MaterialRepositoryInterface) *MaterialRepositoryWithCircuitBreaker {
	return &MaterialRepositoryWithCircuitBreaker{
		repo:           repo,
		fallback:       fallback,
		circuitBreaker: cb,
	}
}

// GetByID looks up a material with circuit breaker protection.
func (r *MaterialRepositoryWithCircuitBreaker) GetByID(ctx context.Context, materialID string) (*model.Material, error) {
	var result *model.Material
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.GetByID(ctx, materialID)
		return cbErr
	})
	if err == circuitbreaker.ErrCircuitOpen && r.fallback != nil {
		return r.fallback.GetByID(ctx, materialID)
	}
	return result, err
}

// Create stores a new material with circuit breaker protection. Writes have
// no fallback; an open circuit surfaces the error to the caller.
func (r *MaterialRepositoryWithCircuitBreaker) Create(ctx context.Context, material model.Material) (*model.Material, error) {
	var result *model.Material
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Create(ctx, material)
		return cbErr
	})
	return result, err
}

// Update modifies an existing material with circuit breaker protection.
func (r *MaterialRepositoryWithCircuitBreaker) Update(ctx context.Context, materialID string, material model.Material) (*model.Material, error) {
	var result *model.Material
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Update(ctx, materialID, material)
		return cbErr
	})
	return result, err
}

// List returns active materials with circuit breaker protection.
func (r *MaterialRepositoryWithCircuitBreaker) List(ctx context.Context, limit int) ([]model.Material, error) {
	var result []model.Material
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.List(ctx, limit)
		return cbErr
	})
	if err == circuitbreaker.ErrCircuitOpen && r.fallback != nil {
		return r.fallback.List(ctx, limit)
	}
	return result, err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *MaterialRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

// LogsRepositoryWithCircuitBreaker wraps LogsRepository with circuit breaker protection.
type LogsRepositoryWithCircuitBreaker struct {
	repo           *LogsRepository
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewLogsRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewLogsRepositoryWithCircuitBreaker(repo *LogsRepository, cb *circuitbreaker.CircuitBreaker) *LogsRepositoryWithCircuitBreaker {
	return &LogsRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// Create stores a single log entry. Logging is non-critical, so an open
// circuit drops the entry instead of failing the request.
func (r *LogsRepositoryWithCircuitBreaker) Create(ctx context.Context, entry *LogEntryDocument) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Create(ctx, entry)
	})
	if err == circuitbreaker.ErrCircuitOpen {
		return nil
	}
	return err
}

// CreateMany stores multiple log entries, dropping them when the circuit is open.
func (r *LogsRepositoryWithCircuitBreaker) CreateMany(ctx context.Context, entries []*LogEntryDocument) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.CreateMany(ctx, entries)
	})
	if err == circuitbreaker.ErrCircuitOpen {
		return nil
	}
	return err
}

// Query retrieves log entries with circuit breaker protection.
func (r *LogsRepositoryWithCircuitBreaker) Query(ctx context.Context, opts LogQueryOptions) ([]*LogEntryDocument, error) {
	var result []*LogEntryDocument
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Query(ctx, opts)
		return cbErr
	})
	return result, err
}

// Count returns the count of log entries with circuit breaker protection.
func (r *LogsRepositoryWithCircuitBreaker) Count(ctx context.Context, opts LogQueryOptions) (int64, error) {
	var result int64
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Count(ctx, opts)
		return cbErr
	})
	return result, err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *LogsRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}
