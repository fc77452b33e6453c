// Package repository provides interfaces for repository operations.
package repository

import (
	"context"

	"github.com/Adela-Cal/Misty-Manufacturing-sub002/internal/domain/model"
)

// MaterialRepositoryInterface defines the interface for material catalog
// repository operations. GetByID returns (nil, nil) when the material does
// not exist; callers decide whether that is an error.
type MaterialRepositoryInterface interface {
	GetByID(ctx context.Context, materialID string) (*model.Material, error)
	Create(ctx context.Context, material model.Material) (*model.Material, error)
	Update(ctx context.Context, materialID string, material model.Material) (*model.Material, error)
	List(ctx context.Context, limit int) ([]model.Material, error)
}

// LogsRepositoryInterface defines the interface for logs repository operations.
type LogsRepositoryInterface interface {
	Create(ctx context.Context, entry *LogEntryDocument) error
	CreateMany(ctx context.Context, entries []*LogEntryDocument) error
	Query(ctx context.Context, opts LogQueryOptions) ([]*LogEntryDocument, error)
	Count(ctx context.Context, opts LogQueryOptions) (int64, error)
}
