package service

import (
	"context"
	"errors"

	"github.com/Adela-Cal/Misty-Manufacturing-sub002/internal/domain/model"
	"github.com/Adela-Cal/Misty-Manufacturing-sub002/internal/repository"
)

// ErrRepositoryNotConfigured is returned when the repository is not configured.
var ErrRepositoryNotConfigured = errors.New("repository not configured")

// MaterialService provides material catalog operations. It is the Material
// lookup collaborator of the permutation calculator: the calculator itself
// never touches storage.
type MaterialService interface {
	// GetByID resolves a material by its business identifier.
	// Returns (nil, nil) when no such material exists.
	GetByID(ctx context.Context, materialID string) (*model.Material, error)
	Create(ctx context.Context, material model.Material) (*model.Material, error)
	Update(ctx context.Context, materialID string, material model.Material) (*model.Material, error)
	List(ctx context.Context, limit int) ([]model.Material, error)
}

// MaterialServiceImpl implements MaterialService.
type MaterialServiceImpl struct {
	materialRepo repository.MaterialRepositoryInterface
}

// NewMaterialService creates a new material service.
func NewMaterialService(materialRepo repository.MaterialRepositoryInterface) MaterialService {
	return &MaterialServiceImpl{
		materialRepo: materialRepo,
	}
}

func (s *MaterialServiceImpl) GetByID(ctx context.Context, materialID string) (*model.Material, error) {
	if s.materialRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.materialRepo.GetByID(ctx, materialID)
}

func (s *MaterialServiceImpl) Create(ctx context.Context, material model.Material) (*model.Material, error) {
	if s.materialRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.materialRepo.Create(ctx, material)
}

func (s *MaterialServiceImpl) Update(ctx context.Context, materialID string, material model.Material) (*model.Material, error) {
	if s.materialRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.materialRepo.Update(ctx, materialID, material)
}

func (s *MaterialServiceImpl) List(ctx context.Context, limit int) ([]model.Material, error) {
	if s.materialRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.materialRepo.List(ctx, limit)
}
