package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/Adela-Cal/Misty-Manufacturing-sub002/internal/domain/model"
)

// DefaultMaterialCatalog returns the built-in material catalog used when no
// seed is configured. It also serves as the read fallback while the MongoDB
// circuit breaker is open.
func DefaultMaterialCatalog() []model.Material {
	return []model.Material{
		{
			MaterialID:        "BOPP-30",
			MaterialName:      "BOPP Clear 30um",
			MaterialCode:      "RM-0042",
			MasterWidthMM:     1300,
			GSM:               27.4,
			PricePerTonneAUD:  3200,
			TotalLinearMeters: 8000,
		},
		{
			MaterialID:        "PET-12",
			MaterialName:      "PET Clear 12um",
			MaterialCode:      "RM-0108",
			MasterWidthMM:     1600,
			GSM:               16.8,
			PricePerTonneAUD:  4100,
			TotalLinearMeters: 12000,
		},
		{
			MaterialID:        "CPP-25",
			MaterialName:      "CPP Metallised 25um",
			MaterialCode:      "RM-0073",
			MasterWidthMM:     990,
			GSM:               22.9,
			PricePerTonneAUD:  3550,
			TotalLinearMeters: 6000,
		},
	}
}

// InMemoryMaterialRepository is a thread-safe in-memory material catalog.
// It backs the calculate endpoint when MongoDB is disabled, seeded from
// configuration, and doubles as the repository fake in tests.
type InMemoryMaterialRepository struct {
	mu        sync.RWMutex
	materials map[string]model.Material
}

// NewInMemoryMaterialRepository creates an in-memory catalog seeded with the
// given materials. Materials with a duplicate or empty material_id are skipped.
func NewInMemoryMaterialRepository(seed []model.Material) *InMemoryMaterialRepository {
	r := &InMemoryMaterialRepository{
		materials: make(map[string]model.Material, len(seed)),
	}
	for _, m := range seed {
		if m.MaterialID == "" {
			continue
		}
		if _, ok := r.materials[m.MaterialID]; ok {
			continue
		}
		m.Active = true
		r.materials[m.MaterialID] = m
	}
	return r
}

// GetByID returns the material with the given identifier, or (nil, nil).
func (r *InMemoryMaterialRepository) GetByID(_ context.Context, materialID string) (*model.Material, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.materials[materialID]
	if !ok {
		return nil, nil
	}
	return &m, nil
}

// Create adds a material to the catalog.
func (r *InMemoryMaterialRepository) Create(_ context.Context, material model.Material) (*model.Material, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	material.Active = true
	material.CreatedAt = time.Now()
	material.UpdatedAt = material.CreatedAt
	r.materials[material.MaterialID] = material
	return &material, nil
}

// Update replaces an existing material. Returns (nil, nil) when absent.
func (r *InMemoryMaterialRepository) Update(_ context.Context, materialID string, material model.Material) (*model.Material, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.materials[materialID]
	if !ok {
		return nil, nil
	}

	existing.MaterialName = material.MaterialName
	existing.MaterialCode = material.MaterialCode
	existing.MasterWidthMM = material.MasterWidthMM
	existing.GSM = material.GSM
	existing.PricePerTonneAUD = material.PricePerTonneAUD
	existing.TotalLinearMeters = material.TotalLinearMeters
	existing.UpdatedAt = time.Now()
	r.materials[materialID] = existing
	return &existing, nil
}

// List returns all materials sorted by material_id for a stable order.
func (r *InMemoryMaterialRepository) List(_ context.Context, limit int) ([]model.Material, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	materials := make([]model.Material, 0, len(r.materials))
	for _, m := range r.materials {
		materials = append(materials, m)
	}
	sort.Slice(materials, func(i, j int) bool {
		return materials[i].MaterialID < materials[j].MaterialID
	})
	if limit > 0 && len(materials) > limit {
		materials = materials[:limit]
	}
	return materials, nil
}
