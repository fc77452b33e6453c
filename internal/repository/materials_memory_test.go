//go:build !integration

package repository

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Adela-Cal/Misty-Manufacturing-sub002/internal/domain/model"
)

func TestDefaultMaterialCatalog(t *testing.T) {
	catalog := DefaultMaterialCatalog()

	require.NotEmpty(t, catalog)
	seen := make(map[string]struct{}, len(catalog))
	for _, m := range catalog {
		assert.NotEmpty(t, m.MaterialID)
		assert.True(t, m.Valid(), "catalog material %s must satisfy physical invariants", m.MaterialID)
		_, dup := seen[m.MaterialID]
		assert.False(t, dup, "duplicate material id %s", m.MaterialID)
		seen[m.MaterialID] = struct{}{}
	}
}

func TestInMemoryMaterialRepository_Seed(t *testing.T) {
	seed := []model.Material{
		{MaterialID: "BOPP-30", MasterWidthMM: 1300},
		{MaterialID: "BOPP-30", MasterWidthMM: 9999}, // duplicate, skipped
		{MaterialID: "", MasterWidthMM: 1000},        // empty id, skipped
		{MaterialID: "PET-12", MasterWidthMM: 1600},
	}

	repo := NewInMemoryMaterialRepository(seed)
	ctx := context.Background()

	got, err := repo.GetByID(ctx, "BOPP-30")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 1300.0, got.MasterWidthMM)
	assert.True(t, got.Active)

	materials, err := repo.List(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, materials, 2)
}

func TestInMemoryMaterialRepository_GetByID(t *testing.T) {
	repo := NewInMemoryMaterialRepository(DefaultMaterialCatalog())
	ctx := context.Background()

	t.Run("existing material", func(t *testing.T) {
		got, err := repo.GetByID(ctx, "PET-12")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "PET-12", got.MaterialID)
	})

	t.Run("unknown material is nil without error", func(t *testing.T) {
		got, err := repo.GetByID(ctx, "UNKNOWN")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("returned material is a copy", func(t *testing.T) {
		got, err := repo.GetByID(ctx, "PET-12")
		require.NoError(t, err)
		got.MasterWidthMM = 1

		again, err := repo.GetByID(ctx, "PET-12")
		require.NoError(t, err)
		assert.Equal(t, 1600.0, again.MasterWidthMM)
	})
}

func TestInMemoryMaterialRepository_Create(t *testing.T) {
	repo := NewInMemoryMaterialRepository(nil)
	ctx := context.Background()

	created, err := repo.Create(ctx, model.Material{
		MaterialID:    "LDPE-50",
		MaterialName:  "LDPE Film 50um",
		MasterWidthMM: 1100,
	})
	require.NoError(t, err)
	assert.True(t, created.Active)
	assert.False(t, created.CreatedAt.IsZero())
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)

	got, err := repo.GetByID(ctx, "LDPE-50")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "LDPE Film 50um", got.MaterialName)
}

func TestInMemoryMaterialRepository_Update(t *testing.T) {
	repo := NewInMemoryMaterialRepository(DefaultMaterialCatalog())
	ctx := context.Background()

	t.Run("updates mutable fields", func(t *testing.T) {
		updated, err := repo.Update(ctx, "BOPP-30", model.Material{
			MaterialName:      "BOPP Clear 30um (rev B)",
			MaterialCode:      "RM-0042B",
			MasterWidthMM:     1250,
			GSM:               27.4,
			PricePerTonneAUD:  3300,
			TotalLinearMeters: 8000,
		})
		require.NoError(t, err)
		require.NotNil(t, updated)
		assert.Equal(t, 1250.0, updated.MasterWidthMM)
		assert.Equal(t, "BOPP Clear 30um (rev B)", updated.MaterialName)
		assert.False(t, updated.UpdatedAt.IsZero())
	})

	t.Run("absent material is nil without error", func(t *testing.T) {
		updated, err := repo.Update(ctx, "UNKNOWN", model.Material{MasterWidthMM: 1000})
		require.NoError(t, err)
		assert.Nil(t, updated)
	})
}

func TestInMemoryMaterialRepository_List(t *testing.T) {
	repo := NewInMemoryMaterialRepository(DefaultMaterialCatalog())
	ctx := context.Background()

	t.Run("sorted by material id", func(t *testing.T) {
		materials, err := repo.List(ctx, 0)
		require.NoError(t, err)
		require.Len(t, materials, 3)
		for i := 1; i < len(materials); i++ {
			assert.Less(t, materials[i-1].MaterialID, materials[i].MaterialID)
		}
	})

	t.Run("limit truncates", func(t *testing.T) {
		materials, err := repo.List(ctx, 2)
		require.NoError(t, err)
		assert.Len(t, materials, 2)
	})

	t.Run("zero limit returns everything", func(t *testing.T) {
		materials, err := repo.List(ctx, 0)
		require.NoError(t, err)
		assert.Len(t, materials, 3)
	})
}

func TestInMemoryMaterialRepository_ConcurrentAccess(t *testing.T) {
	repo := NewInMemoryMaterialRepository(DefaultMaterialCatalog())
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				_, _ = repo.GetByID(ctx, "BOPP-30")
				_, _ = repo.List(ctx, 10)
				_, _ = repo.Create(ctx, model.Material{
					MaterialID:    fmt.Sprintf("MAT-%d-%d", n, j),
					MasterWidthMM: 1000,
				})
			}
		}(i)
	}
	wg.Wait()

	materials, err := repo.List(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, materials, 3+10*50)
}
