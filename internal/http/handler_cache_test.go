package http

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Adela-Cal/Misty-Manufacturing-sub002/internal/mocks"
)

func TestMaterialCache_NewMaterialCache(t *testing.T) {
	tests := []struct {
		name string
		ttl  time.Duration
	}{
		{
			name: "create cache with 30s TTL",
			ttl:  30 * time.Second,
		},
		{
			name: "create cache with 1 minute TTL",
			ttl:  time.Minute,
		},
		{
			name: "create cache with zero TTL",
			ttl:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cache := newMaterialCache(tt.ttl)

			assert.NotNil(t, cache)
			assert.Equal(t, tt.ttl, cache.ttl)

			// Should return nil initially
			assert.Nil(t, cache.get("BOPP-30"))
		})
	}
}

func TestMaterialCache_SetAndGet(t *testing.T) {
	tests := []struct {
		name     string
		ttl      time.Duration
		wantGet  bool
		waitTime time.Duration
	}{
		{
			name:    "set and get immediately",
			ttl:     time.Second,
			wantGet: true,
		},
		{
			name:     "get after expiration",
			ttl:      50 * time.Millisecond,
			wantGet:  false,
			waitTime: 100 * time.Millisecond,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cache := newMaterialCache(tt.ttl)
			material := testMaterial()

			cache.set(material)

			if tt.waitTime > 0 {
				time.Sleep(tt.waitTime)
			}

			result := cache.get(material.MaterialID)

			if tt.wantGet {
				assert.NotNil(t, result)
				assert.Equal(t, material, *result)
			} else {
				assert.Nil(t, result)
			}
		})
	}
}

func TestMaterialCache_GetReturnsCopy(t *testing.T) {
	cache := newMaterialCache(time.Minute)
	cache.set(testMaterial())

	first := cache.get("BOPP-30")
	first.MasterWidthMM = 1

	second := cache.get("BOPP-30")
	assert.Equal(t, testMaterial().MasterWidthMM, second.MasterWidthMM)
}

func TestMaterialCache_Invalidate(t *testing.T) {
	cache := newMaterialCache(time.Minute)

	cache.set(testMaterial())
	assert.NotNil(t, cache.get("BOPP-30"))

	cache.invalidate()

	assert.Nil(t, cache.get("BOPP-30"))
}

func TestMaterialCache_IndependentEntries(t *testing.T) {
	cache := newMaterialCache(time.Minute)

	bopp := testMaterial()
	pet := testMaterial()
	pet.MaterialID = "PET-12"
	pet.MasterWidthMM = 1600

	cache.set(bopp)
	cache.set(pet)

	assert.Equal(t, 1300.0, cache.get("BOPP-30").MasterWidthMM)
	assert.Equal(t, 1600.0, cache.get("PET-12").MasterWidthMM)
	assert.Nil(t, cache.get("CPP-25"))
}

func TestWithMaterialCacheTTL(t *testing.T) {
	tests := []struct {
		name string
		ttl  time.Duration
	}{
		{
			name: "1 minute TTL",
			ttl:  time.Minute,
		},
		{
			name: "5 seconds TTL",
			ttl:  5 * time.Second,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewHandler(nil, nil, WithMaterialCacheTTL(tt.ttl))

			assert.NotNil(t, handler)
			assert.NotNil(t, handler.materialCache)
			assert.Equal(t, tt.ttl, handler.materialCache.ttl)
		})
	}
}

func TestHandler_InvalidateMaterialCache(t *testing.T) {
	handler := NewHandler(nil, nil)

	handler.materialCache.set(testMaterial())
	assert.NotNil(t, handler.materialCache.get("BOPP-30"))

	handler.InvalidateMaterialCache()

	assert.Nil(t, handler.materialCache.get("BOPP-30"))
}

func TestHandler_GetMaterialUsesCache(t *testing.T) {
	mockMaterials := mocks.NewMockMaterialService(t)
	handler := NewHandler(nil, mockMaterials)

	material := testMaterial()
	// Only one catalog hit despite two lookups.
	mockMaterials.On("GetByID", mock.Anything, "BOPP-30").Return(&material, nil).Once()

	first, err := handler.getMaterial(context.Background(), "BOPP-30")
	assert.NoError(t, err)
	assert.NotNil(t, first)

	second, err := handler.getMaterial(context.Background(), "BOPP-30")
	assert.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestHandler_GetMaterialMissNotCached(t *testing.T) {
	mockMaterials := mocks.NewMockMaterialService(t)
	handler := NewHandler(nil, mockMaterials)

	// Absent materials are not negatively cached: both lookups hit the catalog.
	mockMaterials.On("GetByID", mock.Anything, "PET-12").Return(nil, nil).Twice()

	for i := 0; i < 2; i++ {
		material, err := handler.getMaterial(context.Background(), "PET-12")
		assert.NoError(t, err)
		assert.Nil(t, material)
	}
}

func TestMaterialCache_ConcurrentAccess(t *testing.T) {
	cache := newMaterialCache(time.Minute)
	done := make(chan bool)

	go func() {
		for i := 0; i < 100; i++ {
			m := testMaterial()
			m.MasterWidthMM = float64(i + 1)
			cache.set(m)
		}
		done <- true
	}()

	go func() {
		for i := 0; i < 100; i++ {
			cache.get("BOPP-30")
		}
		done <- true
	}()

	go func() {
		for i := 0; i < 100; i++ {
			cache.invalidate()
		}
		done <- true
	}()

	for i := 0; i < 3; i++ {
		<-done
	}
}
