package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Adela-Cal/Misty-Manufacturing-sub002/internal/domain/model"
	"github.com/Adela-Cal/Misty-Manufacturing-sub002/internal/mocks"
)

func TestNewSlittingRoutes(t *testing.T) {
	t.Run("with material service", func(t *testing.T) {
		mockCalc := mocks.NewMockPermutationCalculator(t)
		mockMaterials := mocks.NewMockMaterialService(t)

		routes := NewSlittingRoutes(mockCalc, mockMaterials)

		assert.NotNil(t, routes)
		assert.NotNil(t, routes.handler)
		assert.NotNil(t, routes.materialsHandler)
	})

	t.Run("without material service", func(t *testing.T) {
		mockCalc := mocks.NewMockPermutationCalculator(t)

		routes := NewSlittingRoutes(mockCalc, nil)

		assert.NotNil(t, routes)
		assert.NotNil(t, routes.handler)
		assert.Nil(t, routes.materialsHandler)
	})
}

func TestSlittingRoutes_RegisterPublicRoutes(t *testing.T) {
	mockCalc := mocks.NewMockPermutationCalculator(t)
	mockMaterials := mocks.NewMockMaterialService(t)
	routes := NewSlittingRoutes(mockCalc, mockMaterials)

	router := gin.New()
	api := router.Group("/api")
	routes.RegisterPublicRoutes(api)

	// Verify routes are registered by checking if they respond
	tests := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/calculate"},
		{http.MethodPost, "/api/calculate/export"},
		{http.MethodPost, "/api/materials"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			// Should not return 404 - route exists
			assert.NotEqual(t, http.StatusNotFound, w.Code)
		})
	}
}

func TestSlittingRoutes_RegisterPublicRoutes_WithoutMaterialService(t *testing.T) {
	mockCalc := mocks.NewMockPermutationCalculator(t)

	routes := NewSlittingRoutes(mockCalc, nil)

	router := gin.New()
	api := router.Group("/api")
	routes.RegisterPublicRoutes(api)

	// Calculate route should exist
	req := httptest.NewRequest(http.MethodPost, "/api/calculate", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.NotEqual(t, http.StatusNotFound, w.Code)

	// Material catalog routes should NOT exist
	req2 := httptest.NewRequest(http.MethodGet, "/api/materials", nil)
	w2 := httptest.NewRecorder()
	router.ServeHTTP(w2, req2)
	assert.Equal(t, http.StatusNotFound, w2.Code)
}

func TestSlittingRoutes_RegisterProtectedRoutes(t *testing.T) {
	mockCalc := mocks.NewMockPermutationCalculator(t)
	mockMaterials := mocks.NewMockMaterialService(t)
	routes := NewSlittingRoutes(mockCalc, mockMaterials)

	router := gin.New()
	api := router.Group("/api")

	cfg := &RouterConfig{}

	routes.RegisterProtectedRoutes(api, cfg)

	// Same surface as the public registration
	tests := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/calculate"},
		{http.MethodPost, "/api/calculate/export"},
		{http.MethodGet, "/api/materials"},
		{http.MethodGet, "/api/materials/BOPP-30"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			// Catalog reads hit the service straight away.
			switch tt.path {
			case "/api/materials":
				mockMaterials.On("List", mock.Anything, 50).Return([]model.Material{testMaterial()}, nil).Once()
			case "/api/materials/BOPP-30":
				material := testMaterial()
				mockMaterials.On("GetByID", mock.Anything, "BOPP-30").Return(&material, nil).Once()
			}

			req := httptest.NewRequest(tt.method, tt.path, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.NotEqual(t, http.StatusNotFound, w.Code)
		})
	}
}

func TestSlittingRoutes_GetHandler(t *testing.T) {
	mockCalc := mocks.NewMockPermutationCalculator(t)
	routes := NewSlittingRoutes(mockCalc, nil)

	handler := routes.GetHandler()

	assert.NotNil(t, handler)
	assert.Equal(t, routes.handler, handler)
}
