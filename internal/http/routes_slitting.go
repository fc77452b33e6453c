package http

import (
	"github.com/gin-gonic/gin"

	"github.com/Adela-Cal/Misty-Manufacturing-sub002/internal/service"
)

// SlittingRoutes handles slitting calculation and material catalog route
// registration.
type SlittingRoutes struct {
	handler          *Handler
	materialsHandler *MaterialsHandler
}

// NewSlittingRoutes creates a new SlittingRoutes instance.
func NewSlittingRoutes(calculator service.PermutationCalculator, materialService service.MaterialService) *SlittingRoutes {
	handler := NewHandler(calculator, materialService)

	var materialsHandler *MaterialsHandler
	if materialService != nil {
		materialsHandler = NewMaterialsHandler(materialService, calculator, handler)
	}

	return &SlittingRoutes{
		handler:          handler,
		materialsHandler: materialsHandler,
	}
}

// RegisterPublicRoutes registers slitting routes (when auth is disabled).
func (r *SlittingRoutes) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.POST("/calculate", r.handler.CalculatePermutations)
	rg.POST("/calculate/export", r.handler.ExportCalculation)

	if r.materialsHandler != nil {
		rg.GET("/materials", r.materialsHandler.ListMaterials)
		rg.GET("/materials/:id", r.materialsHandler.GetMaterial)
		rg.POST("/materials", r.materialsHandler.CreateMaterial)
		rg.PUT("/materials/:id", r.materialsHandler.UpdateMaterial)
	}
}

// RegisterProtectedRoutes registers slitting routes behind JWT auth.
func (r *SlittingRoutes) RegisterProtectedRoutes(protected *gin.RouterGroup, cfg *RouterConfig) {
	r.RegisterPublicRoutes(protected)
}

// GetHandler returns the underlying slitting handler.
func (r *SlittingRoutes) GetHandler() *Handler {
	return r.handler
}
