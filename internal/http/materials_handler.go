package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Adela-Cal/Misty-Manufacturing-sub002/internal/domain/dto"
	"github.com/Adela-Cal/Misty-Manufacturing-sub002/internal/domain/model"
	"github.com/Adela-Cal/Misty-Manufacturing-sub002/internal/i18n"
	"github.com/Adela-Cal/Misty-Manufacturing-sub002/internal/middleware"
	"github.com/Adela-Cal/Misty-Manufacturing-sub002/internal/service"
)

// MaterialsHandler provides HTTP handlers for material catalog routes.
type MaterialsHandler struct {
	materialService service.MaterialService
	calculator      service.PermutationCalculator
	handler         *Handler
}

// NewMaterialsHandler creates a new MaterialsHandler instance. The calculator
// and handler may be nil; they are only used for cache invalidation after
// catalog writes.
func NewMaterialsHandler(materialService service.MaterialService, calculator service.PermutationCalculator, handler *Handler) *MaterialsHandler {
	return &MaterialsHandler{
		materialService: materialService,
		calculator:      calculator,
		handler:         handler,
	}
}

// ListMaterials handles GET /api/materials requests.
//
// @Summary      List materials
// @Description  Returns the active materials in the catalog, newest first. The limit query parameter caps the result size (default 50).
// @Tags         Materials
// @Produce      json
// @Param        limit query int false "Maximum number of materials to return"
// @Param        Authorization header string false "Bearer token (required if auth enabled)"
// @Success      200 {object} dto.SuccessResponse "Materials"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid JWT token"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/materials [get]
func (h *MaterialsHandler) ListMaterials(c *gin.Context) {
	builder := NewResponseBuilder(c)

	limit := 50
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
			return
		}
		limit = parsed
	}

	materials, err := h.materialService.List(c.Request.Context(), limit)
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	infos := make([]model.MaterialInfo, len(materials))
	for i, m := range materials {
		infos[i] = m.Info()
	}

	builder.SuccessOK(map[string]interface{}{
		"materials": infos,
		"count":     len(infos),
	})
}

// GetMaterial handles GET /api/materials/:id requests.
//
// @Summary      Get a material
// @Description  Returns a single material by its business identifier.
// @Tags         Materials
// @Produce      json
// @Param        id path string true "Material identifier"
// @Param        Authorization header string false "Bearer token (required if auth enabled)"
// @Success      200 {object} dto.SuccessResponse "Material"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid JWT token"
// @Failure      404 {object} dto.ErrorResponse "Material not found"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/materials/{id} [get]
func (h *MaterialsHandler) GetMaterial(c *gin.Context) {
	builder := NewResponseBuilder(c)

	material, err := h.materialService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}
	if material == nil {
		builder.Error(http.StatusNotFound, i18n.ErrKeyMaterialNotFound, nil)
		return
	}

	builder.SuccessOK(material)
}

// CreateMaterial handles POST /api/materials requests.
//
// @Summary      Create a material
// @Description  Adds a new material to the catalog.
// @Tags         Materials
// @Accept       json
// @Produce      json
// @Param        request body dto.UpsertMaterialRequest true "Material definition"
// @Param        Authorization header string false "Bearer token (required if auth enabled)"
// @Success      201 {object} dto.SuccessResponse "Created material"
// @Failure      400 {object} dto.ErrorResponse "Bad request"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid JWT token"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/materials [post]
func (h *MaterialsHandler) CreateMaterial(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.UpsertMaterialRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	created, err := h.materialService.Create(c.Request.Context(), h.toMaterial(req))
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	h.invalidateCaches()
	h.audit(c, "Material created", req.MaterialID)

	builder.SuccessCreated(created)
}

// UpdateMaterial handles PUT /api/materials/:id requests.
//
// @Summary      Update a material
// @Description  Updates an existing material. Calculation caches are invalidated so subsequent calculations see the new dimensions and pricing.
// @Tags         Materials
// @Accept       json
// @Produce      json
// @Param        id path string true "Material identifier"
// @Param        request body dto.UpsertMaterialRequest true "Material definition"
// @Param        Authorization header string false "Bearer token (required if auth enabled)"
// @Success      200 {object} dto.SuccessResponse "Updated material"
// @Failure      400 {object} dto.ErrorResponse "Bad request"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid JWT token"
// @Failure      404 {object} dto.ErrorResponse "Material not found"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/materials/{id} [put]
func (h *MaterialsHandler) UpdateMaterial(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.UpsertMaterialRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	updated, err := h.materialService.Update(c.Request.Context(), c.Param("id"), h.toMaterial(req))
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}
	if updated == nil {
		builder.Error(http.StatusNotFound, i18n.ErrKeyMaterialNotFound, nil)
		return
	}

	h.invalidateCaches()
	h.audit(c, "Material updated", c.Param("id"))

	builder.SuccessOK(updated)
}

func (h *MaterialsHandler) toMaterial(req *dto.UpsertMaterialRequest) model.Material {
	return model.Material{
		MaterialID:        req.MaterialID,
		MaterialName:      req.MaterialName,
		MaterialCode:      req.MaterialCode,
		MasterWidthMM:     req.MasterWidthMM,
		GSM:               req.GSM,
		PricePerTonneAUD:  req.PricePerTonneAUD,
		TotalLinearMeters: req.TotalLinearMeters,
	}
}

// invalidateCaches drops cached calculations and material lookups after a
// catalog write.
func (h *MaterialsHandler) invalidateCaches() {
	if h.calculator != nil {
		h.calculator.InvalidateCache()
	}
	if h.handler != nil {
		h.handler.InvalidateMaterialCache()
	}
}

func (h *MaterialsHandler) audit(c *gin.Context, message, materialID string) {
	if loggingService, exists := c.Get("logging_service"); exists {
		if ls, ok := loggingService.(service.LoggingService); ok {
			middleware.AuditLog(ls, c, "update_material", message, map[string]interface{}{
				"material_id": materialID,
			})
		}
	}
}
