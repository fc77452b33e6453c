package http

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Adela-Cal/Misty-Manufacturing-sub002/internal/domain/dto"
	"github.com/Adela-Cal/Misty-Manufacturing-sub002/internal/domain/model"
	"github.com/Adela-Cal/Misty-Manufacturing-sub002/internal/i18n"
	"github.com/Adela-Cal/Misty-Manufacturing-sub002/internal/metrics"
	"github.com/Adela-Cal/Misty-Manufacturing-sub002/internal/middleware"
	"github.com/Adela-Cal/Misty-Manufacturing-sub002/internal/service"
)

// materialCache provides thread-safe short-lived caching of catalog lookups
// so repeated calculations against the same material skip the database.
type materialCache struct {
	mu      sync.RWMutex
	entries map[string]materialCacheEntry
	ttl     time.Duration
}

type materialCacheEntry struct {
	material  model.Material
	expiresAt time.Time
}

// newMaterialCache creates a new material cache with the given TTL.
func newMaterialCache(ttl time.Duration) *materialCache {
	return &materialCache{
		entries: make(map[string]materialCacheEntry),
		ttl:     ttl,
	}
}

// get returns the cached material if present and fresh.
func (c *materialCache) get(materialID string) *model.Material {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[materialID]
	if !ok || time.Now().After(entry.expiresAt) {
		return nil
	}
	m := entry.material
	return &m
}

// set stores a material with the cache TTL.
func (c *materialCache) set(material model.Material) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[material.MaterialID] = materialCacheEntry{
		material:  material,
		expiresAt: time.Now().Add(c.ttl),
	}
}

// invalidate clears the cache.
func (c *materialCache) invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]materialCacheEntry)
}

// Handler provides HTTP handlers for slitting calculation routes.
type Handler struct {
	calculator      service.PermutationCalculator
	materialService service.MaterialService
	materialCache   *materialCache
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithMaterialCacheTTL sets the TTL for material catalog caching.
func WithMaterialCacheTTL(ttl time.Duration) HandlerOption {
	return func(h *Handler) {
		h.materialCache = newMaterialCache(ttl)
	}
}

// NewHandler creates a new Handler instance.
func NewHandler(calculator service.PermutationCalculator, materialService service.MaterialService, opts ...HandlerOption) *Handler {
	h := &Handler{
		calculator:      calculator,
		materialService: materialService,
		materialCache:   newMaterialCache(30 * time.Second),
	}

	for _, opt := range opts {
		opt(h)
	}

	return h
}

// getMaterial resolves a material from cache or the catalog service.
// Returns nil when the material does not exist.
func (h *Handler) getMaterial(ctx context.Context, materialID string) (*model.Material, error) {
	if cached := h.materialCache.get(materialID); cached != nil {
		return cached, nil
	}

	if h.materialService == nil {
		return nil, service.ErrRepositoryNotConfigured
	}

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	material, err := h.materialService.GetByID(ctx, materialID)
	if err != nil || material == nil {
		return nil, err
	}

	h.materialCache.set(*material)
	return material, nil
}

// InvalidateMaterialCache invalidates the material cache.
// Call this when the catalog is updated.
func (h *Handler) InvalidateMaterialCache() {
	h.materialCache.invalidate()
}

// calculatedBy derives the caller identity stamped on results from the JWT
// claims set by the auth middleware.
func calculatedBy(c *gin.Context) string {
	if email, ok := c.Get("user_email"); ok {
		if s, ok := email.(string); ok && s != "" {
			return s
		}
	}
	if name, ok := c.Get("user_name"); ok {
		if s, ok := name.(string); ok && s != "" {
			return s
		}
	}
	return "anonymous"
}

// validationKey maps a field validation error to its translation key.
func validationKey(err *dto.ValidationError) string {
	switch err.Field {
	case "desired_slit_widths":
		return i18n.ErrKeyValidationSlitWidths
	case "quantity_master_rolls":
		return i18n.ErrKeyValidationQuantity
	default:
		return i18n.ErrKeyInvalidRequest
	}
}

// CalculatePermutations handles POST /api/calculate requests.
//
// @Summary      Calculate slitting patterns for a material
// @Description  Enumerates every feasible combination of the desired slit widths across the material's usable width, ranks the patterns by yield and attaches a weight and cost breakdown per pattern. Supports idempotency via Idempotency-Key header.
// @Tags         Slitting
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key header string false "Idempotency key for request deduplication"
// @Param        request body dto.CalculatePermutationsRequest true "Calculation parameters"
// @Success      200 {object} dto.SuccessResponse "Successful calculation"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Param        Authorization header string false "Bearer token (required if auth enabled)"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid JWT token"
// @Failure      404 {object} dto.ErrorResponse "Material not found"
// @Failure      422 {object} dto.ErrorResponse "Search space too large"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Failure      503 {object} dto.ErrorResponse "Service unavailable"
// @Security     BearerAuth
// @Router       /api/calculate [post]
func (h *Handler) CalculatePermutations(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.CalculatePermutationsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	if err := req.Validate(); err != nil {
		if vErr, ok := err.(*dto.ValidationError); ok {
			metrics.RecordSlittingCalculation(0, "validation_error", 0)
			builder.Error(http.StatusBadRequest, validationKey(vErr), err)
		} else {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		}
		return
	}

	result, status, key, err := h.calculate(c, req)
	if err != nil {
		metrics.RecordSlittingCalculation(0, statusLabel(status), 0)
		builder.Error(status, key, err)
		return
	}

	builder.SuccessOK(result)
}

// calculate runs material resolution and the pattern calculation, returning
// the HTTP status and message key on failure.
func (h *Handler) calculate(c *gin.Context, req dto.CalculatePermutationsRequest) (*model.CalculationResult, int, string, error) {
	material, err := h.getMaterial(c.Request.Context(), req.MaterialID)
	if err != nil {
		return nil, http.StatusInternalServerError, i18n.ErrKeyInternalError, err
	}
	if material == nil {
		return nil, http.StatusNotFound, i18n.ErrKeyMaterialNotFound, &dto.ValidationError{
			Field:   "material_id",
			Message: "unknown material " + req.MaterialID,
		}
	}

	// Audit log (async)
	if loggingService, exists := c.Get("logging_service"); exists {
		if ls, ok := loggingService.(service.LoggingService); ok {
			middleware.AuditLog(ls, c, "calculate", "Slitting calculation requested", map[string]interface{}{
				"material_id":           req.MaterialID,
				"distinct_widths":       len(req.DesiredSlitWidths),
				"quantity_master_rolls": req.QuantityMasterRolls,
			})
		}
	}

	start := time.Now()
	result, err := h.calculator.Calculate(*material, model.PermutationRequest{
		MaterialID:          req.MaterialID,
		WasteAllowanceMM:    req.WasteAllowanceMM,
		DesiredSlitWidths:   req.DesiredSlitWidths,
		QuantityMasterRolls: req.QuantityMasterRolls,
	}, calculatedBy(c))
	duration := time.Since(start)

	if err != nil {
		switch {
		case err == service.ErrSearchSpaceTooLarge:
			return nil, http.StatusUnprocessableEntity, i18n.ErrKeySearchSpaceTooLarge, err
		case service.IsInvalidConfiguration(err):
			return nil, http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err
		default:
			return nil, http.StatusInternalServerError, i18n.ErrKeyInternalError, err
		}
	}

	metrics.RecordSlittingCalculation(duration, "success", result.TotalPermutationsFound)
	return result, 0, "", nil
}

// statusLabel maps an HTTP failure status to a metrics status label.
func statusLabel(status int) string {
	switch status {
	case http.StatusNotFound:
		return "material_not_found"
	case http.StatusUnprocessableEntity:
		return "search_space_too_large"
	case http.StatusBadRequest:
		return "validation_error"
	default:
		return "error"
	}
}
