//go:build !integration

package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Adela-Cal/Misty-Manufacturing-sub002/internal/circuitbreaker"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func probeReadiness(t *testing.T, handler *HealthHandler) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	router := gin.New()
	handler.Register(router)

	req := httptest.NewRequest(http.MethodGet, "/readyz", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w, body
}

func TestHealthHandler_Liveness(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	NewHealthHandler().Register(router)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestHealthHandler_Readiness(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("no registered dependencies", func(t *testing.T) {
		w, body := probeReadiness(t, NewHealthHandler())

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "ok", body["status"])
		checks := body["checks"].(map[string]interface{})
		assert.Equal(t, "ok", checks["service"])
	})

	t.Run("healthy checker and closed circuit", func(t *testing.T) {
		handler := NewHealthHandler()
		handler.RegisterChecker("mongodb", CheckerFunc(func() error { return nil }))
		handler.RegisterCircuitBreaker("mongodb_materials", circuitbreaker.New(circuitbreaker.DefaultConfig()))

		w, body := probeReadiness(t, handler)

		assert.Equal(t, http.StatusOK, w.Code)
		checks := body["checks"].(map[string]interface{})
		assert.Equal(t, "ok", checks["mongodb"])
		assert.Equal(t, "closed", checks["mongodb_materials_circuit"])
	})

	t.Run("failing checker degrades readiness", func(t *testing.T) {
		handler := NewHealthHandler()
		handler.RegisterChecker("mongodb", CheckerFunc(func() error {
			return errors.New("server selection timeout")
		}))

		w, body := probeReadiness(t, handler)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Equal(t, "degraded", body["status"])
		checks := body["checks"].(map[string]interface{})
		assert.Equal(t, "server selection timeout", checks["mongodb"])
	})

	t.Run("open circuit degrades readiness", func(t *testing.T) {
		cb := circuitbreaker.New(circuitbreaker.Config{
			FailureThreshold: 1,
			SuccessThreshold: 1,
			Timeout:          time.Hour,
			Name:             "mongodb_materials",
		})
		// Trip the breaker.
		_ = cb.Execute(context.Background(), func() error { return errors.New("down") })

		handler := NewHealthHandler()
		handler.RegisterCircuitBreaker("mongodb_materials", cb)

		w, body := probeReadiness(t, handler)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		checks := body["checks"].(map[string]interface{})
		assert.Equal(t, "open", checks["mongodb_materials_circuit"])
	})
}
