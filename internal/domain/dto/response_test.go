package dto

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewError(t *testing.T) {
	resp := NewError(ErrCodeInvalidRequest, "desired_slit_widths: must contain at least one width")

	assert.False(t, resp.Success)
	assert.Equal(t, ErrCodeInvalidRequest, resp.Error)
	assert.Equal(t, "desired_slit_widths: must contain at least one width", resp.Message)
	assert.False(t, resp.Timestamp.IsZero())
	assert.Empty(t, resp.RequestID)
}

func TestErrorResponse_WithRequestID(t *testing.T) {
	resp := NewError(ErrCodeNotFound, "material not found").WithRequestID("req-123")

	assert.Equal(t, "req-123", resp.RequestID)
	assert.Equal(t, ErrCodeNotFound, resp.Error)
}

func TestErrCodeFromStatus(t *testing.T) {
	tests := []struct {
		status int
		want   string
	}{
		{http.StatusBadRequest, ErrCodeInvalidRequest},
		{http.StatusUnauthorized, ErrCodeUnauthorized},
		{http.StatusForbidden, ErrCodeForbidden},
		{http.StatusNotFound, ErrCodeNotFound},
		{http.StatusConflict, ErrCodeConflict},
		{http.StatusTooManyRequests, ErrCodeRateLimit},
		{http.StatusUnprocessableEntity, ErrCodeSearchSpaceTooLarge},
		{http.StatusRequestTimeout, ErrCodeTimeout},
		{http.StatusGatewayTimeout, ErrCodeTimeout},
		{http.StatusInternalServerError, ErrCodeInternal},
		{http.StatusBadGateway, ErrCodeInternal},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ErrCodeFromStatus(tt.status), "status %d", tt.status)
	}
}
