//go:build !integration

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestTimeout(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		timeout        time.Duration
		handlerDelay   time.Duration
		expectedStatus int
		expectTimeout  bool
	}{
		{
			name:           "fast calculation completes within the deadline",
			timeout:        200 * time.Millisecond,
			handlerDelay:   10 * time.Millisecond,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "slow enumeration is cut off with 504",
			timeout:        50 * time.Millisecond,
			handlerDelay:   300 * time.Millisecond,
			expectedStatus: http.StatusGatewayTimeout,
			expectTimeout:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(RequestID(), TimeoutWithDuration(tt.timeout))
			router.POST("/api/calculate", func(c *gin.Context) {
				select {
				case <-time.After(tt.handlerDelay):
					c.JSON(http.StatusOK, gin.H{"pattern_count": 7})
				case <-c.Request.Context().Done():
					return
				}
			})

			req := httptest.NewRequest(http.MethodPost, "/api/calculate", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectTimeout {
				assert.Contains(t, w.Body.String(), "timeout")
			} else {
				assert.Contains(t, w.Body.String(), "pattern_count")
			}
		})
	}
}

func TestTimeout_HandlerSeesCancelledContext(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cancelled := make(chan struct{})

	router := gin.New()
	router.Use(TimeoutWithDuration(30 * time.Millisecond))
	router.GET("/api/materials", func(c *gin.Context) {
		<-c.Request.Context().Done()
		close(cancelled)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/materials", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	select {
	case <-cancelled:
	case <-time.After(time.Second):
		t.Fatal("handler context was never cancelled")
	}
	assert.Equal(t, http.StatusGatewayTimeout, w.Code)
}

func TestDefaultTimeoutConfig(t *testing.T) {
	cfg := DefaultTimeoutConfig()

	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.NotEmpty(t, cfg.ErrorMessage)
}
