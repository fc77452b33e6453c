package middleware

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/Adela-Cal/Misty-Manufacturing-sub002/internal/domain/dto"
	"github.com/Adela-Cal/Misty-Manufacturing-sub002/internal/i18n"
	"github.com/gin-gonic/gin"
)

// TimeoutConfig holds configuration for the timeout middleware.
type TimeoutConfig struct {
	// Timeout bounds the total handler time. Pattern enumeration for wide
	// masters with many slit widths can run long, so this should stay above
	// the calculator's own search cutoff.
	Timeout time.Duration
	// ErrorMessage is the fallback body when no translator is installed.
	ErrorMessage string
}

// DefaultTimeoutConfig returns sensible defaults for the timeout middleware.
func DefaultTimeoutConfig() TimeoutConfig {
	return TimeoutConfig{
		Timeout:      30 * time.Second,
		ErrorMessage: "Request timeout",
	}
}

// Timeout aborts requests that exceed the configured duration with a 504.
// The handler keeps running in its goroutine until it observes the cancelled
// context; the response slot is simply no longer its to write.
func Timeout(cfg TimeoutConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), cfg.Timeout)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)

		// finished guards the race between the handler completing and the
		// deadline firing at the same instant.
		var mu sync.Mutex
		var finished bool

		done := make(chan struct{})

		go func() {
			defer func() {
				recover() //nolint:errcheck
				close(done)
			}()
			c.Next()
			mu.Lock()
			finished = true
			mu.Unlock()
		}()

		select {
		case <-done:
			return
		case <-ctx.Done():
			mu.Lock()
			defer mu.Unlock()
			if finished || c.Writer.Written() {
				return
			}
			writeTimeoutResponse(c, cfg.ErrorMessage)
		}
	}
}

func writeTimeoutResponse(c *gin.Context, fallback string) {
	message := fallback
	if translator := i18n.GetTranslator(); translator != nil {
		message = translator.Translate(i18n.ErrKeyTimeout, i18n.GetLocale(c))
	}

	errorResp := dto.NewError(dto.ErrCodeTimeout, message).
		WithRequestID(GetRequestID(c))
	c.AbortWithStatusJSON(http.StatusGatewayTimeout, errorResp)
}

// TimeoutWithDuration builds a timeout middleware with a specific duration.
func TimeoutWithDuration(timeout time.Duration) gin.HandlerFunc {
	cfg := DefaultTimeoutConfig()
	cfg.Timeout = timeout
	return Timeout(cfg)
}
