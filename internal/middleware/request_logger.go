package middleware

import (
	"context"
	"time"

	"github.com/Adela-Cal/Misty-Manufacturing-sub002/internal/domain/model"
	"github.com/Adela-Cal/Misty-Manufacturing-sub002/internal/logger"
	"github.com/Adela-Cal/Misty-Manufacturing-sub002/internal/service"
	"github.com/gin-gonic/gin"
)

// RequestLogger logs every request to the console and, when a logging
// service is configured, persists it to the audit store. Persistence goes
// through the async writer when one is initialised so the response is never
// held up by Mongo.
func RequestLogger(loggingService service.LoggingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := GetRequestID(c)

		c.Next()

		latency := time.Since(start)
		statusCode := c.Writer.Status()
		method := c.Request.Method
		path := c.Request.URL.Path
		ip := c.ClientIP()
		userAgent := c.Request.UserAgent()

		log := logger.Logger().With().
			Str("request_id", requestID).
			Str("method", method).
			Str("path", path).
			Int("status_code", statusCode).
			Int64("duration_ms", latency.Milliseconds()).
			Str("ip", ip).
			Str("user_agent", userAgent).
			Logger()

		switch {
		case statusCode >= 500:
			log.Error().Msg("HTTP request")
		case statusCode >= 400:
			log.Warn().Msg("HTTP request")
		default:
			log.Info().Msg("HTTP request")
		}

		if loggingService == nil {
			return
		}

		entry := &model.LogEntry{
			Timestamp:  time.Now(),
			Level:      levelForStatus(statusCode),
			Message:    "HTTP request",
			RequestID:  requestID,
			Method:     method,
			Path:       path,
			StatusCode: statusCode,
			Duration:   latency.Milliseconds(),
			IP:         ip,
			UserAgent:  userAgent,
		}
		attachUser(c, entry)

		if asyncLogger := GetAsyncLogger(); asyncLogger != nil {
			asyncLogger.Log(entry)
			return
		}

		// No async writer configured; spawn a one-off write so the
		// response still returns immediately.
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = loggingService.CreateLog(ctx, entry)
		}()
	}
}

// attachUser copies the authenticated identity, when the JWT middleware set
// one, onto the audit entry.
func attachUser(c *gin.Context, entry *model.LogEntry) {
	if userID, ok := c.Get("user_id"); ok {
		if id, ok := userID.(string); ok {
			entry.UserID = id
		}
	}
	if userEmail, ok := c.Get("user_email"); ok {
		if email, ok := userEmail.(string); ok {
			entry.UserEmail = email
		}
	}
}

func levelForStatus(statusCode int) string {
	switch {
	case statusCode >= 500:
		return "error"
	case statusCode >= 400:
		return "warn"
	default:
		return "info"
	}
}
