package middleware

import (
	"context"
	"time"

	"github.com/Adela-Cal/Misty-Manufacturing-sub002/internal/domain/model"
	"github.com/Adela-Cal/Misty-Manufacturing-sub002/internal/service"
	"github.com/gin-gonic/gin"
)

// AuditLog records a user action in the audit trail. Handlers call it for
// the actions operators care about reconstructing later: pattern
// calculations, exports, and material catalog edits.
func AuditLog(loggingService service.LoggingService, c *gin.Context, actionType, message string, fields map[string]interface{}) {
	writeAudit(loggingService, buildAuditEntry(c, "info", actionType, message, fields))
}

// AuditLogError records a failed user action, keeping the underlying error
// alongside the request context.
func AuditLogError(loggingService service.LoggingService, c *gin.Context, actionType, message string, err error, fields map[string]interface{}) {
	entry := buildAuditEntry(c, "error", actionType, message, fields)
	entry.Error = err.Error()
	writeAudit(loggingService, entry)
}

func buildAuditEntry(c *gin.Context, level, actionType, message string, fields map[string]interface{}) *model.LogEntry {
	entry := &model.LogEntry{
		Timestamp:  time.Now(),
		Level:      level,
		Message:    message,
		RequestID:  GetRequestID(c),
		Method:     c.Request.Method,
		Path:       c.Request.URL.Path,
		IP:         c.ClientIP(),
		UserAgent:  c.Request.UserAgent(),
		ActionType: actionType,
		Fields:     fields,
	}
	attachUser(c, entry)
	return entry
}

// writeAudit persists the entry without blocking the request, preferring
// the shared async writer when one is running.
func writeAudit(loggingService service.LoggingService, entry *model.LogEntry) {
	if loggingService == nil {
		return
	}

	if asyncLogger := GetAsyncLogger(); asyncLogger != nil {
		asyncLogger.Log(entry)
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = loggingService.CreateLog(ctx, entry)
	}()
}
