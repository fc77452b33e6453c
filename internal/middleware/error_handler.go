package middleware

import (
	"net/http"

	"github.com/Adela-Cal/Misty-Manufacturing-sub002/internal/domain/dto"
	"github.com/Adela-Cal/Misty-Manufacturing-sub002/internal/i18n"
	"github.com/Adela-Cal/Misty-Manufacturing-sub002/internal/logger"
	"github.com/gin-gonic/gin"
)

// ErrorHandler logs every error a handler attached to the context after the
// chain completes. Handlers that already wrote a response (a 422 for an
// oversized search space, a 404 for an unknown material) keep their status;
// errors left unanswered become a generic translated 500.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last()
		requestID := GetRequestID(c)

		logger.Logger().Error().
			Str("request_id", requestID).
			Str("error", err.Error()).
			Str("path", c.Request.URL.Path).
			Str("method", c.Request.Method).
			Msg("Request error")

		if c.Writer.Written() {
			return
		}

		message := i18n.GetTranslator().Translate(i18n.ErrKeyInternalError, i18n.GetLocale(c))
		errorResp := dto.NewError(dto.ErrCodeInternal, message).
			WithRequestID(requestID)
		c.JSON(http.StatusInternalServerError, errorResp)
	}
}
