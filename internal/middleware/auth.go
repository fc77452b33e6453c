package middleware

import (
	"net/http"

	"github.com/Adela-Cal/Misty-Manufacturing-sub002/internal/domain/dto"
	"github.com/Adela-Cal/Misty-Manufacturing-sub002/internal/i18n"
	"github.com/gin-gonic/gin"
)

const (
	// APIKeyHeader is the header checked first for the API key.
	APIKeyHeader = "X-API-Key"
	// APIKeyQuery is the fallback query parameter, used by export links
	// that cannot set headers.
	APIKeyQuery = "api_key"
)

// APIKeyAuth validates API keys against the configured set. A nil or empty
// set disables authentication entirely, which is how local development runs.
func APIKeyAuth(validKeys map[string]bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if len(validKeys) == 0 {
			c.Next()
			return
		}

		key := c.GetHeader(APIKeyHeader)
		if key == "" {
			key = c.Query(APIKeyQuery)
		}

		switch {
		case key == "":
			rejectAPIKey(c, i18n.ErrKeyAPIKeyRequired)
		case !validKeys[key]:
			rejectAPIKey(c, i18n.ErrKeyInvalidAPIKey)
		default:
			c.Next()
		}
	}
}

func rejectAPIKey(c *gin.Context, messageKey string) {
	message := i18n.GetTranslator().Translate(messageKey, i18n.GetLocale(c))
	errorResp := dto.NewError(dto.ErrCodeUnauthorized, message).
		WithRequestID(GetRequestID(c))
	c.AbortWithStatusJSON(http.StatusUnauthorized, errorResp)
}
