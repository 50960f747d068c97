package middleware

import (
	"github.com/SscSPs/investment_admin_core/internal/core/domain"
	"github.com/SscSPs/investment_admin_core/internal/utils"
	"github.com/gin-gonic/gin"
)

// APIKeyHeader carries the service API key.
const APIKeyHeader = "x-api-key"

// APITokenAuth authenticates back-office automation using a shared API key whose
// bcrypt hash is configured. A valid key makes the request act as serviceActor
// and skips JWT auth; an absent or wrong key falls through to JWT auth.
func APITokenAuth(keyHash string, serviceActor domain.Actor) gin.HandlerFunc {
	return func(c *gin.Context) {
		if keyHash == "" {
			c.Next()
			return
		}

		apiKey := c.GetHeader(APIKeyHeader)
		if apiKey == "" {
			c.Next() // No api key provided, let it continue
			return
		}

		if !utils.CheckAPIKey(apiKey, keyHash) {
			GetLoggerFromCtx(c.Request.Context()).Warn("API key rejected")
			c.Next()
			return
		}

		setActor(c, serviceActor, "api_token")
		c.Next()
	}
}
