package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"socialstream/internal/auth"
	"socialstream/internal/http/dto"
	"socialstream/internal/http/resp"
)

const identityKey = "identity"

// RequireAuth verifies the bearer token and stores the caller's identity in
// the request context.
func RequireAuth(verifier *auth.Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Code: resp.CodeUnauthorized, Message: "missing bearer token"})
			return
		}
		identity, err := verifier.Verify(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Code: resp.CodeUnauthorized, Message: "invalid token"})
			return
		}
		c.Set(identityKey, identity)
		c.Next()
	}
}

// Identity returns the verified caller stored by RequireAuth.
func Identity(c *gin.Context) (auth.Identity, bool) {
	value, ok := c.Get(identityKey)
	if !ok {
		return auth.Identity{}, false
	}
	identity, ok := value.(auth.Identity)
	return identity, ok
}
