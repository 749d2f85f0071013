package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/atelier-works/portfolio-api/internal/auth"
)

type envelope struct {
	Error   bool   `json:"error"`
	Status  int    `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

func abortAuth(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, envelope{Error: true, Status: status, Message: message})
}

func bearerToken(c *gin.Context) string {
	h := c.GetHeader("Authorization")
	if !strings.HasPrefix(h, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
}

func requireAccess(issuer *auth.Issuer, required auth.TokenType) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			abortAuth(c, http.StatusUnauthorized, "Access token is required")
			return
		}

		claims, err := issuer.Verify(token, required)
		if err != nil {
			switch {
			case errors.Is(err, auth.ErrTokenExpired):
				abortAuth(c, http.StatusUnauthorized, "Token has expired")
			case errors.Is(err, auth.ErrWrongCapability):
				// a syntactically valid token of the wrong capability is a
				// permissions problem, not an authentication problem
				abortAuth(c, http.StatusForbidden, "Write access required")
			default:
				abortAuth(c, http.StatusUnauthorized, "Invalid token")
			}
			return
		}

		c.Set("token_type", string(claims.Type))
		c.Next()
	}
}

// RequireReadAccess admits read-tagged tokens only.
func RequireReadAccess(issuer *auth.Issuer) gin.HandlerFunc {
	return requireAccess(issuer, auth.TokenRead)
}

// RequireWriteAccess admits write-tagged tokens only.
func RequireWriteAccess(issuer *auth.Issuer) gin.HandlerFunc {
	return requireAccess(issuer, auth.TokenWrite)
}
