package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	pkgAuth "github.com/tidespring/breeze/internal/pkg/auth"
	"github.com/tidespring/breeze/internal/server/http/dto"
)

// UserIDContextKey is a gin context key for authenticated user identifier.
const UserIDContextKey = "userID"

// TokenParser verifies a bearer token and yields the authenticated user ID.
type TokenParser interface {
	ParseToken(token string) (int64, error)
}

// AuthRequired ensures the request carries a valid bearer token before the
// handler runs. The authenticated identity is stored in the gin context and
// read back via handlers.CurrentUserID.
func AuthRequired(parser TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Code:    dto.CodeMissingToken,
				Message: "authorization token is required",
			})
			return
		}

		userID, err := parser.ParseToken(token)
		if err != nil {
			code := dto.CodeInvalidToken
			if errors.Is(err, pkgAuth.ErrTokenExpired) {
				code = dto.CodeExpiredToken
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Code:    code,
				Message: "authorization token is not valid",
			})
			return
		}

		c.Set(UserIDContextKey, userID)
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(strings.ToLower(authHeader), "bearer ") {
		return strings.TrimSpace(authHeader[7:])
	}
	return ""
}
