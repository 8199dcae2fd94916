package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"ricemill/internal/core/apperror"
	appctx "ricemill/internal/core/context"
)

// TokenValidator checks a bearer token and returns the operator context.
// Validation covers both the signature and the session revocation list.
type TokenValidator interface {
	Validate(ctx context.Context, tokenString string) (*appctx.UserContext, error)
}

// Auth validates bearer tokens and populates the operator context.
func Auth(validator TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, "missing authorization header")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			abortUnauthorized(c, "invalid authorization header format")
			return
		}

		user, err := validator.Validate(c.Request.Context(), parts[1])
		if err != nil {
			_ = c.Error(err)
			c.Abort()
			return
		}

		ctx := appctx.WithUser(c.Request.Context(), user)
		c.Request = c.Request.WithContext(ctx)
		c.Set("username", user.Username)

		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, message string) {
	_ = c.Error(apperror.NewUnauthorized(message))
	c.Abort()
}
