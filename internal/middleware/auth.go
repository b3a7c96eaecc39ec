package middleware

import (
	"context"
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"ledger/internal/auth"
	apperrors "ledger/internal/errors"
	"ledger/internal/models"
)

// Context keys set by AuthMiddleware.
const (
	UserIDKey = "userID"
	EmailKey  = "email"
)

// TokenVerifier verifies a bearer token and returns its claims.
type TokenVerifier interface {
	Verify(token string) (*auth.Claims, error)
}

// UserLookup resolves a user by ID. Used to reject tokens whose user no
// longer exists.
type UserLookup interface {
	GetUserByID(ctx context.Context, id string) (*models.User, error)
}

// AuthMiddleware verifies the bearer token and sets the user in the context.
//
// A missing or malformed Authorization header aborts with 401. A token that
// fails verification aborts with 403. When users is non-nil the token's user
// must still exist, otherwise the request is also rejected with 403.
func AuthMiddleware(verifier TokenVerifier, users UserLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			abortWithError(c, apperrors.ErrUnauthenticated)
			return
		}

		claims, err := verifier.Verify(token)
		if err != nil {
			abortWithError(c, err)
			return
		}

		if users != nil {
			if _, err := users.GetUserByID(c.Request.Context(), claims.UserID); err != nil {
				if errors.Is(err, apperrors.ErrUserNotFound) {
					err = apperrors.ErrForbidden
				}
				abortWithError(c, err)
				return
			}
		}

		c.Set(UserIDKey, claims.UserID)
		c.Set(EmailKey, claims.Email)
		c.Next()
	}
}

// bearerToken extracts the token from a "Bearer <token>" header value.
func bearerToken(header string) (string, bool) {
	parts := strings.Split(header, " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

// abortWithError records err for ErrorHandler and stops the chain.
func abortWithError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}
