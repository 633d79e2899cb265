package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/julianmr/helpdesk-api/internal/auth"
	"github.com/julianmr/helpdesk-api/internal/constants"
	apierrors "github.com/julianmr/helpdesk-api/internal/errors"
	"github.com/julianmr/helpdesk-api/internal/models"
	"github.com/julianmr/helpdesk-api/internal/repository"
)

// RequireAuth resolves the Authorization header to a user record. The header
// may carry either a raw token or the "Bearer <token>" form. A missing user
// for a valid token (deleted or renamed account) is indistinguishable from a
// bad token: both yield 401.
func RequireAuth(tokens *auth.TokenService, users repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			apierrors.Unauthorized(c, "No token")
			c.Abort()
			return
		}

		token := header
		if strings.HasPrefix(header, "Bearer ") {
			parts := strings.Fields(header)
			if len(parts) >= 2 {
				token = parts[1]
			}
		}

		username, err := tokens.Validate(token)
		if err != nil {
			apierrors.Unauthorized(c, "Invalid token")
			c.Abort()
			return
		}

		user, err := users.FindByUsername(username)
		if err != nil {
			apierrors.Unauthorized(c, "Invalid token")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUser, user)
		c.Next()
	}
}

// RequireAdmin gates an endpoint behind the admin role. Must run after
// RequireAuth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}
		if !user.IsAdmin() {
			apierrors.Forbidden(c, "Admin role required")
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentUser retrieves the authenticated user from the request context
func CurrentUser(c *gin.Context) (*models.User, bool) {
	value, exists := c.Get(constants.ContextKeyUser)
	if !exists {
		return nil, false
	}
	user, ok := value.(*models.User)
	return user, ok
}
