package middleware

import (
	"net/http"
	"strings"

	"github.com/PullStackDeveloper/ntd-calculator-user/internal/api/dto"
	"github.com/PullStackDeveloper/ntd-calculator-user/internal/core/domain"
	"github.com/PullStackDeveloper/ntd-calculator-user/internal/core/service"
	"github.com/gin-gonic/gin"
)

const (
	AuthHeaderKey  = "Authorization"
	AuthContextKey = "auth_user"
)

// AuthMiddleware gates every request behind a valid bearer token, except
// the login and registration paths which must stay reachable without one.
// The decision is a fresh per-request path match; no state is kept
// between requests.
func AuthMiddleware(authService *service.AuthService, exemptPaths ...string) gin.HandlerFunc {
	exempt := make(map[string]struct{}, len(exemptPaths))
	for _, p := range exemptPaths {
		exempt[p] = struct{}{}
	}

	return func(c *gin.Context) {
		if _, ok := exempt[c.Request.URL.Path]; ok {
			c.Next()
			return
		}

		authHeader := c.GetHeader(AuthHeaderKey)
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error:   "Unauthorized",
				Message: "Authorization header missing",
				Code:    http.StatusUnauthorized,
			})
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error:   "Unauthorized",
				Message: "Invalid authorization header format. Expected 'Bearer <token>'",
				Code:    http.StatusUnauthorized,
			})
			c.Abort()
			return
		}

		user, err := authService.ValidateToken(c.Request.Context(), parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error:   "Unauthorized",
				Message: err.Error(),
				Code:    http.StatusUnauthorized,
			})
			c.Abort()
			return
		}

		c.Set(AuthContextKey, user)

		c.Next()
	}
}

// CurrentUser retrieves the authenticated user from context
func CurrentUser(c *gin.Context) (*domain.User, bool) {
	value, exists := c.Get(AuthContextKey)
	if !exists {
		return nil, false
	}

	user, ok := value.(*domain.User)
	return user, ok
}
