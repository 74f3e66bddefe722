package session

import (
	"net/http"
	"strings"

	"rental-storefront/internal/model"
	"rental-storefront/internal/rentalapi"

	"github.com/gin-gonic/gin"
)

const userContextKey = "sessionUser"

// Middleware authenticates a request against the session JWT and injects the
// stored identity. The remote API token rides the request context from here,
// so every outbound call downstream is made as the logged-in user.
func (m *Manager) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, model.ErrorResponse{
				Error: "missing bearer token",
				Code:  "UNAUTHORIZED",
			})
			return
		}

		user, err := m.Resolve(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, model.ErrorResponse{
				Error: "invalid or expired session",
				Code:  "UNAUTHORIZED",
			})
			return
		}

		c.Set(userContextKey, user)
		c.Request = c.Request.WithContext(rentalapi.WithToken(c.Request.Context(), user.Token))
		c.Next()
	}
}

// CurrentUser returns the authenticated user set by Middleware.
func CurrentUser(c *gin.Context) *model.User {
	if v, ok := c.Get(userContextKey); ok {
		if user, ok := v.(*model.User); ok {
			return user
		}
	}
	return nil
}
