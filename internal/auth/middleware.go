package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ukozhakova/Django2021-Endterm/internal/models"
	"github.com/ukozhakova/Django2021-Endterm/internal/repos"
)

const contextUserKey = "current_user"

func bearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	return token, token != ""
}

func resolveUser(c *gin.Context) (*models.User, bool) {
	raw, ok := bearerToken(c)
	if !ok {
		return nil, false
	}
	claims, err := ParseToken(raw, TokenTypeAccess)
	if err != nil {
		return nil, false
	}
	user, err := repos.UserByID(claims.UserID)
	if err != nil {
		return nil, false
	}
	return &user, true
}

// RequireAuth rejects requests without a valid access bearer token and
// injects the authenticated user into the context.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := resolveUser(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		c.Set(contextUserKey, user)
		c.Next()
	}
}

// OptionalAuth resolves the principal when credentials are present but never
// rejects: absent or invalid credentials yield an anonymous principal so
// public endpoints stay reachable.
func OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if user, ok := resolveUser(c); ok {
			c.Set(contextUserKey, user)
		}
		c.Next()
	}
}

// RequireStaff must run after RequireAuth.
func RequireStaff() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok || !user.IsStaff {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "staff access required"})
			return
		}
		c.Next()
	}
}

// CurrentUser returns the resolved principal, or false for anonymous.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	value, exists := c.Get(contextUserKey)
	if !exists {
		return nil, false
	}
	user, ok := value.(*models.User)
	return user, ok && user != nil
}
