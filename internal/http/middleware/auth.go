package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	userIDKey   = "user_id"
	userRoleKey = "user_role"
)

// AuthRequired accepts an HS256 bearer token issued by the auth service and
// stores its user_id claim on the context.
func AuthRequired(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := strings.TrimSpace(c.GetHeader("Authorization"))
		if len(raw) < 7 || !strings.EqualFold(raw[:7], "bearer ") {
			abortUnauthorized(c, "token tidak ada")
			return
		}

		claims := jwt.MapClaims{}
		_, err := jwt.ParseWithClaims(strings.TrimSpace(raw[7:]), claims, func(t *jwt.Token) (any, error) {
			return secret, nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
		if err != nil {
			msg := "token tidak valid"
			if errors.Is(err, jwt.ErrTokenExpired) {
				msg = "token kedaluwarsa"
			}
			abortUnauthorized(c, msg)
			return
		}

		uid, ok := claims["user_id"].(float64)
		if !ok || uid <= 0 {
			abortUnauthorized(c, "token tanpa user_id")
			return
		}
		c.Set(userIDKey, int64(uid))
		if role, ok := claims["role"].(string); ok {
			c.Set(userRoleKey, strings.ToLower(strings.TrimSpace(role)))
		}
		c.Next()
	}
}

// GetUserID returns the authenticated user id, 0 when the route is public.
func GetUserID(c *gin.Context) int64 {
	if v, ok := c.Get(userIDKey); ok {
		if id, ok := v.(int64); ok {
			return id
		}
	}
	return 0
}

// RequireRoles hanya mengizinkan token dengan role di allowedRoles.
// Dipasang setelah AuthRequired.
func RequireRoles(allowedRoles ...string) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[strings.ToLower(strings.TrimSpace(r))] = struct{}{}
	}

	return func(c *gin.Context) {
		role := c.GetString(userRoleKey)
		if role == "" {
			abortUnauthorized(c, "role tidak ditemukan pada token")
			return
		}
		if _, ok := allowed[role]; !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error":      "role tidak diizinkan",
				"code":       "forbidden",
				"request_id": GetRequestID(c),
			})
			return
		}
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error":      msg,
		"code":       "unauthorized",
		"request_id": GetRequestID(c),
	})
}
