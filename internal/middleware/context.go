package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/guttosm/freight-service/internal/domain/dto"
	"github.com/guttosm/freight-service/internal/logger"
)

// ContextKey names values stored on the gin context.
type ContextKey string

const (
	RequestIDKey  ContextKey = "request_id"
	UserIDKey     ContextKey = "user_id"
	UserEmailKey  ContextKey = "user_email"
	UserNameKey   ContextKey = "user_name"
	UserRoleKey   ContextKey = "user_role"
	UserClaimsKey ContextKey = "user_claims"
)

// setClaims stores the authenticated operator on the context.
func setClaims(c *gin.Context, claims *dto.Claims) {
	c.Set(string(UserIDKey), claims.UserID.Hex())
	c.Set(string(UserEmailKey), claims.Email)
	c.Set(string(UserNameKey), claims.Name)
	c.Set(string(UserRoleKey), claims.Role)
	c.Set(string(UserClaimsKey), claims)
}

// CurrentClaims returns the claims of the authenticated operator, if any.
func CurrentClaims(c *gin.Context) (*dto.Claims, bool) {
	v, ok := c.Get(string(UserClaimsKey))
	if !ok {
		return nil, false
	}
	claims, ok := v.(*dto.Claims)
	return claims, ok && claims != nil
}

// CurrentUserID returns the hex ID of the authenticated operator or "".
func CurrentUserID(c *gin.Context) string {
	return c.GetString(string(UserIDKey))
}

// CurrentUserEmail returns the email of the authenticated operator or "".
func CurrentUserEmail(c *gin.Context) string {
	return c.GetString(string(UserEmailKey))
}

// CurrentRole returns the role of the authenticated operator or "".
func CurrentRole(c *gin.Context) string {
	return c.GetString(string(UserRoleKey))
}

// requestLogger returns the logger RequestID put on the request context, or the global one.
func requestLogger(c *gin.Context) *zerolog.Logger {
	if l := zerolog.Ctx(c.Request.Context()); l.GetLevel() != zerolog.Disabled {
		return l
	}
	l := logger.Logger()
	return &l
}
