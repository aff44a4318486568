// Package middleware contains echo middleware for the HTTP delivery.
package middleware

import (
	"strings"

	"rewear/internal/domain/entity"
	"rewear/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"rewear/internal/delivery/http/response"
)

const (
	// ContextKeyUserID is where Authenticate stores the caller's id.
	ContextKeyUserID = "userID"
	// ContextKeyRole is where Authenticate stores the caller's role.
	ContextKeyRole = "role"
)

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate is the core middleware function that validates the JWT access token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "INVALID_TOKEN_FORMAT", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.Validate(tokenString)
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		// Set user info on the context for handlers to use
		c.Set(ContextKeyUserID, claims.UserID)
		c.Set(ContextKeyRole, claims.Role)

		return next(c)
	}
}

// RequireRole is a middleware factory that checks the caller holds one of the
// given roles. It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(roles ...entity.Role) echo.MiddlewareFunc {
	allowed := entity.Roles(roles)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := c.Get(ContextKeyRole).(entity.Role)
			if !ok {
				return response.Forbidden(c, "ROLE_MISSING", "Permission denied: role information missing")
			}

			if !allowed.Contains(role) {
				return response.Forbidden(c, "ROLE_FORBIDDEN", "Permission denied: insufficient role")
			}

			return next(c)
		}
	}
}

// RequireModerator allows only the admin and owner roles through.
func (m *AuthMiddleware) RequireModerator() echo.MiddlewareFunc {
	return m.RequireRole(entity.RoleAdmin, entity.RoleOwner)
}

// UserID extracts the authenticated caller's id from echo.Context.
func UserID(c echo.Context) (uuid.UUID, bool) {
	id, ok := c.Get(ContextKeyUserID).(uuid.UUID)

	return id, ok
}

// Role extracts the authenticated caller's role from echo.Context.
func Role(c echo.Context) (entity.Role, bool) {
	role, ok := c.Get(ContextKeyRole).(entity.Role)

	return role, ok
}
