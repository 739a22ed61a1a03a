// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/strategic-planning/backend/internal/application/adapter"
	"github.com/strategic-planning/backend/internal/domain/entity"
	domainerror "github.com/strategic-planning/backend/internal/domain/error"
	"github.com/strategic-planning/backend/internal/integration/entrypoint/dto"
)

// ContextKey is a type for context keys.
type ContextKey string

const (
	// UserIDKey is the context key for the authenticated user's ID.
	UserIDKey ContextKey = "user_id"
	// UserNameKey is the context key for the authenticated user's display name.
	UserNameKey ContextKey = "user_name"
	// UserEmailKey is the context key for the authenticated user's email.
	UserEmailKey ContextKey = "user_email"
	// OrganizationIDKey is the context key for the caller's organization.
	OrganizationIDKey ContextKey = "organization_id"
	// RoleKey is the context key for the caller's role.
	RoleKey ContextKey = "role"
)

// Caller is the authenticated identity attached to a request.
type Caller struct {
	UserID         uuid.UUID
	Name           string
	Email          string
	OrganizationID int64
	Role           entity.UserRole
}

// AuthMiddleware provides JWT authentication middleware.
type AuthMiddleware struct {
	tokenService adapter.TokenService
}

// NewAuthMiddleware creates a new auth middleware instance.
func NewAuthMiddleware(tokenService adapter.TokenService) *AuthMiddleware {
	return &AuthMiddleware{
		tokenService: tokenService,
	}
}

// Authenticate returns a Gin middleware handler that enforces JWT authentication.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, "Authorization header is required", domainerror.ErrCodeMissingToken)
			return
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			abortUnauthorized(c, "Invalid authorization header format", domainerror.ErrCodeInvalidToken)
			return
		}

		token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		if token == "" {
			abortUnauthorized(c, "Token is required", domainerror.ErrCodeMissingToken)
			return
		}

		claims, err := m.tokenService.ValidateAccessToken(c.Request.Context(), token)
		if err != nil {
			var authErr *domainerror.AuthError
			if errors.As(err, &authErr) {
				status := http.StatusUnauthorized
				if authErr.Code == domainerror.ErrCodeForbiddenRole {
					status = http.StatusForbidden
				}
				c.AbortWithStatusJSON(status, dto.ErrorResponse{
					Error: authErr.Message,
					Code:  string(authErr.Code),
				})
				return
			}
			abortUnauthorized(c, "Invalid or expired token", domainerror.ErrCodeInvalidToken)
			return
		}

		c.Set(string(UserIDKey), claims.UserID)
		c.Set(string(UserNameKey), claims.Name)
		c.Set(string(UserEmailKey), claims.Email)
		c.Set(string(OrganizationIDKey), claims.OrganizationID)
		c.Set(string(RoleKey), claims.Role)

		c.Next()
	}
}

// RequireRole rejects callers whose role is not in roles.
// It must run after Authenticate.
func RequireRole(roles ...entity.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller, ok := GetCallerFromContext(c)
		if !ok {
			abortUnauthorized(c, "User not authenticated", domainerror.ErrCodeMissingToken)
			return
		}

		for _, role := range roles {
			if caller.Role == role {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{
			Error: "Role " + string(caller.Role) + " cannot perform this action",
			Code:  string(domainerror.ErrCodeForbiddenRole),
		})
	}
}

func abortUnauthorized(c *gin.Context, message string, code domainerror.AuthErrorCode) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
		Error: message,
		Code:  string(code),
	})
}

// GetCallerFromContext returns the authenticated caller set by Authenticate.
func GetCallerFromContext(c *gin.Context) (Caller, bool) {
	userID, ok := GetUserIDFromContext(c)
	if !ok {
		return Caller{}, false
	}
	orgID, ok := GetOrganizationIDFromContext(c)
	if !ok {
		return Caller{}, false
	}

	caller := Caller{
		UserID:         userID,
		Name:           c.GetString(string(UserNameKey)),
		OrganizationID: orgID,
	}
	caller.Email, _ = GetUserEmailFromContext(c)
	if role, exists := c.Get(string(RoleKey)); exists {
		caller.Role, _ = role.(entity.UserRole)
	}
	return caller, true
}

// GetUserIDFromContext extracts the user ID from the Gin context.
func GetUserIDFromContext(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get(string(UserIDKey))
	if !exists {
		return uuid.Nil, false
	}
	id, ok := userID.(uuid.UUID)
	return id, ok
}

// GetUserEmailFromContext extracts the user email from the Gin context.
func GetUserEmailFromContext(c *gin.Context) (string, bool) {
	email, exists := c.Get(string(UserEmailKey))
	if !exists {
		return "", false
	}
	emailStr, ok := email.(string)
	return emailStr, ok
}

// GetOrganizationIDFromContext extracts the caller's organization from the Gin context.
func GetOrganizationIDFromContext(c *gin.Context) (int64, bool) {
	orgID, exists := c.Get(string(OrganizationIDKey))
	if !exists {
		return 0, false
	}
	id, ok := orgID.(int64)
	return id, ok && id > 0
}
