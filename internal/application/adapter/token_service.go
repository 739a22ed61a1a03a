package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/strategic-planning/backend/internal/domain/entity"
)

// TokenClaims represents the claims contained in an access token.
type TokenClaims struct {
	UserID         uuid.UUID
	Name           string
	Email          string
	OrganizationID int64
	Role           entity.UserRole
	ExpiresAt      time.Time
}

// TokenService defines the interface for access token operations.
// Tokens are issued by the identity service; this service only signs them for tooling and tests.
type TokenService interface {
	// IssueAccessToken signs an access token carrying the claims.
	IssueAccessToken(ctx context.Context, claims TokenClaims, ttl time.Duration) (string, error)

	// ValidateAccessToken validates an access token and returns its claims.
	ValidateAccessToken(ctx context.Context, token string) (*TokenClaims, error)
}
