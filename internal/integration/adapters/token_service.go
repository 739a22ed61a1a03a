// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/strategic-planning/backend/internal/application/adapter"
	"github.com/strategic-planning/backend/internal/domain/entity"
	domainerror "github.com/strategic-planning/backend/internal/domain/error"
)

const (
	tokenIssuer     = "strategic-planning"
	tokenTypeAccess = "access"
)

// CustomClaims represents the custom claims for JWT tokens.
type CustomClaims struct {
	UserID         string `json:"user_id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	OrganizationID string `json:"organization_id"`
	Role           string `json:"role"`
	TokenType      string `json:"token_type"`
	jwt.RegisteredClaims
}

// tokenService implements the adapter.TokenService interface.
type tokenService struct {
	secret []byte
}

// NewTokenService creates a new token service instance.
func NewTokenService(secret string) adapter.TokenService {
	return &tokenService{
		secret: []byte(secret),
	}
}

// IssueAccessToken signs an access token carrying the claims.
func (s *tokenService) IssueAccessToken(_ context.Context, claims adapter.TokenClaims, ttl time.Duration) (string, error) {
	now := time.Now().UTC()
	custom := CustomClaims{
		UserID:         claims.UserID.String(),
		Name:           claims.Name,
		Email:          claims.Email,
		OrganizationID: strconv.FormatInt(claims.OrganizationID, 10),
		Role:           string(claims.Role),
		TokenType:      tokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    tokenIssuer,
			Subject:   claims.UserID.String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, custom)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign access token: %w", err)
	}
	return signed, nil
}

// ValidateAccessToken validates an access token and returns its claims.
func (s *tokenService) ValidateAccessToken(_ context.Context, token string) (*adapter.TokenClaims, error) {
	claims, err := s.parseJWT(token)
	if err != nil {
		return nil, err
	}

	if claims.TokenType != tokenTypeAccess {
		return nil, domainerror.NewAuthError(domainerror.ErrCodeInvalidToken, "expected access token", domainerror.ErrInvalidToken)
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, domainerror.NewAuthError(domainerror.ErrCodeInvalidToken, "invalid user ID in token", domainerror.ErrInvalidToken)
	}

	organizationID, err := strconv.ParseInt(claims.OrganizationID, 10, 64)
	if err != nil || organizationID <= 0 {
		return nil, domainerror.NewAuthError(domainerror.ErrCodeMissingOrganization, "token has no organization", domainerror.ErrMissingOrganization)
	}

	role := entity.UserRole(claims.Role)
	if !role.IsValid() {
		return nil, domainerror.NewAuthError(domainerror.ErrCodeForbiddenRole, fmt.Sprintf("unknown role %q", claims.Role), domainerror.ErrForbiddenRole)
	}

	return &adapter.TokenClaims{
		UserID:         userID,
		Name:           claims.Name,
		Email:          claims.Email,
		OrganizationID: organizationID,
		Role:           role,
		ExpiresAt:      claims.ExpiresAt.Time,
	}, nil
}

// parseJWT parses and validates a JWT token.
func (s *tokenService) parseJWT(tokenString string) (*CustomClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &CustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithIssuer(tokenIssuer))

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domainerror.NewAuthError(domainerror.ErrCodeExpiredToken, "token has expired", domainerror.ErrExpiredToken)
		}
		return nil, domainerror.NewAuthError(domainerror.ErrCodeInvalidToken, "failed to parse token", errors.Join(domainerror.ErrInvalidToken, err))
	}

	claims, ok := token.Claims.(*CustomClaims)
	if !ok || !token.Valid {
		return nil, domainerror.NewAuthError(domainerror.ErrCodeInvalidToken, "invalid token claims", domainerror.ErrInvalidToken)
	}

	return claims, nil
}
