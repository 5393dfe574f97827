package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenType distinguishes access from refresh tokens.
type TokenType string

const (
	TokenTypeAccess  TokenType = "access"
	TokenTypeRefresh TokenType = "refresh"
)

// Claims are the JWT claims issued by the service.
type Claims struct {
	Type TokenType `json:"type"`
	jwt.RegisteredClaims
}

// UserID parses the subject claim.
func (c *Claims) UserID() (uuid.UUID, error) {
	return uuid.Parse(c.Subject)
}

// TokenPair is what login and refresh return.
type TokenPair struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	ExpiresAt    time.Time `json:"expires_at"`
}

// TokenService issues and validates bearer tokens.
type TokenService interface {
	// GenerateTokens creates an access/refresh pair for userID.
	GenerateTokens(userID uuid.UUID) (*TokenPair, error)

	// ValidateToken parses tokenString and checks it was issued as tokenType.
	ValidateToken(tokenString string, tokenType TokenType) (*Claims, error)
}
