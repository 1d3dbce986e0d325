package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenType distinguishes access from refresh tokens inside the signed claims.
type TokenType string

const (
	TokenTypeAccess  TokenType = "access"
	TokenTypeRefresh TokenType = "refresh"
)

// Identity is what a credential is minted for. It survives rotation unchanged.
type Identity struct {
	RemoteUserID int64
	Username     string
	SessionID    string
}

// Claims defines the fixed claim set carried by every token.
type Claims struct {
	RemoteUserID int64     `json:"uid"`
	Username     string    `json:"username"`
	SessionID    string    `json:"session_id"`
	Type         TokenType `json:"typ"`
	jwt.RegisteredClaims
}

func (c *Claims) Identity() Identity {
	return Identity{
		RemoteUserID: c.RemoteUserID,
		Username:     c.Username,
		SessionID:    c.SessionID,
	}
}

// TokenPair is a freshly signed access/refresh pair.
type TokenPair struct {
	Access           string
	Refresh          string
	AccessExpiresAt  time.Time
	RefreshExpiresAt time.Time
}

// TokenService defines the interface for generating and validating JWTs.
type TokenService interface {
	// GenerateTokens signs a new pair for identity. The access token expires at accessExpiresAt.
	GenerateTokens(identity Identity, accessExpiresAt time.Time) (*TokenPair, error)

	// ValidateAccessToken verifies signature, expiry, token type and claim presence.
	ValidateAccessToken(tokenString string) (*Claims, error)

	// ValidateRefreshToken is ValidateAccessToken for refresh tokens.
	ValidateRefreshToken(tokenString string) (*Claims, error)

	// HashToken returns the digest under which a token is stored.
	HashToken(tokenString string) string
}
