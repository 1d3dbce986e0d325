// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"erpgate/config"
	"erpgate/internal/domain/service"
	"erpgate/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const tokenIssuer = "erpgate"

// jwtService is a concrete implementation of the TokenService interface using HS256 JWTs.
type jwtService struct {
	accessSecret  []byte
	refreshSecret []byte
	refreshTTL    time.Duration
	now           func() time.Time
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" || cfg.SecretKey.Refresh == "" {
		return nil, errors.New("jwt secrets must be provided")
	}

	refreshTTL := 7 * 24 * time.Hour
	if cfg.Auth != nil && cfg.Auth.RefreshTTL > 0 {
		refreshTTL = cfg.Auth.RefreshTTL
	}

	return &jwtService{
		accessSecret:  []byte(cfg.SecretKey.Access),
		refreshSecret: []byte(cfg.SecretKey.Refresh),
		refreshTTL:    refreshTTL,
		now:           time.Now,
	}, nil
}

// GenerateTokens signs an access token expiring at accessExpiresAt and a refresh token that
// outlives it by at least the refresh TTL.
func (s *jwtService) GenerateTokens(identity service.Identity, accessExpiresAt time.Time) (*service.TokenPair, error) {
	now := s.now()
	if !accessExpiresAt.After(now) {
		return nil, errors.New("access expiry must be in the future")
	}

	refreshExpiresAt := now.Add(s.refreshTTL)
	if refreshExpiresAt.Before(accessExpiresAt) {
		refreshExpiresAt = accessExpiresAt
	}

	access, err := s.sign(identity, service.TokenTypeAccess, now, accessExpiresAt, s.accessSecret)
	if err != nil {
		return nil, err
	}

	refresh, err := s.sign(identity, service.TokenTypeRefresh, now, refreshExpiresAt, s.refreshSecret)
	if err != nil {
		return nil, err
	}

	return &service.TokenPair{
		Access:           access,
		Refresh:          refresh,
		AccessExpiresAt:  accessExpiresAt,
		RefreshExpiresAt: refreshExpiresAt,
	}, nil
}

func (s *jwtService) ValidateAccessToken(tokenString string) (*service.Claims, error) {
	return s.validate(tokenString, service.TokenTypeAccess, s.accessSecret)
}

func (s *jwtService) ValidateRefreshToken(tokenString string) (*service.Claims, error) {
	return s.validate(tokenString, service.TokenTypeRefresh, s.refreshSecret)
}

// HashToken returns the hex SHA-256 of the token, the form in which tokens are stored.
func (s *jwtService) HashToken(tokenString string) string {
	sum := sha256.Sum256([]byte(tokenString))

	return hex.EncodeToString(sum[:])
}

func (s *jwtService) sign(identity service.Identity, tokenType service.TokenType, issuedAt, expiresAt time.Time, secret []byte) (string, error) {
	claims := service.Claims{
		RemoteUserID: identity.RemoteUserID,
		Username:     identity.Username,
		SessionID:    identity.SessionID,
		Type:         tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(), // Makes every rotated token distinct.
			Issuer:    tokenIssuer,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		return "", errors.Wrap(err, "sign token")
	}

	return signed, nil
}

func (s *jwtService) validate(tokenString string, want service.TokenType, secret []byte) (*service.Claims, error) {
	claims := &service.Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, errors.Wrap(err, "parse token")
	}

	if claims.Type != want {
		return nil, errors.Errorf("token type %q, want %q", claims.Type, want)
	}
	if claims.RemoteUserID <= 0 || claims.Username == "" || claims.SessionID == "" {
		return nil, errors.New("token is missing identity claims")
	}

	return claims, nil
}
