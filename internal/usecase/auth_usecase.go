// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"
)

// --- Input DTOs ---

// LoginInput defines the data required to authenticate against the remote backend.
type LoginInput struct {
	Username string
	Password string
}

// RotateInput exchanges a refresh token for a new pair. Days defaults to 1 when nil.
type RotateInput struct {
	RefreshToken string
	Days         *int
}

// --- Output DTOs ---

// LoginOutput carries the serialized login result. Payload is written to the client as-is,
// so a cache hit is byte-identical to the response that populated the cache.
type LoginOutput struct {
	Payload []byte
	Cached  bool
}

// RotateOutput is the freshly signed pair.
type RotateOutput struct {
	Access    string
	Refresh   string
	ExpiresAt time.Time
}

// AuthUsecase issues credentials from a remote login.
type AuthUsecase interface {
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)
}

// RotationUsecase re-signs credentials without contacting the remote backend.
type RotationUsecase interface {
	Rotate(ctx context.Context, input RotateInput) (*RotateOutput, error)
}
