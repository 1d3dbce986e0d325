package usecase

import (
	"context"
	"time"

	"erpgate/internal/domain/entity"

	"github.com/google/uuid"
)

// CredentialUsecase resolves presented credentials and administers stored ones.
type CredentialUsecase interface {
	// ResolveAccessToken verifies the token and returns its stored credential.
	ResolveAccessToken(ctx context.Context, accessToken string) (*entity.Credential, error)

	// Revoke deletes a credential and everything it owns.
	Revoke(ctx context.Context, id uuid.UUID) error

	// PurgeExpired revokes every credential that expired before the given time.
	PurgeExpired(ctx context.Context, before time.Time) (int, error)
}

// GuardUsecase evaluates the endpoint allow-list of a credential. The origin
// allow-list is checked by the resolver itself, ahead of any scope lookup.
type GuardUsecase interface {
	// CheckEndpoint returns ErrEndpointNotAllowed unless path is covered by an allowed endpoint.
	CheckEndpoint(ctx context.Context, credentialID uuid.UUID, path string) error
}
