// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"time"

	"erpgate/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	// ErrCredentialNotFound is returned when no credential matches the lookup,
	// including a rotation whose expected refresh digest no longer matches.
	ErrCredentialNotFound = errors.New("credential not found")
	// ErrPrincipalNotFound is returned when no principal exists for a remote identity.
	ErrPrincipalNotFound = errors.New("principal not found")
)

// CredentialRepository persists issued credentials.
type CredentialRepository interface {
	// CreateCredential persists a new credential and fills in generated fields.
	CreateCredential(ctx context.Context, credential *entity.Credential) error

	FindCredentialByID(ctx context.Context, id uuid.UUID) (*entity.Credential, error)

	// FindCredentialByAccessHash retrieves the credential whose access token digest matches.
	FindCredentialByAccessHash(ctx context.Context, accessHash string) (*entity.Credential, error)

	// FindCredentialByRefreshHash retrieves the credential whose refresh token digest matches.
	FindCredentialByRefreshHash(ctx context.Context, refreshHash string) (*entity.Credential, error)

	// RotateCredentialTokens swaps the token digests and expiry of a credential, but only while
	// its refresh digest still equals expectedRefreshHash. Otherwise ErrCredentialNotFound.
	RotateCredentialTokens(ctx context.Context, id uuid.UUID, expectedRefreshHash, accessHash, refreshHash string, expiresAt time.Time) error

	// DeleteCredential removes a credential together with every allow-list row it owns.
	DeleteCredential(ctx context.Context, id uuid.UUID) error

	// FindCredentialIDsExpiredBefore lists credentials whose expiry is before the given time.
	FindCredentialIDsExpiredBefore(ctx context.Context, before time.Time) ([]uuid.UUID, error)
}

// PrincipalRepository persists the local records of remote identities.
type PrincipalRepository interface {
	// UpsertPrincipal creates the principal for its remote identity or refreshes its login.
	UpsertPrincipal(ctx context.Context, principal *entity.Principal) error

	FindPrincipalByRemoteUserID(ctx context.Context, remoteUserID int64) (*entity.Principal, error)
}
