package repository

import (
	"context"

	"erpgate/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrScopeNotFound is returned when a credential has no scope row for a resource type.
var ErrScopeNotFound = errors.New("permission scope not found")

// PermissionRepository persists the allow-lists owned by a credential.
type PermissionRepository interface {
	FindOrigins(ctx context.Context, credentialID uuid.UUID) ([]string, error)

	FindEndpoints(ctx context.Context, credentialID uuid.UUID) ([]string, error)

	// FindScope returns the scope for (credential, resource type) or ErrScopeNotFound.
	FindScope(ctx context.Context, credentialID uuid.UUID, resourceType string) (*entity.PermissionScope, error)

	FindScopes(ctx context.Context, credentialID uuid.UUID) ([]*entity.PermissionScope, error)

	// DeleteGrants removes every origin, endpoint and scope of a credential.
	DeleteGrants(ctx context.Context, credentialID uuid.UUID) error

	// AddOrigins inserts the origins the credential does not have yet.
	AddOrigins(ctx context.Context, credentialID uuid.UUID, origins []string) error

	// AddEndpoints inserts the endpoints the credential does not have yet.
	AddEndpoints(ctx context.Context, credentialID uuid.UUID, endpoints []string) error

	// SaveScope inserts the scope or overwrites every flag of the existing
	// row for the same (credential, resource type).
	SaveScope(ctx context.Context, scope *entity.PermissionScope) error
}
