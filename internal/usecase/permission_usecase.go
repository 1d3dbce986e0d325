package usecase

import (
	"context"

	"github.com/google/uuid"
)

// ScopeInput is one requested scope. Nil flags are absent from the request.
type ScopeInput struct {
	ModelName  string
	CanCreate  *bool
	CanRead    *bool
	CanUpdate  *bool
	CanDelete  *bool
	CanApprove *bool
	CanReject  *bool
}

// PermissionsInput is the body of both permission operations.
type PermissionsInput struct {
	AllowedOrigins   []string
	AllowedEndpoints []string
	PermissionScopes []ScopeInput
}

// PermissionUsecase manages the allow-lists of a credential.
type PermissionUsecase interface {
	// ReplacePermissions swaps every origin, endpoint and scope for the given ones.
	ReplacePermissions(ctx context.Context, credentialID uuid.UUID, input PermissionsInput) error

	// PatchPermissions adds missing origins and endpoints and merges the given scope flags.
	PatchPermissions(ctx context.Context, credentialID uuid.UUID, input PermissionsInput) error
}
