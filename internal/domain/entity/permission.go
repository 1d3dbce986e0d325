package entity

import "github.com/google/uuid"

// AllowedOrigin is one hostname a credential may be used from.
type AllowedOrigin struct {
	ID           uuid.UUID
	CredentialID uuid.UUID
	Origin       string
}

// AllowedEndpoint is one path, or path prefix, a credential may call.
type AllowedEndpoint struct {
	ID           uuid.UUID
	CredentialID uuid.UUID
	Path         string
}

// PermissionScope is the operation matrix of a credential for one resource type.
type PermissionScope struct {
	ID           uuid.UUID
	CredentialID uuid.UUID
	ResourceType string
	CanCreate    bool
	CanRead      bool
	CanUpdate    bool
	CanDelete    bool
	CanApprove   bool
	CanReject    bool
}

// Allows reports whether the scope grants op.
func (s *PermissionScope) Allows(op Operation) bool {
	if s == nil {
		return false
	}

	switch op {
	case OperationCreate:
		return s.CanCreate
	case OperationRead:
		return s.CanRead
	case OperationUpdate:
		return s.CanUpdate
	case OperationDelete:
		return s.CanDelete
	case OperationApprove:
		return s.CanApprove
	case OperationReject:
		return s.CanReject
	default:
		return false
	}
}

// ScopeFlags carries an optional value per operation flag. Nil leaves the flag untouched on merge.
type ScopeFlags struct {
	CanCreate  *bool
	CanRead    *bool
	CanUpdate  *bool
	CanDelete  *bool
	CanApprove *bool
	CanReject  *bool
}

// Merge copies every flag present in f onto s.
func (s *PermissionScope) Merge(f ScopeFlags) {
	assign := func(dst *bool, src *bool) {
		if src != nil {
			*dst = *src
		}
	}

	assign(&s.CanCreate, f.CanCreate)
	assign(&s.CanRead, f.CanRead)
	assign(&s.CanUpdate, f.CanUpdate)
	assign(&s.CanDelete, f.CanDelete)
	assign(&s.CanApprove, f.CanApprove)
	assign(&s.CanReject, f.CanReject)
}

// Grants is the full allow-list state of a credential.
type Grants struct {
	Origins   []string
	Endpoints []string
	Scopes    []PermissionScope
}
