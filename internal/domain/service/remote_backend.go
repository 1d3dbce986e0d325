package service

import (
	"context"
	"encoding/json"

	"erpgate/internal/domain/entity"
)

// RemoteCall is one call_kw invocation on the remote backend.
type RemoteCall struct {
	Model  string
	Method string
	Args   []any
	Kwargs map[string]any
}

// RemoteBackend is the business-object RPC backend the gateway fronts.
// Failures are returned as domain errors: ErrRemoteAuthFailed, ErrRemoteCall,
// ErrRemoteBadResponse or ErrRemoteUnavailable.
type RemoteBackend interface {
	// Authenticate performs the remote login round-trip.
	Authenticate(ctx context.Context, login, password string) (*entity.RemoteSession, error)

	// Call invokes a model method within the given remote session and returns the raw result.
	Call(ctx context.Context, sessionID string, call RemoteCall) (json.RawMessage, error)

	// FindEmployeeProfile resolves the employee record linked to a remote user.
	// It returns nil and no error when there is none.
	FindEmployeeProfile(ctx context.Context, sessionID string, remoteUserID int64) (*entity.EmployeeProfile, error)

	// Database is the remote database name logins are made against.
	Database() string
}
