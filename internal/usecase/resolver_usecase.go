package usecase

import (
	"context"
	"encoding/json"

	"erpgate/internal/domain/entity"
)

// ResolveInput is one generic resolver request with its already resolved credential.
type ResolveInput struct {
	Credential   *entity.Credential
	Host         string
	Channel      string
	ResourceType string
	Action       string
	ResourceID   *int64
	Body         map[string]any
}

// ResolveOutput is the remote result with the method that produced it.
type ResolveOutput struct {
	RemoteMethod string
	Result       json.RawMessage
}

// ResolverUsecase forwards permitted operations to the remote backend.
type ResolverUsecase interface {
	Resolve(ctx context.Context, input ResolveInput) (*ResolveOutput, error)
}
