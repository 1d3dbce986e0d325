package service

import (
	"context"
	"time"
)

// AuditEventType names what happened.
type AuditEventType string

const (
	AuditCredentialIssued   AuditEventType = "credential.issued"
	AuditCredentialRotated  AuditEventType = "credential.rotated"
	AuditCredentialRevoked  AuditEventType = "credential.revoked"
	AuditPermissionsReplace AuditEventType = "permissions.replaced"
	AuditPermissionsPatch   AuditEventType = "permissions.patched"
	AuditResolverDispatched AuditEventType = "resolver.dispatched"
	AuditResolverDenied     AuditEventType = "resolver.denied"
)

// AuditEvent records a security-relevant action for downstream consumers.
type AuditEvent struct {
	Type         AuditEventType `json:"type"`
	OccurredAt   time.Time      `json:"occurred_at"`
	RequestID    string         `json:"request_id,omitempty"` // For distributed tracing
	CredentialID string         `json:"credential_id,omitempty"`
	RemoteUserID int64          `json:"remote_user_id,omitempty"`
	Username     string         `json:"username,omitempty"`
	ResourceType string         `json:"resource_type,omitempty"`
	Action       string         `json:"action,omitempty"`
	ResourceID   int64          `json:"resource_id,omitempty"`
	Reason       string         `json:"reason,omitempty"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	PublishAuditEvent(ctx context.Context, event *AuditEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
