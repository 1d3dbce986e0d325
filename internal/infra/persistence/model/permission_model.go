package model

import "github.com/google/uuid"

// AllowedOriginModel mirrors the 'allowed_origins' table.
type AllowedOriginModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	CredentialID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_allowed_origins_credential_origin"`
	Origin       string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_allowed_origins_credential_origin"`
}

// TableName explicitly sets the table name for GORM.
func (AllowedOriginModel) TableName() string {
	return "allowed_origins"
}

// AllowedEndpointModel mirrors the 'allowed_endpoints' table.
type AllowedEndpointModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	CredentialID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_allowed_endpoints_credential_path"`
	Path         string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_allowed_endpoints_credential_path"`
}

// TableName explicitly sets the table name for GORM.
func (AllowedEndpointModel) TableName() string {
	return "allowed_endpoints"
}

// PermissionScopeModel mirrors the 'permission_scopes' table. One row per (credential, model).
type PermissionScopeModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	CredentialID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_permission_scopes_credential_model"`
	ModelName    string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_permission_scopes_credential_model"`
	CanCreate    bool      `gorm:"not null"`
	CanRead      bool      `gorm:"not null"`
	CanUpdate    bool      `gorm:"not null"`
	CanDelete    bool      `gorm:"not null"`
	CanApprove   bool      `gorm:"not null"`
	CanReject    bool      `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (PermissionScopeModel) TableName() string {
	return "permission_scopes"
}
