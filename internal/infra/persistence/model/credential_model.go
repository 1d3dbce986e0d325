package model

import (
	"time"

	"github.com/google/uuid"
)

// CredentialModel mirrors the 'credentials' table.
type CredentialModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name             string    `gorm:"type:varchar(255);not null"`
	RemoteUserID     int64     `gorm:"not null;index"`
	RemoteSessionID  string    `gorm:"type:varchar(255);not null"`
	AccessTokenHash  string    `gorm:"type:varchar(64);not null;uniqueIndex"`
	RefreshTokenHash string    `gorm:"type:varchar(64);not null;uniqueIndex"`
	ExpiresAt        time.Time `gorm:"not null;index"`
	CreatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (CredentialModel) TableName() string {
	return "credentials"
}

// PrincipalModel mirrors the 'principals' table, one row per remote identity.
type PrincipalModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	RemoteUserID int64     `gorm:"not null;uniqueIndex"`
	Login        string    `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (PrincipalModel) TableName() string {
	return "principals"
}
