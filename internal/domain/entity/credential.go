// Package entity contains the core business objects of the gateway,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Credential binds a locally issued access/refresh token pair to a remote session.
// Only digests of the tokens are stored; the raw strings leave the process once, in the response.
type Credential struct {
	ID               uuid.UUID
	Name             string    // Display name, the remote login it was minted for.
	RemoteUserID     int64     // Numeric identity returned by the remote login.
	RemoteSessionID  string    // Session handle forwarded as a cookie on every remote call.
	AccessTokenHash  string    // SHA-256 of the access token.
	RefreshTokenHash string    // SHA-256 of the refresh token.
	ExpiresAt        time.Time
	CreatedAt        time.Time
}

// IsExpired reports whether the credential expiry has passed at now.
func (c *Credential) IsExpired(now time.Time) bool {
	return !c.ExpiresAt.After(now)
}

// Principal is the local record of a remote identity. Rotation refuses to issue
// tokens for an identity whose principal has been removed.
type Principal struct {
	ID           uuid.UUID
	RemoteUserID int64
	Login        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
