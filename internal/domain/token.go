package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/agrisense/agrisense/pkg/idx"
)

// RefreshToken is the stored half of a session. Only the SHA-256 fingerprint
// of the opaque token is persisted; the raw token lives client-side.
//
// Revocation is a tombstone: the row stays until housekeeping removes it, so
// a replayed token after signout fails lookup-or-revoked checks rather than
// silently minting a new session.
type RefreshToken struct {
	ID           idx.ID
	CredentialID uuid.UUID
	Role         Role
	Fingerprint  string
	IssuedAt     time.Time
	ExpiresAt    time.Time
	RevokedAt    *time.Time
}

// Revoked reports whether the session has been blacklisted.
func (t RefreshToken) Revoked() bool { return t.RevokedAt != nil }

// Expired reports whether the session is past its expiry at the given time.
// The expiry instant itself is already expired.
func (t RefreshToken) Expired(now time.Time) bool {
	return !now.Before(t.ExpiresAt)
}

// Usable reports whether the token may still mint access tokens.
func (t RefreshToken) Usable(now time.Time) bool {
	return !t.Revoked() && !t.Expired(now)
}
