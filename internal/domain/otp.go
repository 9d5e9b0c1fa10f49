package domain

import (
	"time"

	"github.com/agrisense/agrisense/pkg/idx"
)

// OTPTTL is the fixed lifetime of a one-time passcode. Expiry is stamped at
// creation time; resending issues a fresh row rather than extending an old
// one.
const OTPTTL = 10 * time.Minute

// OTP is a single-use six digit passcode sent to a phone number. Verification
// marks the row used; it is never reusable afterwards.
type OTP struct {
	ID        idx.ID
	Phone     string
	Code      string
	Verified  bool
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Expired reports whether the passcode is past its expiry at the given time.
// The expiry instant itself is already expired.
func (o OTP) Expired(now time.Time) bool {
	return !now.Before(o.ExpiresAt)
}
