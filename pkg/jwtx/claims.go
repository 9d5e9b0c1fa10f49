// Package jwtx wraps github.com/golang-jwt/jwt/v5 with the claim set and
// EdDSA signing used for access tokens. Refresh tokens are opaque and never
// pass through this package.
package jwtx

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token lifetimes. Access tokens are short-lived; the paired opaque refresh
// token row carries the long-lived session.
const (
	DefaultAccessTokenTTL  = 15 * time.Minute
	DefaultRefreshTokenTTL = 7 * 24 * time.Hour
)

// Claims is the JWT claim set embedded in access tokens.
//
// SID ties the access token to the refresh token row that minted it, so
// revoking the session invalidates both ends.
type Claims struct {
	jwt.RegisteredClaims

	SID  string `json:"sid,omitempty"`
	Role string `json:"role,omitempty"`
}

// NewAccessClaims builds the claim set for an access token issued to subject
// with the given account role and session id.
func NewAccessClaims(issuer, subject, role, sessionID string, ttl time.Duration) Claims {
	now := time.Now().UTC()
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		SID:  sessionID,
		Role: role,
	}
}
