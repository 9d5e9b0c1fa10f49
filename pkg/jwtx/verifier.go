package jwtx

import (
	"crypto/ed25519"
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned for any token that fails parsing, signature
// verification, or time-based validation. Callers never learn which.
var ErrInvalidToken = errors.New("jwtx: invalid token")

// Verifier validates access tokens issued by a paired Signer.
type Verifier struct {
	pub    ed25519.PublicKey
	parser *jwt.Parser
	issuer string
}

// NewVerifier builds a Verifier over pub, requiring the EdDSA signing method
// and the given issuer.
func NewVerifier(pub ed25519.PublicKey, issuer string) *Verifier {
	return &Verifier{
		pub: pub,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodEdDSA.Alg()}),
			jwt.WithIssuer(issuer),
			jwt.WithExpirationRequired(),
		),
		issuer: issuer,
	}
}

// Verify parses and validates a compact JWT, returning its claims.
func (v *Verifier) Verify(token string) (Claims, error) {
	var claims Claims

	parsed, err := v.parser.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return v.pub, nil
	})
	if err != nil || !parsed.Valid {
		return Claims{}, ErrInvalidToken
	}
	return claims, nil
}
