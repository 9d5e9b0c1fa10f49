package jwtx

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Signer signs access token claims with an Ed25519 key.
type Signer struct {
	key   ed25519.PrivateKey
	keyID string
}

// NewSigner builds a Signer from a base64url-encoded Ed25519 seed. An empty
// seed generates an ephemeral key, which is fine for a single-instance
// deployment: restarting the process invalidates outstanding access tokens,
// and their short TTL makes that acceptable.
func NewSigner(seed string) (*Signer, error) {
	var key ed25519.PrivateKey

	if seed == "" {
		_, k, err := ed25519.GenerateKey(rand.Reader)
		if err != nil {
			return nil, fmt.Errorf("jwtx: generate key: %w", err)
		}
		key = k
	} else {
		raw, err := base64.RawURLEncoding.DecodeString(seed)
		if err != nil {
			return nil, fmt.Errorf("jwtx: decode seed: %w", err)
		}
		if len(raw) != ed25519.SeedSize {
			return nil, errors.New("jwtx: seed must be 32 bytes")
		}
		key = ed25519.NewKeyFromSeed(raw)
	}

	fp := FingerprintPublicKey(key.Public().(ed25519.PublicKey))
	return &Signer{key: key, keyID: fp}, nil
}

// Sign produces a compact serialized JWT for claims.
func (s *Signer) Sign(claims Claims) (string, error) {
	tok := jwt.NewWithClaims(jwt.SigningMethodEdDSA, claims)
	tok.Header["kid"] = s.keyID

	signed, err := tok.SignedString(s.key)
	if err != nil {
		return "", fmt.Errorf("jwtx: sign: %w", err)
	}
	return signed, nil
}

// PublicKey exposes the verification key for a paired Verifier.
func (s *Signer) PublicKey() ed25519.PublicKey {
	return s.key.Public().(ed25519.PublicKey)
}

// KeyID returns the kid header value the signer stamps on tokens.
func (s *Signer) KeyID() string { return s.keyID }

// FingerprintPublicKey derives a short stable identifier for a public key,
// used as the kid header.
func FingerprintPublicKey(pub ed25519.PublicKey) string {
	return base64.RawURLEncoding.EncodeToString(pub)[:16]
}
