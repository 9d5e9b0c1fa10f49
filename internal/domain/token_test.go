package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRefreshTokenUsable(t *testing.T) {
	issued := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	token := RefreshToken{
		IssuedAt:  issued,
		ExpiresAt: issued.Add(7 * 24 * time.Hour),
	}

	require.True(t, token.Usable(issued))
	require.True(t, token.Usable(token.ExpiresAt.Add(-time.Second)))

	// The expiry instant itself is no longer usable.
	require.True(t, token.Expired(token.ExpiresAt))
	require.False(t, token.Usable(token.ExpiresAt))

	revoked := token
	at := issued.Add(time.Hour)
	revoked.RevokedAt = &at
	require.False(t, revoked.Usable(issued.Add(2*time.Hour)))
}
