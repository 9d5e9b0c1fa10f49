package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/agrisense/agrisense/internal/domain"
	"github.com/agrisense/agrisense/pkg/jwtx"
)

func TestTokenServiceLifecycle(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	farmer := seedFarmer(t, s, "+254700000300", "token@example.com", "pw")
	cred := domain.FarmerCredential(farmer)

	signer, err := jwtx.NewSigner("")
	require.NoError(t, err)
	svc := NewTokenService(s, signer, "agrisense")

	pair, err := svc.Issue(ctx, cred)
	require.NoError(t, err)

	verifier := jwtx.NewVerifier(signer.PublicKey(), "agrisense")

	t.Run("access claims carry subject, role and session", func(t *testing.T) {
		claims, err := verifier.Verify(pair.Access)
		require.NoError(t, err)
		require.Equal(t, farmer.ID.String(), claims.Subject)
		require.Equal(t, "farmer", claims.Role)
		require.NotEmpty(t, claims.SID)
	})

	t.Run("refresh mints a new access token for the same session", func(t *testing.T) {
		original, err := verifier.Verify(pair.Access)
		require.NoError(t, err)

		access, err := svc.Refresh(ctx, pair.Refresh)
		require.NoError(t, err)

		claims, err := verifier.Verify(access)
		require.NoError(t, err)
		require.Equal(t, original.SID, claims.SID)
		require.Equal(t, original.Subject, claims.Subject)
	})

	t.Run("garbage refresh token", func(t *testing.T) {
		_, err := svc.Refresh(ctx, "not-a-token")
		require.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired session cannot refresh", func(t *testing.T) {
		svc.now = func() time.Time { return time.Now().UTC().Add(8 * 24 * time.Hour) }
		defer func() { svc.now = func() time.Time { return time.Now().UTC() } }()

		_, err := svc.Refresh(ctx, pair.Refresh)
		require.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("revoke then refresh fails", func(t *testing.T) {
		require.NoError(t, svc.Revoke(ctx, pair.Refresh))

		_, err := svc.Refresh(ctx, pair.Refresh)
		require.ErrorIs(t, err, ErrInvalidToken)

		require.ErrorIs(t, svc.Revoke(ctx, pair.Refresh), ErrInvalidToken)
	})
}
