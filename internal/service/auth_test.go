package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/agrisense/agrisense/internal/domain"
	"github.com/agrisense/agrisense/pkg/jwtx"
)

func TestResolverPriority(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	// Same phone in both directories: farmer wins.
	farmer := seedFarmer(t, s, "+254700000200", "farmer@example.com", "pw-farmer")
	seedCompany(t, s, "+254700000200", "company@example.com", "pw-company")

	resolver := NewResolver(s)

	cred, err := resolver.Resolve(ctx, "+254700000200")
	require.NoError(t, err)
	require.Equal(t, domain.RoleFarmer, cred.Role)
	require.Equal(t, farmer.ID, cred.ID)

	t.Run("company found when farmer misses", func(t *testing.T) {
		company := seedCompany(t, s, "+254700000201", "only@example.com", "pw")
		cred, err := resolver.Resolve(ctx, "+254700000201")
		require.NoError(t, err)
		require.Equal(t, domain.RoleCompany, cred.Role)
		require.Equal(t, company.ID, cred.ID)
	})

	t.Run("email form misses report email error", func(t *testing.T) {
		_, err := resolver.Resolve(ctx, "ghost@example.com")
		require.ErrorIs(t, err, ErrEmailNotFound)
	})

	t.Run("phone form misses report phone error", func(t *testing.T) {
		_, err := resolver.Resolve(ctx, "+254799999900")
		require.ErrorIs(t, err, ErrPhoneNotFound)
	})
}

func TestSignInAndSignOut(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	seedFarmer(t, s, "+254700000202", "signin@example.com", "correct horse")

	signer, err := jwtx.NewSigner("")
	require.NoError(t, err)
	tokens := NewTokenService(s, signer, "agrisense")
	auth := NewAuthService(s, NewResolver(s), tokens)

	pair, err := auth.SignIn(ctx, "signin@example.com", "correct horse")
	require.NoError(t, err)
	require.NotEmpty(t, pair.Access)
	require.NotEmpty(t, pair.Refresh)

	t.Run("access token is verifiable", func(t *testing.T) {
		claims, err := jwtx.NewVerifier(signer.PublicKey(), "agrisense").Verify(pair.Access)
		require.NoError(t, err)
		require.Equal(t, string(domain.RoleFarmer), claims.Role)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := auth.SignIn(ctx, "signin@example.com", "wrong")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("phone identifier works too", func(t *testing.T) {
		_, err := auth.SignIn(ctx, "+254700000202", "correct horse")
		require.NoError(t, err)
	})

	t.Run("signout blacklists exactly once", func(t *testing.T) {
		require.NoError(t, auth.SignOut(ctx, pair.Refresh))
		require.ErrorIs(t, auth.SignOut(ctx, pair.Refresh), ErrInvalidToken)
	})

	t.Run("revoked session cannot refresh", func(t *testing.T) {
		_, err := tokens.Refresh(ctx, pair.Refresh)
		require.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestResetPassword(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	seedFarmer(t, s, "+254700000203", "reset@example.com", "old password")

	signer, err := jwtx.NewSigner("")
	require.NoError(t, err)
	auth := NewAuthService(s, NewResolver(s), NewTokenService(s, signer, "agrisense"))

	t.Run("mismatched confirmation", func(t *testing.T) {
		err := auth.ResetPassword(ctx, "+254700000203", "new", "different")
		require.ErrorIs(t, err, ErrPasswordsDiffer)
	})

	t.Run("unknown phone", func(t *testing.T) {
		err := auth.ResetPassword(ctx, "+254799999901", "new", "new")
		require.ErrorIs(t, err, ErrPhoneNotFound)
	})

	t.Run("reset then sign in with new password", func(t *testing.T) {
		require.NoError(t, auth.ResetPassword(ctx, "+254700000203", "new password", "new password"))

		_, err := auth.SignIn(ctx, "+254700000203", "old password")
		require.ErrorIs(t, err, ErrInvalidCredentials)

		_, err = auth.SignIn(ctx, "+254700000203", "new password")
		require.NoError(t, err)
	})
}
