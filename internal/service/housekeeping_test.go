package service

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/agrisense/agrisense/internal/domain"
	"github.com/agrisense/agrisense/internal/store"
	"github.com/agrisense/agrisense/pkg/idx"
)

func TestHousekeepingSweep(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	now := time.Now().UTC()

	// One expired OTP, one live.
	require.NoError(t, s.OTPs().Create(ctx, domain.OTP{
		ID: idx.New(), Phone: "+254700000500", Code: "123456",
		CreatedAt: now.Add(-time.Hour), ExpiresAt: now.Add(-50 * time.Minute),
	}))
	require.NoError(t, s.OTPs().Create(ctx, domain.OTP{
		ID: idx.New(), Phone: "+254700000500", Code: "654321",
		CreatedAt: now, ExpiresAt: now.Add(domain.OTPTTL),
	}))
	// Expired five minutes ago, still inside the retention window.
	require.NoError(t, s.OTPs().Create(ctx, domain.OTP{
		ID: idx.New(), Phone: "+254700000500", Code: "999000",
		CreatedAt: now.Add(-15 * time.Minute), ExpiresAt: now.Add(-5 * time.Minute),
	}))

	// One expired session, one live.
	require.NoError(t, s.RefreshTokens().Create(ctx, domain.RefreshToken{
		ID: idx.New(), CredentialID: uuid.New(), Role: domain.RoleFarmer,
		Fingerprint: "fp-dead", IssuedAt: now.Add(-200 * time.Hour),
		ExpiresAt: now.Add(-time.Hour),
	}))
	require.NoError(t, s.RefreshTokens().Create(ctx, domain.RefreshToken{
		ID: idx.New(), CredentialID: uuid.New(), Role: domain.RoleFarmer,
		Fingerprint: "fp-live", IssuedAt: now, ExpiresAt: now.Add(time.Hour),
	}))

	hk := NewHousekeepingService(s, slog.Default(), time.Minute, 10*time.Minute)
	hk.Sweep(ctx)

	_, err := s.OTPs().GetActiveByCode(ctx, "123456")
	require.ErrorIs(t, err, store.ErrNotFound)
	_, err = s.OTPs().GetActiveByCode(ctx, "654321")
	require.NoError(t, err)
	_, err = s.OTPs().GetActiveByCode(ctx, "999000")
	require.NoError(t, err)

	_, err = s.RefreshTokens().GetByFingerprint(ctx, "fp-dead")
	require.ErrorIs(t, err, store.ErrNotFound)
	_, err = s.RefreshTokens().GetByFingerprint(ctx, "fp-live")
	require.NoError(t, err)
}

func TestHousekeepingStartStop(t *testing.T) {
	s := newTestStore(t)

	hk := NewHousekeepingService(s, slog.Default(), 10*time.Millisecond, 0)
	hk.Start()
	hk.Start() // second start is a no-op

	time.Sleep(30 * time.Millisecond)

	hk.Stop()
	hk.Stop() // second stop is a no-op
}
