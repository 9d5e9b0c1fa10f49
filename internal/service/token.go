package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/agrisense/agrisense/internal/domain"
	"github.com/agrisense/agrisense/internal/store"
	"github.com/agrisense/agrisense/pkg/cryptox"
	"github.com/agrisense/agrisense/pkg/idx"
	"github.com/agrisense/agrisense/pkg/jwtx"
)

// TokenPair is what a successful sign-in hands to the client.
type TokenPair struct {
	Access  string
	Refresh string
}

// TokenService mints access tokens and manages the stored refresh sessions
// behind them.
type TokenService struct {
	store      store.Store
	signer     *jwtx.Signer
	issuer     string
	accessTTL  time.Duration
	refreshTTL time.Duration

	now func() time.Time
}

func NewTokenService(s store.Store, signer *jwtx.Signer, issuer string) *TokenService {
	return &TokenService{
		store:      s,
		signer:     signer,
		issuer:     issuer,
		accessTTL:  jwtx.DefaultAccessTokenTTL,
		refreshTTL: jwtx.DefaultRefreshTokenTTL,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// Issue creates a session for cred: an opaque refresh token persisted by
// fingerprint, and a signed access token carrying the session id.
func (s *TokenService) Issue(ctx context.Context, cred domain.Credential) (TokenPair, error) {
	refresh, err := cryptox.GenerateToken(cryptox.TokenSize256)
	if err != nil {
		return TokenPair{}, err
	}

	now := s.now()
	session := domain.RefreshToken{
		ID:           idx.NewAt(now),
		CredentialID: cred.ID,
		Role:         cred.Role,
		Fingerprint:  cryptox.FingerprintToken(refresh),
		IssuedAt:     now,
		ExpiresAt:    now.Add(s.refreshTTL),
	}
	if err := s.store.RefreshTokens().Create(ctx, session); err != nil {
		return TokenPair{}, fmt.Errorf("persist session: %w", err)
	}

	access, err := s.signAccess(cred.ID.String(), string(cred.Role), session.ID.String())
	if err != nil {
		return TokenPair{}, err
	}
	return TokenPair{Access: access, Refresh: refresh}, nil
}

// Refresh mints a new access token from a live refresh token. The refresh
// token itself is not rotated.
func (s *TokenService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	session, err := s.lookup(ctx, refreshToken)
	if err != nil {
		return "", err
	}
	return s.signAccess(session.CredentialID.String(), string(session.Role), session.ID.String())
}

// Revoke blacklists the session behind refreshToken. Revoking an unknown or
// already revoked token reports ErrInvalidToken.
func (s *TokenService) Revoke(ctx context.Context, refreshToken string) error {
	session, err := s.lookup(ctx, refreshToken)
	if err != nil {
		return err
	}

	if err := s.store.RefreshTokens().Revoke(ctx, session.Fingerprint, s.now()); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrInvalidToken
		}
		return fmt.Errorf("revoke session: %w", err)
	}
	return nil
}

func (s *TokenService) lookup(ctx context.Context, refreshToken string) (domain.RefreshToken, error) {
	session, err := s.store.RefreshTokens().GetByFingerprint(ctx, cryptox.FingerprintToken(refreshToken))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.RefreshToken{}, ErrInvalidToken
		}
		return domain.RefreshToken{}, fmt.Errorf("lookup session: %w", err)
	}
	if !session.Usable(s.now()) {
		return domain.RefreshToken{}, ErrInvalidToken
	}
	return session, nil
}

func (s *TokenService) signAccess(subject, role, sessionID string) (string, error) {
	claims := jwtx.NewAccessClaims(s.issuer, subject, role, sessionID, s.accessTTL)
	access, err := s.signer.Sign(claims)
	if err != nil {
		return "", fmt.Errorf("sign access token: %w", err)
	}
	return access, nil
}
