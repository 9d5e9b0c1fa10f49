package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/agrisense/agrisense/internal/store"
	"github.com/agrisense/agrisense/pkg/cryptox"
)

// AuthService covers sign-in, sign-out and password reset.
type AuthService struct {
	store    store.Store
	resolver *Resolver
	tokens   *TokenService
}

func NewAuthService(s store.Store, resolver *Resolver, tokens *TokenService) *AuthService {
	return &AuthService{store: s, resolver: resolver, tokens: tokens}
}

// SignIn resolves identifier to an account, checks the password and opens a
// session. Resolution misses surface as not-found errors; a wrong password
// surfaces as ErrInvalidCredentials.
func (s *AuthService) SignIn(ctx context.Context, identifier, password string) (TokenPair, error) {
	cred, err := s.resolver.Resolve(ctx, identifier)
	if err != nil {
		return TokenPair{}, err
	}

	if err := cryptox.VerifyPassword(password, cred.PasswordHash); err != nil {
		if errors.Is(err, cryptox.ErrPasswordMismatch) {
			return TokenPair{}, ErrInvalidCredentials
		}
		return TokenPair{}, fmt.Errorf("verify password: %w", err)
	}

	return s.tokens.Issue(ctx, cred)
}

// SignOut blacklists the session behind refreshToken.
func (s *AuthService) SignOut(ctx context.Context, refreshToken string) error {
	return s.tokens.Revoke(ctx, refreshToken)
}

// ResetPassword sets a new password on the farmer account holding phone.
// Only farmers can reset by phone; company accounts go through support.
func (s *AuthService) ResetPassword(ctx context.Context, phone, password, confirm string) error {
	if password != confirm {
		return ErrPasswordsDiffer
	}

	farmer, err := s.store.Farmers().GetByPhone(ctx, phone)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrPhoneNotFound
		}
		return fmt.Errorf("lookup farmer: %w", err)
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return err
	}

	if err := s.store.Farmers().UpdatePassword(ctx, farmer.ID, hash); err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	return nil
}
