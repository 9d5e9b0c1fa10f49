package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"time"

	"github.com/agrisense/agrisense/internal/domain"
	"github.com/agrisense/agrisense/internal/store"
	"github.com/agrisense/agrisense/pkg/idx"
	"github.com/agrisense/agrisense/pkg/slogx"
)

// SMSSender delivers a passcode to a phone number. The production gateway is
// wired in at startup; tests use a capture fake.
type SMSSender interface {
	SendOTP(ctx context.Context, phone, code string) error
}

// LogSMSSender writes passcodes to the log instead of a gateway. Default
// when no gateway is configured, for development environments.
type LogSMSSender struct{}

func (LogSMSSender) SendOTP(ctx context.Context, phone, code string) error {
	slogx.FromContext(ctx).Info("otp issued",
		slog.String("phone", phone),
		slog.String("code", code),
	)
	return nil
}

// OTPService issues and verifies one-time passcodes.
type OTPService struct {
	store  store.Store
	sender SMSSender

	// injectable for tests
	now      func() time.Time
	generate func() (string, error)
}

func NewOTPService(s store.Store, sender SMSSender) *OTPService {
	return &OTPService{
		store:    s,
		sender:   sender,
		now:      func() time.Time { return time.Now().UTC() },
		generate: generateCode,
	}
}

// generateCode draws a uniform six digit code in [100000, 999999].
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", fmt.Errorf("generate otp code: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}

// Request issues a fresh passcode for phone and returns it; the caller
// echoes it back to the client. Earlier passcodes for the same phone are
// left in place; each row expires on its own clock.
func (s *OTPService) Request(ctx context.Context, phone string) (string, error) {
	return s.issue(ctx, phone)
}

// Resend issues a new passcode rather than re-sending the previous one, so a
// resent code always carries a full ten minute lifetime.
func (s *OTPService) Resend(ctx context.Context, phone string) (string, error) {
	return s.issue(ctx, phone)
}

func (s *OTPService) issue(ctx context.Context, phone string) (string, error) {
	code, err := s.generate()
	if err != nil {
		return "", err
	}

	now := s.now()
	otp := domain.OTP{
		ID:        idx.NewAt(now),
		Phone:     phone,
		Code:      code,
		CreatedAt: now,
		ExpiresAt: now.Add(domain.OTPTTL),
	}
	if err := s.store.OTPs().Create(ctx, otp); err != nil {
		return "", fmt.Errorf("persist otp: %w", err)
	}

	if err := s.sender.SendOTP(ctx, phone, code); err != nil {
		return "", fmt.Errorf("send otp: %w", err)
	}
	return code, nil
}

// Verify consumes the passcode. The lookup is by code alone across all phone
// numbers, matching the client contract; expired or already-used codes fail
// with ErrInvalidOTP.
func (s *OTPService) Verify(ctx context.Context, code string) error {
	otp, err := s.store.OTPs().GetActiveByCode(ctx, code)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrInvalidOTP
		}
		return fmt.Errorf("lookup otp: %w", err)
	}

	if otp.Expired(s.now()) {
		return ErrInvalidOTP
	}

	if err := s.store.OTPs().MarkVerified(ctx, otp.ID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// Lost the race with a concurrent verify.
			return ErrInvalidOTP
		}
		return fmt.Errorf("mark otp verified: %w", err)
	}
	return nil
}
