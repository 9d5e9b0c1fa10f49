package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/agrisense/agrisense/internal/domain"
	"github.com/agrisense/agrisense/pkg/idx"
)

type otpRepo struct {
	q queryer
}

func (r otpRepo) Create(ctx context.Context, otp domain.OTP) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO otps (id, phone, code, verified, created_at, expires_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		otp.ID.String(),
		otp.Phone,
		otp.Code,
		otp.Verified,
		formatTime(otp.CreatedAt),
		formatTime(otp.ExpiresAt),
	)
	return mapConstraint(err)
}

// GetActiveByCode matches the newest unverified row holding code, regardless
// of which phone number it was issued to.
func (r otpRepo) GetActiveByCode(ctx context.Context, code string) (domain.OTP, error) {
	row := r.q.QueryRowContext(ctx, `
		SELECT id, phone, code, verified, created_at, expires_at
		FROM otps
		WHERE code = ? AND verified = 0
		ORDER BY created_at DESC
		LIMIT 1`, code)

	var (
		otp                  domain.OTP
		id, created, expires string
	)
	if err := row.Scan(&id, &otp.Phone, &otp.Code, &otp.Verified, &created, &expires); err != nil {
		return domain.OTP{}, mapNotFound(err)
	}

	var err error
	if otp.ID, err = idx.Parse(id); err != nil {
		return domain.OTP{}, fmt.Errorf("sqlite: otp id: %w", err)
	}
	if otp.CreatedAt, err = parseTime(created); err != nil {
		return domain.OTP{}, fmt.Errorf("sqlite: otp created_at: %w", err)
	}
	if otp.ExpiresAt, err = parseTime(expires); err != nil {
		return domain.OTP{}, fmt.Errorf("sqlite: otp expires_at: %w", err)
	}
	return otp, nil
}

func (r otpRepo) MarkVerified(ctx context.Context, id idx.ID) error {
	return mustAffect(r.q.ExecContext(ctx,
		`UPDATE otps SET verified = 1 WHERE id = ? AND verified = 0`,
		id.String(),
	))
}

func (r otpRepo) DeleteExpiredBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.q.ExecContext(ctx,
		`DELETE FROM otps WHERE expires_at < ?`,
		formatTime(cutoff),
	)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
