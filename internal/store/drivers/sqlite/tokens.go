package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/agrisense/agrisense/internal/domain"
	"github.com/agrisense/agrisense/pkg/idx"
)

type refreshTokenRepo struct {
	q queryer
}

func (r refreshTokenRepo) Create(ctx context.Context, token domain.RefreshToken) error {
	var revoked sql.NullString
	if token.RevokedAt != nil {
		revoked = sql.NullString{String: formatTime(*token.RevokedAt), Valid: true}
	}

	_, err := r.q.ExecContext(ctx, `
		INSERT INTO refresh_tokens
			(id, credential_id, role, fingerprint, issued_at, expires_at, revoked_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		token.ID.String(),
		token.CredentialID.String(),
		string(token.Role),
		token.Fingerprint,
		formatTime(token.IssuedAt),
		formatTime(token.ExpiresAt),
		revoked,
	)
	return mapConstraint(err)
}

func (r refreshTokenRepo) GetByFingerprint(ctx context.Context, fingerprint string) (domain.RefreshToken, error) {
	row := r.q.QueryRowContext(ctx, `
		SELECT id, credential_id, role, fingerprint, issued_at, expires_at, revoked_at
		FROM refresh_tokens
		WHERE fingerprint = ?`, fingerprint)

	var (
		token            domain.RefreshToken
		id, credID, role string
		issued, expires  string
		revoked          sql.NullString
	)
	err := row.Scan(&id, &credID, &role, &token.Fingerprint, &issued, &expires, &revoked)
	if err != nil {
		return domain.RefreshToken{}, mapNotFound(err)
	}

	if token.ID, err = idx.Parse(id); err != nil {
		return domain.RefreshToken{}, fmt.Errorf("sqlite: token id: %w", err)
	}
	if token.CredentialID, err = uuid.Parse(credID); err != nil {
		return domain.RefreshToken{}, fmt.Errorf("sqlite: token credential id: %w", err)
	}
	token.Role = domain.Role(role)
	if token.IssuedAt, err = parseTime(issued); err != nil {
		return domain.RefreshToken{}, fmt.Errorf("sqlite: token issued_at: %w", err)
	}
	if token.ExpiresAt, err = parseTime(expires); err != nil {
		return domain.RefreshToken{}, fmt.Errorf("sqlite: token expires_at: %w", err)
	}
	if revoked.Valid {
		at, err := parseTime(revoked.String)
		if err != nil {
			return domain.RefreshToken{}, fmt.Errorf("sqlite: token revoked_at: %w", err)
		}
		token.RevokedAt = &at
	}
	return token, nil
}

// Revoke tombstones the session. Revoking an already revoked token affects
// no rows and reports ErrNotFound.
func (r refreshTokenRepo) Revoke(ctx context.Context, fingerprint string, at time.Time) error {
	return mustAffect(r.q.ExecContext(ctx, `
		UPDATE refresh_tokens SET revoked_at = ?
		WHERE fingerprint = ? AND revoked_at IS NULL`,
		formatTime(at), fingerprint,
	))
}

func (r refreshTokenRepo) DeleteExpiredBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.q.ExecContext(ctx,
		`DELETE FROM refresh_tokens WHERE expires_at < ?`,
		formatTime(cutoff),
	)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
