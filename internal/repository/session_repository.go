package repository

import (
	"context"
	"database/sql"
	"time"
)

// SessionRepo persists and validates admin sessions (single 'token_hash'
// column).  The raw session token never touches the table; callers hash it
// first.
type SessionRepo struct{ DB *sql.DB }

func NewSessionRepo(db *sql.DB) *SessionRepo { return &SessionRepo{DB: db} }

// Store inserts a session hash row for the given admin.
func (r *SessionRepo) Store(ctx context.Context, username, tokenHash string, exp time.Time) error {
	_, err := r.DB.ExecContext(ctx,
		"INSERT INTO admin_sessions (username, token_hash, expires_at) VALUES (?,?,?)",
		username, tokenHash, exp)
	return err
}

// Validate returns the admin username if a non-revoked, non-expired session
// with the given hash exists; otherwise sql.ErrNoRows.
func (r *SessionRepo) Validate(ctx context.Context, tokenHash string) (string, error) {
	var (
		username  string
		expiresAt time.Time
		revokedAt sql.NullTime
	)
	err := r.DB.QueryRowContext(ctx,
		"SELECT username, expires_at, revoked_at FROM admin_sessions WHERE token_hash=? LIMIT 1",
		tokenHash).Scan(&username, &expiresAt, &revokedAt)
	if err != nil {
		return "", err
	}
	if revokedAt.Valid {
		return "", sql.ErrNoRows
	}
	if time.Now().UTC().After(expiresAt) {
		return "", sql.ErrNoRows
	}
	return username, nil
}

// RevokeByHash marks a session as revoked.  Revoking an already-revoked or
// unknown hash is a no-op, which keeps logout idempotent.
func (r *SessionRepo) RevokeByHash(ctx context.Context, tokenHash string) error {
	_, err := r.DB.ExecContext(ctx,
		"UPDATE admin_sessions SET revoked_at=NOW() WHERE token_hash=? AND revoked_at IS NULL",
		tokenHash)
	return err
}
