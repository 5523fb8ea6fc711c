package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/skyward/flight-seat-booking/internal/model"
)

// AdminRepo provides access to the admins table.
type AdminRepo struct{ DB *sql.DB }

func NewAdminRepo(db *sql.DB) *AdminRepo { return &AdminRepo{DB: db} }

// GetByUsername fetches an admin by exact username.  sql.ErrNoRows is
// returned when no such admin exists.
func (r *AdminRepo) GetByUsername(ctx context.Context, username string) (model.Admin, error) {
	username = strings.TrimSpace(username)
	var a model.Admin
	err := r.DB.QueryRowContext(ctx,
		"SELECT username, password FROM admins WHERE username=? LIMIT 1",
		username).Scan(&a.Username, &a.Password)
	return a, err
}

// Upsert inserts or replaces an admin credential pair.  Used only by the
// startup seed; no exposed flow writes to the admins table.
func (r *AdminRepo) Upsert(ctx context.Context, username, password string) error {
	_, err := r.DB.ExecContext(ctx,
		"INSERT INTO admins (username, password) VALUES (?,?) ON DUPLICATE KEY UPDATE password=VALUES(password)",
		strings.TrimSpace(username), password)
	return err
}
