package model

import "time"

// Admin mirrors a row of the `admins` table.  Admins are provisioned
// out-of-band (seed data); no exposed flow creates or deletes them.
// The Password column may hold either a plaintext value or a bcrypt
// hash; utils.VerifyCredential handles both forms.
//
// Fields:
//  Username – primary identifier of the admin.
//  Password – stored credential, compared on login.
type Admin struct {
	Username string // admins.username
	Password string // admins.password
}

// AdminSession models an entry in the `admin_sessions` table.  Each row maps
// a session token to the admin identity it authenticates.  The raw token is
// never stored; only its SHA-256 hash.  A session is live while it is
// unexpired and unrevoked.
//
// Fields:
//  ID        – primary key identifier.
//  Username  – admin authenticated by this session.
//  TokenHash – SHA-256 hex digest of the session token.
//  ExpiresAt – expiration timestamp of the session.
//  RevokedAt – when the session was revoked by logout (null if live).
//  CreatedAt – timestamp of creation.
type AdminSession struct {
	ID        uint64     // admin_sessions.id
	Username  string     // admin_sessions.username
	TokenHash string     // admin_sessions.token_hash
	ExpiresAt time.Time  // admin_sessions.expires_at
	RevokedAt *time.Time // admin_sessions.revoked_at (nullable)
	CreatedAt time.Time  // admin_sessions.created_at
}
