package utils // package utils provides helpers for session tokens and credential checks

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionCookie is the name of the cookie carrying the admin session token.
const SessionCookie = "admin_session"

// ErrSessionToken is returned when a session token fails signature or claim
// validation.
var ErrSessionToken = errors.New("invalid session token")

// SessionToken represents a signed admin session JWT along with its expiry.
// The Token field contains the JWT string handed to the client as a cookie.
// The database stores only the SHA-256 hash of that string, so a session can
// be revoked server-side on logout.
type SessionToken struct {
	Token string    // the serialized JWT string
	Exp   time.Time // the UTC expiration time
}

// NewSessionToken builds and signs an HS256 JWT for an admin.  The JWT
// carries the admin username as subject (sub) plus expiration (exp) and
// issued at (iat) claims.
func NewSessionToken(secret, username string, ttlMin int) (SessionToken, error) {
	exp := time.Now().UTC().Add(time.Duration(ttlMin) * time.Minute)
	claims := jwt.MapClaims{
		"sub": username,
		"exp": exp.Unix(),
		"iat": time.Now().UTC().Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(secret))
	if err != nil {
		return SessionToken{}, err
	}
	return SessionToken{Token: signed, Exp: exp}, nil
}

// ParseSessionToken verifies a session JWT and returns the admin username it
// authenticates.  Tokens signed with a different method or secret, expired
// tokens and tokens without a subject all yield ErrSessionToken.
func ParseSessionToken(secret, raw string) (string, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrSessionToken
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return "", ErrSessionToken
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrSessionToken
	}
	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", ErrSessionToken
	}
	return sub, nil
}

// HashSessionRaw returns the SHA-256 hash of the raw session token as a hex
// string.  Only the hash is stored in the admin_sessions table.
func HashSessionRaw(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}
