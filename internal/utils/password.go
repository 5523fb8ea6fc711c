package utils

import (
	"crypto/subtle"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// VerifyCredential compares a stored admin credential with a submitted
// password.  Stored values beginning with the bcrypt prefix are treated as
// hashes; anything else is compared as plaintext in constant time.  Keeping
// the comparison here lets the schema move to hashed credentials without
// touching the login flow.
func VerifyCredential(stored, plain string) bool {
	if strings.HasPrefix(stored, "$2") {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(plain)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(plain)) == 1
}
