// Package ticket generates e-ticket reservation codes.
package ticket

import "crypto/rand"

// CodeLength is the number of characters in a reservation code.
const CodeLength = 8

// alphabet is the 36-symbol set codes are drawn from.
const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// NewCode returns an 8-character code of uppercase letters and digits.
// Uniqueness is not enforced here; the reservations table carries a unique
// key on the code and the booking flow retries on a collision.
func NewCode() (string, error) {
	buf := make([]byte, CodeLength)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	out := make([]byte, CodeLength)
	for i, b := range buf {
		out[i] = alphabet[int(b)%len(alphabet)]
	}
	return string(out), nil
}
