// Package repository implements data access over database/sql.  Sentinel
// errors defined here let handlers distinguish failure scenarios without
// inspecting driver error strings themselves.
package repository

import (
	"errors"
	"strings"
)

// ErrSeatTaken is returned when the unique key on (seat_row, seat_col)
// rejects an insert: the seat is already reserved.  Handlers translate this
// into an HTTP 409 response.
var ErrSeatTaken = errors.New("seat already reserved")

// ErrCodeTaken is returned when the unique key on e_ticket rejects an
// insert.  The booking flow retries with a freshly generated code.
var ErrCodeTaken = errors.New("e-ticket code already exists")

// isDuplicate reports whether err is a MySQL duplicate-entry error (1062)
// on the named unique key.
func isDuplicate(err error, key string) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "1062") && strings.Contains(msg, strings.ToLower(key))
}
