package handler

// stores.go declares the narrow store interfaces handlers consume.  The
// repository types satisfy them; tests substitute in-memory fakes.

import (
	"context"
	"time"

	"github.com/skyward/flight-seat-booking/internal/model"
	"github.com/skyward/flight-seat-booking/internal/queue"
)

// ReservationStore is the subset of the reservation repository used by the
// booking and admin flows.
type ReservationStore interface {
	Create(ctx context.Context, res *model.Reservation) error
	ListAll(ctx context.Context) ([]model.Reservation, error)
	DeleteByID(ctx context.Context, id uint64) error
}

// AdminStore looks up admin credential rows.
type AdminStore interface {
	GetByUsername(ctx context.Context, username string) (model.Admin, error)
}

// SessionStore records and revokes admin sessions by token hash.
type SessionStore interface {
	Store(ctx context.Context, username, tokenHash string, exp time.Time) error
	RevokeByHash(ctx context.Context, tokenHash string) error
}

// EventPublisher pushes reservation events to the message broker.
// Publishing is best-effort; the booking flow ignores failures.
type EventPublisher interface {
	PublishReservationCreated(ctx context.Context, ev queue.ReservationCreatedEvent) error
}
