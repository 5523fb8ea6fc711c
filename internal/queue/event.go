// Package queue defines message payloads exchanged over the message broker.
package queue

// ReservationQueueName is the queue reservation events are published to.
const ReservationQueueName = "reservation.created"

// ReservationCreatedEvent is published after a reservation is committed.
// It carries enough for downstream consumers to log or notify without
// querying the primary database.
type ReservationCreatedEvent struct {
	EventID       string `json:"event_id"`
	ReservationID uint64 `json:"reservation_id"`
	PassengerName string `json:"passenger_name"`
	SeatRow       int    `json:"seat_row"`
	SeatColumn    int    `json:"seat_column"`
	ETicket       string `json:"e_ticket"`
	PriceCents    uint32 `json:"price_cents"`
	CreatedAt     string `json:"created_at"`
}
