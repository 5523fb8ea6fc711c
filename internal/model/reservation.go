package model

import "time"

// Cabin dimensions for the single supported flight.  Seat coordinates are
// 1-indexed: rows run 1..SeatRows and columns 1..SeatCols.
const (
	SeatRows = 12
	SeatCols = 4
)

// Reservation records a booked seat as stored in the `reservations` table.
// A reservation is created once by the public booking flow, never updated,
// and removed only by the admin delete flow.
//
// Fields:
//  ID            – primary key identifier, assigned on insert.
//  PassengerName – first and last name joined with a single space.
//  SeatRow       – row of the booked seat, 1..12.
//  SeatCol       – column of the booked seat, 1..4.
//  ETicket       – 8-character uppercase alphanumeric reservation code,
//                  unique across all reservations.
//  CreatedAt     – insertion timestamp, set by the database.
type Reservation struct {
	ID            uint64    // reservations.id
	PassengerName string    // reservations.passenger_name
	SeatRow       int       // reservations.seat_row
	SeatCol       int       // reservations.seat_col
	ETicket       string    // reservations.e_ticket
	CreatedAt     time.Time // reservations.created_at
}
