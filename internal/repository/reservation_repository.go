package repository

import (
	"context"
	"database/sql"

	"github.com/skyward/flight-seat-booking/internal/model"
)

// ReservationRepo provides access to the reservations table.  Seat and
// e-ticket uniqueness are enforced by the table's unique keys, so creating a
// reservation is a single conditional insert with no check-then-act window.
type ReservationRepo struct{ DB *sql.DB }

// NewReservationRepo returns a ReservationRepo bound to the given database.
func NewReservationRepo(db *sql.DB) *ReservationRepo { return &ReservationRepo{DB: db} }

// Create inserts a new reservation and populates its ID and creation
// timestamp.  A duplicate on uq_seat yields ErrSeatTaken; a duplicate on
// uq_eticket yields ErrCodeTaken.  Nothing is written on either failure.
func (r *ReservationRepo) Create(ctx context.Context, res *model.Reservation) error {
	result, err := r.DB.ExecContext(ctx,
		"INSERT INTO reservations (passenger_name, seat_row, seat_col, e_ticket) VALUES (?,?,?,?)",
		res.PassengerName, res.SeatRow, res.SeatCol, res.ETicket)
	if err != nil {
		switch {
		case isDuplicate(err, "uq_seat"):
			return ErrSeatTaken
		case isDuplicate(err, "uq_eticket"):
			return ErrCodeTaken
		}
		return err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	res.ID = uint64(id)
	// Query back the row to populate the server-assigned timestamp.
	return r.DB.QueryRowContext(ctx,
		"SELECT created_at FROM reservations WHERE id=?", res.ID).Scan(&res.CreatedAt)
}

// ListAll returns every reservation ordered by insertion.  An empty table
// yields an empty slice.
func (r *ReservationRepo) ListAll(ctx context.Context) ([]model.Reservation, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id, passenger_name, seat_row, seat_col, e_ticket, created_at FROM reservations ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.Reservation, 0)
	for rows.Next() {
		var res model.Reservation
		if err := rows.Scan(&res.ID, &res.PassengerName, &res.SeatRow, &res.SeatCol, &res.ETicket, &res.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, res)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteByID removes the reservation with the given id.  Deleting an id
// that does not exist is not an error; the delete flow treats it as done.
func (r *ReservationRepo) DeleteByID(ctx context.Context, id uint64) error {
	_, err := r.DB.ExecContext(ctx, "DELETE FROM reservations WHERE id=?", id)
	return err
}
