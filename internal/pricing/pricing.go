// Package pricing computes seat prices for the 12x4 cabin.  Prices are a
// pure function of the seat column; every row shares the same vector.  All
// amounts are held in cents to avoid float arithmetic in totals.
package pricing

import (
	"errors"
	"fmt"

	"github.com/skyward/flight-seat-booking/internal/model"
)

// ErrOutOfRange is returned when a seat coordinate falls outside the cabin.
var ErrOutOfRange = errors.New("seat out of range")

// columnCents maps a zero-based column index to its price: window seats
// (columns 1 and 4) cost 100.00, column 2 costs 75.00 and column 3 costs
// 50.00, regardless of row.
var columnCents = [model.SeatCols]uint32{10000, 7500, 5000, 10000}

// PriceOf returns the price in cents for a 1-indexed seat.  Unlike a raw
// matrix lookup, out-of-range coordinates yield ErrOutOfRange instead of
// undefined behavior.
func PriceOf(row, col int) (uint32, error) {
	if row < 1 || row > model.SeatRows || col < 1 || col > model.SeatCols {
		return 0, ErrOutOfRange
	}
	return columnCents[col-1], nil
}

// TotalSales sums the price of every reservation's seat.  Reservations with
// coordinates outside the cabin contribute nothing; they cannot be priced.
func TotalSales(reservations []model.Reservation) uint32 {
	var total uint32
	for _, r := range reservations {
		cents, err := PriceOf(r.SeatRow, r.SeatCol)
		if err != nil {
			continue
		}
		total += cents
	}
	return total
}

// FormatCents renders an amount of cents as a dollar string with two
// decimal places, e.g. 10000 -> "100.00".
func FormatCents(cents uint32) string {
	return fmt.Sprintf("%d.%02d", cents/100, cents%100)
}
