// Package seating renders the cabin occupancy chart.  The chart is a pure
// function of the reservation list: each cell is open ("O") until some
// reservation claims its coordinates, then it shows reserved ("X").
package seating

import (
	"fmt"
	"strings"

	"github.com/skyward/flight-seat-booking/internal/model"
)

// Cell markers used in the rendered chart.
const (
	Open     = "O"
	Reserved = "X"
)

// Chart holds the occupancy of the cabin grid.  Cells[r][c] is true when the
// seat at row r+1, column c+1 is reserved.
type Chart struct {
	Cells [model.SeatRows][model.SeatCols]bool
}

// Build computes the occupancy chart for the given reservations.
// Reservations with coordinates outside the cabin are ignored; the renderer
// never indexes past the grid.
func Build(reservations []model.Reservation) Chart {
	var ch Chart
	for _, r := range reservations {
		row, col := r.SeatRow-1, r.SeatCol-1
		if row < 0 || row >= model.SeatRows || col < 0 || col >= model.SeatCols {
			continue
		}
		ch.Cells[row][col] = true
	}
	return ch
}

// Lines renders the chart as one labeled line per row, e.g.
// "Row  1: O O X O".
func (ch Chart) Lines() []string {
	lines := make([]string, 0, model.SeatRows)
	for i, row := range ch.Cells {
		marks := make([]string, model.SeatCols)
		for j, taken := range row {
			if taken {
				marks[j] = Reserved
			} else {
				marks[j] = Open
			}
		}
		lines = append(lines, fmt.Sprintf("Row %2d: %s", i+1, strings.Join(marks, " ")))
	}
	return lines
}

// Text renders the chart as a single newline-joined string.
func (ch Chart) Text() string {
	return strings.Join(ch.Lines(), "\n")
}
