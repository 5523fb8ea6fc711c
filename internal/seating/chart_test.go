package seating

import (
	"strings"
	"testing"

	"github.com/skyward/flight-seat-booking/internal/model"
)

func TestBuildEmpty(t *testing.T) {
	ch := Build(nil)
	for r := 0; r < model.SeatRows; r++ {
		for c := 0; c < model.SeatCols; c++ {
			if ch.Cells[r][c] {
				t.Fatalf("empty chart has reserved cell at %d,%d", r, c)
			}
		}
	}
}

func TestBuildMarksExactlyOneCell(t *testing.T) {
	for row := 1; row <= model.SeatRows; row++ {
		for col := 1; col <= model.SeatCols; col++ {
			ch := Build([]model.Reservation{{SeatRow: row, SeatCol: col}})
			for r := 0; r < model.SeatRows; r++ {
				for c := 0; c < model.SeatCols; c++ {
					want := r == row-1 && c == col-1
					if ch.Cells[r][c] != want {
						t.Fatalf("booking (%d,%d): cell (%d,%d) = %v, want %v",
							row, col, r+1, c+1, ch.Cells[r][c], want)
					}
				}
			}
		}
	}
}

func TestBuildIgnoresOutOfRange(t *testing.T) {
	ch := Build([]model.Reservation{
		{SeatRow: 0, SeatCol: 1},
		{SeatRow: 13, SeatCol: 2},
		{SeatRow: 3, SeatCol: 0},
		{SeatRow: 3, SeatCol: 5},
		{SeatRow: -1, SeatCol: -1},
	})
	for r := 0; r < model.SeatRows; r++ {
		for c := 0; c < model.SeatCols; c++ {
			if ch.Cells[r][c] {
				t.Fatalf("out-of-range reservation marked cell %d,%d", r, c)
			}
		}
	}
}

func TestLinesFormat(t *testing.T) {
	ch := Build([]model.Reservation{{SeatRow: 1, SeatCol: 3}})
	lines := ch.Lines()
	if len(lines) != model.SeatRows {
		t.Fatalf("got %d lines, want %d", len(lines), model.SeatRows)
	}
	if lines[0] != "Row  1: O O X O" {
		t.Errorf("first line = %q", lines[0])
	}
	if lines[11] != "Row 12: O O O O" {
		t.Errorf("last line = %q", lines[11])
	}
	if got := strings.Count(ch.Text(), "\n"); got != model.SeatRows-1 {
		t.Errorf("Text has %d newlines, want %d", got, model.SeatRows-1)
	}
}
