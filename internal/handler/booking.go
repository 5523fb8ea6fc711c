package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/skyward/flight-seat-booking/internal/model"
	"github.com/skyward/flight-seat-booking/internal/pricing"
	"github.com/skyward/flight-seat-booking/internal/queue"
	"github.com/skyward/flight-seat-booking/internal/repository"
	"github.com/skyward/flight-seat-booking/internal/seating"
	"github.com/skyward/flight-seat-booking/internal/ticket"
)

// codeRetries bounds how often booking retries after an e-ticket code
// collision before giving up.
const codeRetries = 3

// BookingHandler implements the public seat reservation flow.
type BookingHandler struct {
	Reservations ReservationStore
	Events       EventPublisher // may be nil; publishing is best-effort
}

func NewBookingHandler(reservations ReservationStore, events EventPublisher) *BookingHandler {
	if reservations == nil {
		panic("nil store passed to NewBookingHandler")
	}
	return &BookingHandler{Reservations: reservations, Events: events}
}

type reserveForm struct {
	FirstName  string `form:"first_name" validate:"required"`
	LastName   string `form:"last_name" validate:"required"`
	SeatRow    string `form:"seat_row"`
	SeatColumn string `form:"seat_column"`
}

// ShowChart handles GET /reserve.  It returns the current occupancy chart so
// a passenger can pick an open seat.
func (h *BookingHandler) ShowChart(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	chart, err := h.chart(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"seating": chart})
}

// Reserve handles POST /reserve.  It validates the submitted seat, commits
// the reservation through a single conditional insert and returns the
// confirmation together with the post-insert chart.  Every error response
// carries the current (unmodified) chart, mirroring the booking form.
func (h *BookingHandler) Reserve(c echo.Context) error {
	var form reserveForm
	if err := c.Bind(&form); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	form.FirstName = strings.TrimSpace(form.FirstName)
	form.LastName = strings.TrimSpace(form.LastName)

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	chart, err := h.chart(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}

	if err := c.Validate(&form); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error":   "First and last name are required.",
			"seating": chart,
		})
	}

	row, errRow := strconv.Atoi(strings.TrimSpace(form.SeatRow))
	col, errCol := strconv.Atoi(strings.TrimSpace(form.SeatColumn))
	if errRow != nil || errCol != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error":   "Seat row and column must be numbers.",
			"seating": chart,
		})
	}
	if row < 1 || row > model.SeatRows || col < 1 || col > model.SeatCols {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error":   "Invalid seat selection. Row must be 1–12 and column 1–4.",
			"seating": chart,
		})
	}

	passenger := form.FirstName + " " + form.LastName

	res := model.Reservation{
		PassengerName: passenger,
		SeatRow:       row,
		SeatCol:       col,
	}
	// The e_ticket unique key may reject a generated code; retry with a
	// fresh one a few times before reporting failure.
	for attempt := 0; ; attempt++ {
		code, err := ticket.NewCode()
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "code generation failed"})
		}
		res.ETicket = code
		err = h.Reservations.Create(ctx, &res)
		if err == nil {
			break
		}
		if errors.Is(err, repository.ErrSeatTaken) {
			return c.JSON(http.StatusConflict, echo.Map{
				"error":   "That seat is already reserved. Please pick another.",
				"seating": chart,
			})
		}
		if errors.Is(err, repository.ErrCodeTaken) && attempt < codeRetries-1 {
			continue
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create reservation failed"})
	}

	cents, err := pricing.PriceOf(row, col)
	if err != nil {
		// unreachable after range validation above
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "price lookup failed"})
	}

	h.publish(res, cents)

	// Chart returned to the caller reflects the store after the insertion.
	chart, err = h.chart(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"passenger":   passenger,
		"code":        res.ETicket,
		"seat_row":    row,
		"seat_column": col,
		"price":       pricing.FormatCents(cents),
		"seating":     chart,
	})
}

// chart loads all reservations and renders the occupancy chart text.
func (h *BookingHandler) chart(ctx context.Context) (string, error) {
	reservations, err := h.Reservations.ListAll(ctx)
	if err != nil {
		return "", err
	}
	return seating.Build(reservations).Text(), nil
}

// publish emits a reservation.created event in the background.  Failures
// are logged by the publisher and never affect the booking response.
func (h *BookingHandler) publish(res model.Reservation, cents uint32) {
	if h.Events == nil {
		return
	}
	ev := queue.ReservationCreatedEvent{
		EventID:       uuid.NewString(),
		ReservationID: res.ID,
		PassengerName: res.PassengerName,
		SeatRow:       res.SeatRow,
		SeatColumn:    res.SeatCol,
		ETicket:       res.ETicket,
		PriceCents:    cents,
		CreatedAt:     res.CreatedAt.UTC().Format(time.RFC3339),
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = h.Events.PublishReservationCreated(ctx, ev)
	}()
}
