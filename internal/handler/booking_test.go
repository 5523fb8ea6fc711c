package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/skyward/flight-seat-booking/internal/model"
	"github.com/skyward/flight-seat-booking/internal/repository"
)

// fakeReservationStore is an in-memory ReservationStore enforcing the same
// uniqueness rules as the reservations table.
type fakeReservationStore struct {
	nextID    uint64
	items     map[uint64]model.Reservation
	failCodes int // times Create reports an e-ticket collision before succeeding
}

func newFakeReservationStore() *fakeReservationStore {
	return &fakeReservationStore{items: make(map[uint64]model.Reservation)}
}

func (f *fakeReservationStore) Create(_ context.Context, res *model.Reservation) error {
	for _, r := range f.items {
		if r.SeatRow == res.SeatRow && r.SeatCol == res.SeatCol {
			return repository.ErrSeatTaken
		}
	}
	if f.failCodes > 0 {
		f.failCodes--
		return repository.ErrCodeTaken
	}
	for _, r := range f.items {
		if r.ETicket == res.ETicket {
			return repository.ErrCodeTaken
		}
	}
	f.nextID++
	res.ID = f.nextID
	res.CreatedAt = time.Now().UTC()
	f.items[res.ID] = *res
	return nil
}

func (f *fakeReservationStore) ListAll(_ context.Context) ([]model.Reservation, error) {
	ids := make([]uint64, 0, len(f.items))
	for id := range f.items {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := make([]model.Reservation, 0, len(ids))
	for _, id := range ids {
		out = append(out, f.items[id])
	}
	return out, nil
}

func (f *fakeReservationStore) DeleteByID(_ context.Context, id uint64) error {
	delete(f.items, id)
	return nil
}

// mustBook seeds a reservation directly into the fake store.
func mustBook(t *testing.T, f *fakeReservationStore, row, col int) {
	t.Helper()
	res := model.Reservation{PassengerName: "Seed Passenger", SeatRow: row, SeatCol: col, ETicket: "SEED0000"}
	res.ETicket = res.ETicket[:7] + string(rune('A'+len(f.items)%26))
	if err := f.Create(context.Background(), &res); err != nil {
		t.Fatalf("seed booking (%d,%d): %v", row, col, err)
	}
}

func newBookingEcho(store *fakeReservationStore) *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	h := NewBookingHandler(store, nil)
	e.GET("/reserve", h.ShowChart)
	e.POST("/reserve", h.Reserve)
	return e
}

// doForm performs a request against the echo instance, form-encoding the
// body when one is given.
func doForm(e *echo.Echo, method, path string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(method, path, body)
	if form != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	}
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode body %q: %v", rec.Body.String(), err)
	}
	return out
}

func reserveForm3x2() url.Values {
	return url.Values{
		"first_name":  {"Ada"},
		"last_name":   {"Lovelace"},
		"seat_row":    {"3"},
		"seat_column": {"2"},
	}
}

func TestReserveSuccess(t *testing.T) {
	store := newFakeReservationStore()
	e := newBookingEcho(store)

	rec := doForm(e, http.MethodPost, "/reserve", reserveForm3x2())
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	body := decodeBody(t, rec)
	if body["passenger"] != "Ada Lovelace" {
		t.Errorf("passenger = %v", body["passenger"])
	}
	if body["price"] != "75.00" {
		t.Errorf("price = %v, want 75.00", body["price"])
	}
	code, _ := body["code"].(string)
	if len(code) != 8 {
		t.Errorf("code = %q, want 8 chars", code)
	}
	chart, _ := body["seating"].(string)
	if !strings.Contains(chart, "Row  3: O X O O") {
		t.Errorf("chart does not show booked seat:\n%s", chart)
	}
	if len(store.items) != 1 {
		t.Errorf("store holds %d reservations, want 1", len(store.items))
	}
}

func TestReserveConflict(t *testing.T) {
	store := newFakeReservationStore()
	e := newBookingEcho(store)

	if rec := doForm(e, http.MethodPost, "/reserve", reserveForm3x2()); rec.Code != http.StatusCreated {
		t.Fatalf("first booking status = %d", rec.Code)
	}
	rec := doForm(e, http.MethodPost, "/reserve", reserveForm3x2())
	if rec.Code != http.StatusConflict {
		t.Fatalf("second booking status = %d, want 409", rec.Code)
	}
	body := decodeBody(t, rec)
	if body["error"] != "That seat is already reserved. Please pick another." {
		t.Errorf("error = %v", body["error"])
	}
	if len(store.items) != 1 {
		t.Errorf("store holds %d reservations, want exactly 1", len(store.items))
	}
}

func TestReserveOutOfRange(t *testing.T) {
	store := newFakeReservationStore()
	e := newBookingEcho(store)

	for _, seat := range [][2]string{{"13", "1"}, {"0", "1"}, {"1", "0"}, {"1", "5"}} {
		form := reserveForm3x2()
		form.Set("seat_row", seat[0])
		form.Set("seat_column", seat[1])
		rec := doForm(e, http.MethodPost, "/reserve", form)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("seat %v: status = %d, want 400", seat, rec.Code)
		}
		body := decodeBody(t, rec)
		if body["error"] != "Invalid seat selection. Row must be 1–12 and column 1–4." {
			t.Errorf("seat %v: error = %v", seat, body["error"])
		}
	}
	if len(store.items) != 0 {
		t.Errorf("store changed on invalid input: %d rows", len(store.items))
	}
}

func TestReserveNonNumeric(t *testing.T) {
	store := newFakeReservationStore()
	e := newBookingEcho(store)

	for _, seat := range [][2]string{{"abc", "2"}, {"3", "x"}, {"", "2"}, {"3", ""}} {
		form := reserveForm3x2()
		form.Set("seat_row", seat[0])
		form.Set("seat_column", seat[1])
		rec := doForm(e, http.MethodPost, "/reserve", form)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("seat %v: status = %d, want 400", seat, rec.Code)
		}
		body := decodeBody(t, rec)
		if body["error"] != "Seat row and column must be numbers." {
			t.Errorf("seat %v: error = %v", seat, body["error"])
		}
	}
	if len(store.items) != 0 {
		t.Errorf("store changed on invalid input: %d rows", len(store.items))
	}
}

func TestReserveMissingName(t *testing.T) {
	store := newFakeReservationStore()
	e := newBookingEcho(store)

	form := reserveForm3x2()
	form.Del("first_name")
	rec := doForm(e, http.MethodPost, "/reserve", form)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if len(store.items) != 0 {
		t.Errorf("store changed on invalid input")
	}
}

func TestReserveRetriesCodeCollision(t *testing.T) {
	store := newFakeReservationStore()
	store.failCodes = 2
	e := newBookingEcho(store)

	rec := doForm(e, http.MethodPost, "/reserve", reserveForm3x2())
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d after collisions, want 201", rec.Code)
	}
	if len(store.items) != 1 {
		t.Errorf("store holds %d reservations, want 1", len(store.items))
	}
}

func TestReserveCodeCollisionExhausted(t *testing.T) {
	store := newFakeReservationStore()
	store.failCodes = 3
	e := newBookingEcho(store)

	rec := doForm(e, http.MethodPost, "/reserve", reserveForm3x2())
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500 after exhausting retries", rec.Code)
	}
	if len(store.items) != 0 {
		t.Errorf("store changed on failed booking")
	}
}

func TestShowChartEmpty(t *testing.T) {
	e := newBookingEcho(newFakeReservationStore())

	rec := doForm(e, http.MethodGet, "/reserve", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	chart, _ := decodeBody(t, rec)["seating"].(string)
	if strings.Contains(chart, "X") {
		t.Errorf("empty store renders reserved cells:\n%s", chart)
	}
	if !strings.Contains(chart, "Row 12: O O O O") {
		t.Errorf("chart missing last row:\n%s", chart)
	}
}
