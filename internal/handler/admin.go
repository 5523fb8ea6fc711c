package handler

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/skyward/flight-seat-booking/internal/config"
	"github.com/skyward/flight-seat-booking/internal/pricing"
	"github.com/skyward/flight-seat-booking/internal/seating"
	"github.com/skyward/flight-seat-booking/internal/utils"
)

// AdminHandler bundles dependencies for the admin flows: login, dashboard,
// delete and logout.  Dashboard and delete assume the session gate
// middleware has already admitted the request.
type AdminHandler struct {
	Cfg          config.Config
	Admins       AdminStore
	Sessions     SessionStore
	Reservations ReservationStore
}

func NewAdminHandler(cfg config.Config, admins AdminStore, sessions SessionStore, reservations ReservationStore) *AdminHandler {
	if admins == nil || sessions == nil || reservations == nil {
		panic("nil store passed to NewAdminHandler")
	}
	return &AdminHandler{Cfg: cfg, Admins: admins, Sessions: sessions, Reservations: reservations}
}

// reservationView pairs a reservation with its computed price for the
// dashboard listing.
type reservationView struct {
	ID            uint64 `json:"id"`
	PassengerName string `json:"passenger_name"`
	SeatRow       int    `json:"seat_row"`
	SeatColumn    int    `json:"seat_column"`
	ETicket       string `json:"e_ticket"`
	Created       string `json:"created"`
	Price         string `json:"price"`
}

// LoginForm handles GET /admin/login.  It describes the credential form the
// client should submit; rendering is the client's job.
func (h *AdminHandler) LoginForm(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"action": "/admin/login",
		"fields": []string{"username", "password"},
	})
}

// Login handles POST /admin/login.  On a credential match it records a
// session, sets the session cookie and redirects to the dashboard; otherwise
// it answers 401 so the client redisplays the form.
func (h *AdminHandler) Login(c echo.Context) error {
	username := strings.TrimSpace(c.FormValue("username"))
	password := strings.TrimSpace(c.FormValue("password"))

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	admin, err := h.Admins.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Invalid username or password."})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if !utils.VerifyCredential(admin.Password, password) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Invalid username or password."})
	}

	tok, err := utils.NewSessionToken(h.Cfg.SessionSecret, admin.Username, h.Cfg.SessionTTLMin)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue session failed"})
	}
	if err := h.Sessions.Store(ctx, admin.Username, utils.HashSessionRaw(tok.Token), tok.Exp); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "save session failed"})
	}

	c.SetCookie(&http.Cookie{
		Name:     utils.SessionCookie,
		Value:    tok.Token,
		Path:     "/",
		Expires:  tok.Exp,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return c.Redirect(http.StatusSeeOther, "/admin")
}

// Dashboard handles GET /admin.  It returns the seating chart, every
// reservation paired with its price, and the total sales figure.  The
// dashboard never mutates anything.
func (h *AdminHandler) Dashboard(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	reservations, err := h.Reservations.ListAll(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}

	views := make([]reservationView, 0, len(reservations))
	for _, r := range reservations {
		cents, err := pricing.PriceOf(r.SeatRow, r.SeatCol)
		if err != nil {
			continue // unpriceable rows are skipped, matching the chart renderer
		}
		views = append(views, reservationView{
			ID:            r.ID,
			PassengerName: r.PassengerName,
			SeatRow:       r.SeatRow,
			SeatColumn:    r.SeatCol,
			ETicket:       r.ETicket,
			Created:       r.CreatedAt.UTC().Format(time.RFC3339),
			Price:         pricing.FormatCents(cents),
		})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"admin":        c.Get("admin_username"),
		"seating":      seating.Build(reservations).Text(),
		"total_sales":  pricing.FormatCents(pricing.TotalSales(reservations)),
		"reservations": views,
	})
}

// Delete handles POST /admin/delete/:id.  A missing reservation is treated
// as success; either way the caller is sent back to the dashboard.
func (h *AdminHandler) Delete(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Reservations.DeleteByID(ctx, id); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	return c.Redirect(http.StatusSeeOther, "/admin")
}

// Logout handles GET /admin/logout.  It revokes the session row, clears the
// cookie and redirects to the main menu.  Logging out twice is not an
// error: with no cookie present this is just the redirect.
func (h *AdminHandler) Logout(c echo.Context) error {
	if cookie, err := c.Cookie(utils.SessionCookie); err == nil && cookie.Value != "" {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
		defer cancel()
		_ = h.Sessions.RevokeByHash(ctx, utils.HashSessionRaw(cookie.Value))
	}
	c.SetCookie(&http.Cookie{
		Name:     utils.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	return c.Redirect(http.StatusSeeOther, "/")
}
