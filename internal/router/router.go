package router // package router defines how HTTP routes are registered for the service

import (
	"github.com/labstack/echo/v4"

	"github.com/skyward/flight-seat-booking/internal/handler"
	"github.com/skyward/flight-seat-booking/internal/middleware"
)

// Deps groups everything route registration needs.  RateLimit and MenuCache
// are expected to be pass-through middlewares when their backing services
// are disabled, so registration never branches on availability.
type Deps struct {
	Booking       *handler.BookingHandler
	Admin         *handler.AdminHandler
	SessionSecret string
	Sessions      middleware.SessionValidator
	RateLimit     echo.MiddlewareFunc
	MenuCache     echo.MiddlewareFunc
}

// Register wires all routes onto the provided Echo instance.
//
// Public surface:
//
//	GET  /            main menu (cached)
//	GET  /healthz     liveness probe
//	GET  /reserve     current seating chart
//	POST /reserve     submit a booking (rate limited)
//
// Admin surface:
//
//	GET  /admin/login  login form descriptor
//	POST /admin/login  submit credentials (rate limited)
//	GET  /admin        dashboard (session gated)
//	POST /admin/delete/:id  delete a reservation (session gated)
//	GET  /admin/logout clear the session
func Register(e *echo.Echo, d Deps) {
	e.GET("/healthz", handler.Health)
	e.GET("/", handler.Menu, d.MenuCache)

	e.GET("/reserve", d.Booking.ShowChart)
	e.POST("/reserve", d.Booking.Reserve, d.RateLimit)

	e.GET("/admin/login", d.Admin.LoginForm)
	e.POST("/admin/login", d.Admin.Login, d.RateLimit)
	e.GET("/admin/logout", d.Admin.Logout)

	g := e.Group("/admin", middleware.AdminSession(d.SessionSecret, d.Sessions))
	g.GET("", d.Admin.Dashboard)
	g.POST("/delete/:id", d.Admin.Delete)
}
