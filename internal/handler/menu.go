package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Menu serves the main menu: the entry points of the public booking flow and
// the admin flow.  The response is static and safe to cache.
func Menu(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"service": "flight seat booking",
		"links": echo.Map{
			"reserve":     "/reserve",
			"admin_login": "/admin/login",
		},
	})
}
