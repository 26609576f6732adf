// Package pages serves the fixed demo pages that sit next to the file
// browser.
package pages

import (
	"github.com/labstack/echo/v4"
)

func RegisterRoutes(e *echo.Echo) {
	h := &handler{}

	e.GET("/foo", h.placeholder)
	e.GET("/video", h.video)
}
