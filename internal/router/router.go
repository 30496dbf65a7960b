package router // package router defines how HTTP routes are registered for the API

import (
	"io/fs"
	"strings"

	"github.com/labstack/echo/v4"

	"seatbooking/internal/handler"
	"seatbooking/web"
)

// RegisterRoutes wires the booking API and the static client onto the
// provided Echo instance.  Any middleware passed in is applied to the
// /api group only; the static assets are served unconditionally.
//
// Static serving mirrors the client's expectations: the root path serves
// the landing page, known assets are served as-is, and every other path
// falls back to the booking app's entry document.
func RegisterRoutes(e *echo.Echo, h *handler.ReservationHandler, mw ...echo.MiddlewareFunc) {
	e.GET("/healthz", handler.Health)

	api := e.Group("/api", mw...)
	api.GET("/layout", h.GetLayout)
	api.GET("/reserved", h.GetReserved)
	api.POST("/reserve", h.CreateReservation)

	e.GET("/", func(c echo.Context) error {
		return echo.StaticFileHandler("home.html", web.FS)(c)
	})
	e.GET("/*", serveClient)
}

// serveClient serves embedded assets by name and falls back to the
// booking app's index.html for unknown paths, so deep links into the
// client keep working.
func serveClient(c echo.Context) error {
	name := strings.TrimPrefix(c.Request().URL.Path, "/")
	if _, err := fs.Stat(web.FS, name); err != nil {
		return echo.StaticFileHandler("index.html", web.FS)(c)
	}
	return echo.StaticFileHandler(name, web.FS)(c)
}
