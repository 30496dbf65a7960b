// Package handler exposes the HTTP handlers of the booking API.  Error
// responses follow one shape throughout: a JSON object with a single
// "error" string, so the client can show server text verbatim.
package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"seatbooking/internal/grid"
	"seatbooking/internal/middleware"
	"seatbooking/internal/repository"
)

// ReservationHandler serves the reserved-seat listing, reservation
// creation and the seat-grid layout.  The cache client is optional; when
// present, a successful create purges cached read responses so the next
// listing reflects the new reservation.
type ReservationHandler struct {
	Repo        *repository.ReservationRepo // conflict-checked reservation store
	Layout      grid.Topology               // fixed seat topology served to clients
	cache       *redis.Client               // nil when response caching is disabled
	cachePrefix string                      // key namespace to purge after writes
	validate    *validator.Validate
}

// NewReservationHandler constructs a ReservationHandler.  repo must be
// non-nil; rdb may be nil to run without a response cache.
func NewReservationHandler(repo *repository.ReservationRepo, rdb *redis.Client, cachePrefix string) *ReservationHandler {
	if repo == nil {
		panic("nil repository passed to NewReservationHandler")
	}
	return &ReservationHandler{
		Repo:        repo,
		Layout:      grid.Default(),
		cache:       rdb,
		cachePrefix: cachePrefix,
		validate:    validator.New(),
	}
}

// GetLayout handles GET /api/layout.  It returns the fixed row and column
// enumeration so the client can build the seat grid without hardcoding it.
func (h *ReservationHandler) GetLayout(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Layout)
}

// GetReserved handles GET /api/reserved?date=YYYY-MM-DD&outlet=Name.  It
// returns every seat booked for that exact date and outlet, flattened
// across reservations without deduplication.  Both parameters are
// required.
func (h *ReservationHandler) GetReserved(c echo.Context) error {
	date := c.QueryParam("date")
	outlet := c.QueryParam("outlet")
	if date == "" || outlet == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "date and outlet required"})
	}
	seats, err := h.Repo.ListReservedSeats(c.Request().Context(), date, outlet)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to read reservations"})
	}
	return c.JSON(http.StatusOK, echo.Map{"reserved": seats})
}

// reserveRequest is the body of POST /api/reserve.  All fields are
// required; seats must hold at least one non-empty identifier.
type reserveRequest struct {
	Name   string   `json:"name" validate:"required"`
	HP     string   `json:"hp" validate:"required"`
	Date   string   `json:"date" validate:"required"`
	Time   string   `json:"time" validate:"required"`
	Outlet string   `json:"outlet" validate:"required"`
	Seats  []string `json:"seats" validate:"required,min=1,dive,required"`
}

// CreateReservation handles POST /api/reserve.  The request is validated,
// then handed to the repository, which performs the conflict check and
// the append as one atomic unit.  Responses: 200 with the stored
// reservation, 400 on a malformed request, 409 when a requested seat is
// already taken (the first such seat in submission order is named).
func (h *ReservationHandler) CreateReservation(c echo.Context) error {
	var req reserveRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Missing fields or empty seats"})
	}
	req.Name = strings.TrimSpace(req.Name)
	req.HP = strings.TrimSpace(req.HP)
	req.Date = strings.TrimSpace(req.Date)
	req.Time = strings.TrimSpace(req.Time)
	req.Outlet = strings.TrimSpace(req.Outlet)
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Missing fields or empty seats"})
	}

	res, err := h.Repo.Create(c.Request().Context(), req.Name, req.HP, req.Date, req.Time, req.Outlet, req.Seats)
	if err != nil {
		var conflict *repository.SeatConflictError
		if errors.As(err, &conflict) {
			return c.JSON(http.StatusConflict, echo.Map{"error": conflict.Error()})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to save reservation"})
	}

	if err := middleware.PurgeCache(c.Request().Context(), h.cache, h.cachePrefix); err != nil {
		// Entries still expire via TTL; a failed purge is not worth a 500.
		c.Logger().Warnf("cache purge after reservation %s: %v", res.ID, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"ok": true, "reservation": res})
}
