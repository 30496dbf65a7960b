package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"seatbooking/internal/model"
)

// ReservationRepo stores reservations in a single JSON file: an array of
// model.Reservation records, fully rewritten on every create.  A mutex
// serializes the whole load → conflict-check → append → persist sequence,
// so two concurrent creates for the same seat cannot both pass the
// conflict check against a stale snapshot.  Reads take the same lock for
// the duration of a file load, which is cheap at this store's scale.
type ReservationRepo struct {
	mu   sync.Mutex
	path string
}

// NewReservationRepo returns a ReservationRepo backed by the file at path.
// The file does not need to exist yet; a missing file reads as an empty
// store and is created on the first successful reservation.
func NewReservationRepo(path string) *ReservationRepo {
	return &ReservationRepo{path: path}
}

// load reads the full store from disk.  A missing or unparsable file is
// treated as an empty store rather than an error: the service stays up
// and the problem is logged.  Callers must hold r.mu.
func (r *ReservationRepo) load() []model.Reservation {
	raw, err := os.ReadFile(r.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Printf("reservation store: read %s: %v (treating as empty)", r.path, err)
		}
		return []model.Reservation{}
	}
	var all []model.Reservation
	if err := json.Unmarshal(raw, &all); err != nil {
		log.Printf("reservation store: parse %s: %v (treating as empty)", r.path, err)
		return []model.Reservation{}
	}
	return all
}

// persist writes the full store back to disk.  The data goes to a
// temporary file in the same directory first and is renamed into place,
// so a crash mid-write can never leave a truncated store behind.
// Callers must hold r.mu.
func (r *ReservationRepo) persist(all []model.Reservation) error {
	raw, err := json.MarshalIndent(all, "", "  ")
	if err != nil {
		return fmt.Errorf("encode reservations: %w", err)
	}
	dir := filepath.Dir(r.path)
	tmp, err := os.CreateTemp(dir, ".reservations-*")
	if err != nil {
		return fmt.Errorf("create temp store: %w", err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp store: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp store: %w", err)
	}
	if err := os.Rename(tmp.Name(), r.path); err != nil {
		return fmt.Errorf("replace store: %w", err)
	}
	return nil
}

// reservedFor flattens the seats of every reservation matching the exact
// (date, outlet) pair.  Matching is case-sensitive string equality and the
// result keeps duplicates, mirroring the store's contents as-is.
func reservedFor(all []model.Reservation, date, outlet string) []string {
	seats := []string{}
	for _, res := range all {
		if res.Date == date && res.Outlet == outlet {
			seats = append(seats, res.Seats...)
		}
	}
	return seats
}

// ListReservedSeats returns every seat booked for the given date and
// outlet, flattened across all matching reservations.
func (r *ReservationRepo) ListReservedSeats(ctx context.Context, date, outlet string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	all := r.load()
	r.mu.Unlock()
	return reservedFor(all, date, outlet), nil
}

// Create validates the requested seats against the current store state
// and, when no seat is already taken for the same date and outlet,
// persists a new reservation and returns it.  A *SeatConflictError names
// the first conflicting seat in the caller's submission order.  On any
// error the store is left untouched.
func (r *ReservationRepo) Create(ctx context.Context, name, hp, date, timeOfDay, outlet string, seats []string) (*model.Reservation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	all := r.load()
	taken := make(map[string]struct{})
	for _, s := range reservedFor(all, date, outlet) {
		taken[s] = struct{}{}
	}
	for _, s := range seats {
		if _, ok := taken[s]; ok {
			return nil, &SeatConflictError{Seat: s}
		}
	}

	res := model.Reservation{
		ID:        "resv-" + uuid.NewString(),
		Name:      name,
		HP:        hp,
		Date:      date,
		Time:      timeOfDay,
		Outlet:    outlet,
		Seats:     append([]string(nil), seats...),
		CreatedAt: time.Now().UTC(),
	}
	if err := r.persist(append(all, res)); err != nil {
		return nil, err
	}
	return &res, nil
}
