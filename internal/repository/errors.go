// Package repository persists reservations and defines the error types
// that higher layers use to classify failures.  Handlers translate a
// SeatConflictError into an HTTP 409 response; anything else from the
// repository is a server-side failure.
package repository

import "fmt"

// SeatConflictError is returned when a requested seat is already booked
// for the same date and outlet.  Seat names the first conflicting seat in
// the order the caller submitted them.
type SeatConflictError struct {
	Seat string
}

func (e *SeatConflictError) Error() string {
	return fmt.Sprintf("Seat %s already reserved", e.Seat)
}
