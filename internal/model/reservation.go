package model

import "time"

// Reservation records a booking of one or more seats at an outlet on a
// specific date.  It is the only persisted entity: the store is a JSON
// array of these records, append-only from the application's point of
// view (no update or delete exists).
//
// Fields:
//
//	ID        – unique identifier, assigned at creation.
//	Name      – customer name.
//	HP        – customer contact phone ("hp" on the wire).
//	Date      – calendar date, YYYY-MM-DD.
//	Time      – time of day, free-form; clients default it to "00:00".
//	Outlet    – venue identifier partitioning reservations.
//	Seats     – seat identifiers booked, e.g. "A1".
//	CreatedAt – timestamp of persistence, UTC.
type Reservation struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	HP        string    `json:"hp"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
	Outlet    string    `json:"outlet"`
	Seats     []string  `json:"seats"`
	CreatedAt time.Time `json:"createdAt"`
}
