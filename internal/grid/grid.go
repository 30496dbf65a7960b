// Package grid describes the fixed seating topology of an outlet.  The
// grid is a small rectangle of row labels crossed with column numbers;
// every valid seat identifier is the row label concatenated with the
// column number ("A1", "B5").  The topology is static and shared by all
// outlets, so it lives in code rather than configuration.
package grid

import "strconv"

// Topology enumerates the rows and columns of the seat grid.
type Topology struct {
	Rows []string `json:"rows"`
	Cols []int    `json:"cols"`
}

// Default is the seating layout rendered by the client: two rows of five.
func Default() Topology {
	return Topology{
		Rows: []string{"A", "B"},
		Cols: []int{1, 2, 3, 4, 5},
	}
}

// SeatID builds the identifier for a (row, column) pair.
func SeatID(row string, col int) string {
	return row + strconv.Itoa(col)
}

// SeatIDs enumerates every seat identifier in the topology, row-major.
func (t Topology) SeatIDs() []string {
	ids := make([]string, 0, len(t.Rows)*len(t.Cols))
	for _, r := range t.Rows {
		for _, c := range t.Cols {
			ids = append(ids, SeatID(r, c))
		}
	}
	return ids
}

// Contains reports whether id addresses a seat in the topology.
func (t Topology) Contains(id string) bool {
	for _, r := range t.Rows {
		for _, c := range t.Cols {
			if SeatID(r, c) == id {
				return true
			}
		}
	}
	return false
}
