// Package citygrid defines core types and sentinel errors for the
// citygrid subpackage of github.com/katalvlaran/routegrid.
package citygrid

import (
	"errors"
	"fmt"
)

// Sentinel errors for citygrid operations.
var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("citygrid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("citygrid: all rows must have the same length")
	// ErrStartNotFound indicates the grid carries no departure marker.
	ErrStartNotFound = errors.New("citygrid: start marker not found")
	// ErrGoalNotFound indicates the grid carries no destination marker.
	ErrGoalNotFound = errors.New("citygrid: goal marker not found")
)

// Marker is the content of a single grid cell.
type Marker byte

const (
	// Free marks an open street cell.
	Free Marker = ' '
	// Blocked marks a congested or closed cell that routes must avoid.
	Blocked Marker = '#'
	// Start marks the departure cell; exactly one is expected per grid.
	Start Marker = 'E'
	// Goal marks the destination cell; exactly one is expected per grid.
	Goal Marker = 'S'
)

// String returns a human-readable marker name.
func (m Marker) String() string {
	switch m {
	case Free:
		return "free"
	case Blocked:
		return "blocked"
	case Start:
		return "start"
	case Goal:
		return "goal"
	}
	return fmt.Sprintf("marker(%q)", byte(m))
}

// markerOf maps an input byte onto a Marker. Unrecognized bytes are treated
// as free streets.
func markerOf(b byte) Marker {
	switch Marker(b) {
	case Blocked, Start, Goal:
		return Marker(b)
	}
	return Free
}

// Coord identifies a grid cell by 0-indexed (row, column). The zero value is
// the top-left cell. Coord has structural equality and may key a map.
type Coord struct {
	Row, Col int
}

// String formats the coordinate as "(row,col)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// CoordSet is a set of grid coordinates.
type CoordSet map[Coord]struct{}

// NewCoordSet builds a set holding the given coordinates.
func NewCoordSet(coords ...Coord) CoordSet {
	s := make(CoordSet, len(coords))
	for _, c := range coords {
		s[c] = struct{}{}
	}

	return s
}

// Add inserts c into the set.
func (s CoordSet) Add(c Coord) { s[c] = struct{}{} }

// Has reports whether c is in the set.
func (s CoordSet) Has(c Coord) bool {
	_, ok := s[c]
	return ok
}

// Clone returns an independent copy of the set.
func (s CoordSet) Clone() CoordSet {
	out := make(CoordSet, len(s))
	for c := range s {
		out[c] = struct{}{}
	}

	return out
}
