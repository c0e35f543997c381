package report

import (
	"github.com/katalvlaran/routegrid/citygrid"
)

// CellClass is the numeric render classification of one grid cell. The
// values form a fixed contract with renderers.
type CellClass int

const (
	// ClassFree marks an open street cell.
	ClassFree CellClass = iota
	// ClassBlocked marks a congested cell.
	ClassBlocked
	// ClassStart marks the departure cell.
	ClassStart
	// ClassGoal marks the destination cell.
	ClassGoal
	// ClassRoute marks a cell on the optimal route; snapshot views reuse it
	// for the explored area.
	ClassRoute
	// ClassDiscarded marks a cell reached by the search but off the optimal
	// route.
	ClassDiscarded
)

// String returns a human-readable class name.
func (c CellClass) String() string {
	switch c {
	case ClassFree:
		return "free"
	case ClassBlocked:
		return "blocked"
	case ClassStart:
		return "start"
	case ClassGoal:
		return "goal"
	case ClassRoute:
		return "route"
	case ClassDiscarded:
		return "discarded"
	}

	return "unknown"
}

// Matrix is a rectangular cell-classification view of a grid.
type Matrix [][]CellClass

// Rows returns the number of matrix rows.
func (m Matrix) Rows() int { return len(m) }

// Cols returns the number of matrix columns.
func (m Matrix) Cols() int {
	if len(m) == 0 {
		return 0
	}

	return len(m[0])
}

// At returns the class at (row, col).
func (m Matrix) At(c citygrid.Coord) CellClass {
	return m[c.Row][c.Col]
}

// base classifies grid markers only: blocked, start, goal, free.
func base(g *citygrid.Grid) Matrix {
	m := make(Matrix, g.Rows())
	for r := 0; r < g.Rows(); r++ {
		m[r] = make([]CellClass, g.Cols())
		for c := 0; c < g.Cols(); c++ {
			switch g.At(citygrid.Coord{Row: r, Col: c}) {
			case citygrid.Blocked:
				m[r][c] = ClassBlocked
			case citygrid.Start:
				m[r][c] = ClassStart
			case citygrid.Goal:
				m[r][c] = ClassGoal
			default:
				m[r][c] = ClassFree
			}
		}
	}

	return m
}

// SnapshotMatrix classifies one mid-search view of the grid: marker classes
// for blocked/start/goal cells, ClassRoute for every other visited cell.
// Complexity: O(R×C).
func SnapshotMatrix(g *citygrid.Grid, visited citygrid.CoordSet) Matrix {
	m := base(g)
	for c := range visited {
		if m[c.Row][c.Col] == ClassFree {
			m[c.Row][c.Col] = ClassRoute
		}
	}

	return m
}

// FinalMatrix classifies the finished search. Layering rule: discarded paint
// (every visited free cell) is applied first, route paint last, so the
// optimal route overrides the explored area on overlapping cells. Marker
// cells keep their marker classes.
// Complexity: O(R×C + route length).
func FinalMatrix(g *citygrid.Grid, best []citygrid.Coord, visited citygrid.CoordSet) Matrix {
	m := base(g)
	for c := range visited {
		if m[c.Row][c.Col] == ClassFree {
			m[c.Row][c.Col] = ClassDiscarded
		}
	}
	for _, c := range best {
		if m[c.Row][c.Col] == ClassFree || m[c.Row][c.Col] == ClassDiscarded {
			m[c.Row][c.Col] = ClassRoute
		}
	}

	return m
}
