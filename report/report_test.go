package report_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/routegrid/citygrid"
	"github.com/katalvlaran/routegrid/report"
	"github.com/katalvlaran/routegrid/route"
)

// TestCellClassValues pins the numeric contract with renderers.
func TestCellClassValues(t *testing.T) {
	values := map[report.CellClass]int{
		report.ClassFree:      0,
		report.ClassBlocked:   1,
		report.ClassStart:     2,
		report.ClassGoal:      3,
		report.ClassRoute:     4,
		report.ClassDiscarded: 5,
	}
	for class, want := range values {
		if int(class) != want {
			t.Errorf("%s = %d; want %d", class, int(class), want)
		}
	}
}

// TestSnapshotMatrix classifies a mid-search view of a 2×3 map.
func TestSnapshotMatrix(t *testing.T) {
	g, err := citygrid.Parse([]string{
		"E# ",
		" S ",
	})
	require.NoError(t, err)

	visited := citygrid.NewCoordSet(
		citygrid.Coord{Row: 0, Col: 0}, // start: marker class wins
		citygrid.Coord{Row: 1, Col: 0}, // free: painted as explored
	)
	m := report.SnapshotMatrix(g, visited)

	want := report.Matrix{
		{report.ClassStart, report.ClassBlocked, report.ClassFree},
		{report.ClassRoute, report.ClassGoal, report.ClassFree},
	}
	require.Equal(t, want, m)
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())
}

// TestFinalMatrix_Layering verifies that discarded paint goes on first and
// route paint overrides it on overlapping cells.
func TestFinalMatrix_Layering(t *testing.T) {
	g, err := citygrid.Parse([]string{
		"E  ",
		"# S",
	})
	require.NoError(t, err)

	best := []citygrid.Coord{
		{Row: 0, Col: 0},
		{Row: 0, Col: 1},
		{Row: 1, Col: 1},
		{Row: 1, Col: 2},
	}
	// (0,2) was explored but is off the route; (0,1) and (1,1) are both
	// visited and on the route, so route paint must win there.
	visited := citygrid.NewCoordSet(
		citygrid.Coord{Row: 0, Col: 0},
		citygrid.Coord{Row: 0, Col: 1},
		citygrid.Coord{Row: 0, Col: 2},
		citygrid.Coord{Row: 1, Col: 1},
		citygrid.Coord{Row: 1, Col: 2},
	)

	m := report.FinalMatrix(g, best, visited)
	want := report.Matrix{
		{report.ClassStart, report.ClassRoute, report.ClassDiscarded},
		{report.ClassBlocked, report.ClassRoute, report.ClassGoal},
	}
	require.Equal(t, want, m)
}

// TestFinalMatrix_FromSearch runs the real engine on the built-in map and
// checks the classification invariants end to end.
func TestFinalMatrix_FromSearch(t *testing.T) {
	g := citygrid.DefaultMap()
	res, err := route.FindBestRoute(g)
	require.NoError(t, err)
	require.True(t, res.Found())

	m := report.FinalMatrix(g, res.Best, res.FinalVisited())
	require.Equal(t, g.Rows(), m.Rows())
	require.Equal(t, g.Cols(), m.Cols())

	onBest := citygrid.NewCoordSet(res.Best...)
	for r := 0; r < m.Rows(); r++ {
		for c := 0; c < m.Cols(); c++ {
			at := citygrid.Coord{Row: r, Col: c}
			class := m.At(at)
			switch g.At(at) {
			case citygrid.Blocked:
				require.Equal(t, report.ClassBlocked, class)
			case citygrid.Start:
				require.Equal(t, report.ClassStart, class)
			case citygrid.Goal:
				require.Equal(t, report.ClassGoal, class)
			default:
				if onBest.Has(at) {
					require.Equal(t, report.ClassRoute, class, "route cell %v", at)
				} else {
					require.Contains(t,
						[]report.CellClass{report.ClassFree, report.ClassDiscarded}, class,
						"off-route cell %v", at)
				}
			}
		}
	}
}
