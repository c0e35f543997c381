package citygrid

// neighborOffsets lists the 4-connected row/col deltas in the fixed
// evaluation order north, south, west, east. Traversals that follow this
// order are fully reproducible.
var neighborOffsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// Grid is an immutable rectangular city map. Construct it with New or Parse;
// the input is deep-copied and the grid never changes afterwards.
type Grid struct {
	rows, cols int
	cells      [][]Marker
}

// New constructs a Grid from a non-empty, rectangular byte matrix.
// It deep-copies the input to ensure immutability and maps each byte onto a
// Marker (unrecognized bytes become Free).
// Returns ErrEmptyGrid if the matrix has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(R×C) time and memory.
func New(rows [][]byte) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	r, c := len(rows), len(rows[0])
	cells := make([][]Marker, r)
	for i, row := range rows {
		if len(row) != c {
			return nil, ErrNonRectangular
		}
		cells[i] = make([]Marker, c)
		for j, b := range row {
			cells[i][j] = markerOf(b)
		}
	}

	return &Grid{rows: r, cols: c, cells: cells}, nil
}

// Parse constructs a Grid from rows of single-character markers.
// Same validation and copying rules as New.
func Parse(rows []string) (*Grid, error) {
	raw := make([][]byte, len(rows))
	for i, row := range rows {
		raw[i] = []byte(row)
	}

	return New(raw)
}

// Rows returns the number of grid rows (R).
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of grid columns (C).
func (g *Grid) Cols() int { return g.cols }

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// At returns the marker stored at c. The coordinate must be in bounds.
func (g *Grid) At(c Coord) Marker {
	return g.cells[c.Row][c.Col]
}

// Neighbors returns the in-bounds 4-connected neighbors of c in the fixed
// north, south, west, east order. Blocked cells are included; callers decide
// what is passable.
// Complexity: O(1) (at most 4 results).
func (g *Grid) Neighbors(c Coord) []Coord {
	out := make([]Coord, 0, len(neighborOffsets))
	for _, d := range neighborOffsets {
		n := Coord{Row: c.Row + d[0], Col: c.Col + d[1]}
		if g.InBounds(n) {
			out = append(out, n)
		}
	}

	return out
}

// Locate scans the grid row-major for the departure and destination markers.
// Returns ErrStartNotFound or ErrGoalNotFound when a marker is absent.
// Complexity: O(R×C).
func (g *Grid) Locate() (start, goal Coord, err error) {
	var foundStart, foundGoal bool
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			switch g.cells[r][c] {
			case Start:
				start, foundStart = Coord{Row: r, Col: c}, true
			case Goal:
				goal, foundGoal = Coord{Row: r, Col: c}, true
			}
		}
	}
	if !foundStart {
		return Coord{}, Coord{}, ErrStartNotFound
	}
	if !foundGoal {
		return Coord{}, Coord{}, ErrGoalNotFound
	}

	return start, goal, nil
}

// defaultRows is the built-in demonstration city map: a 9×10 street layout
// with a departure in the top-left corner and a destination near the
// bottom-right, separated by several congested blocks.
var defaultRows = []string{
	"E  #     #",
	"## # ###  ",
	"   #   ## ",
	" ### #    ",
	"     # ## ",
	"### #### #",
	"          ",
	" ##### ## ",
	"       #S ",
}

// DefaultMap returns the built-in demonstration map.
func DefaultMap() *Grid {
	g, err := Parse(defaultRows)
	if err != nil {
		panic(err)
	}

	return g
}
