package mapfile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/routegrid/citygrid"
	"github.com/katalvlaran/routegrid/mapfile"
)

// TestLoadBytes decodes a literal map block.
func TestLoadBytes(t *testing.T) {
	src := []byte(`
map {
  rows = [
    "E #",
    " # ",
    "  S",
  ]
}
`)
	g, err := mapfile.LoadBytes("city.hcl", src)
	require.NoError(t, err)
	require.Equal(t, 3, g.Rows())
	require.Equal(t, 3, g.Cols())

	start, goal, err := g.Locate()
	require.NoError(t, err)
	require.Equal(t, citygrid.Coord{Row: 0, Col: 0}, start)
	require.Equal(t, citygrid.Coord{Row: 2, Col: 2}, goal)
}

// TestLoadBytes_MarkerVariables exercises the decode context: rows built
// from the exposed marker variables.
func TestLoadBytes_MarkerVariables(t *testing.T) {
	src := []byte(`
map {
  rows = [
    "${start}${free}${blocked}",
    "${free}${free}${goal}",
  ]
}
`)
	g, err := mapfile.LoadBytes("city.hcl", src)
	require.NoError(t, err)
	require.Equal(t, citygrid.Start, g.At(citygrid.Coord{Row: 0, Col: 0}))
	require.Equal(t, citygrid.Blocked, g.At(citygrid.Coord{Row: 0, Col: 2}))
	require.Equal(t, citygrid.Goal, g.At(citygrid.Coord{Row: 1, Col: 2}))
}

// TestLoadBytes_Errors covers syntax errors, schema errors, and grid shape
// errors.
func TestLoadBytes_Errors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		err  error
	}{
		{"Syntax", `map {`, mapfile.ErrDecode},
		{"MissingRows", `map {}`, mapfile.ErrDecode},
		{"UnknownVariable", `map { rows = ["${wall}"] }`, mapfile.ErrDecode},
		{"Ragged", `map { rows = ["E ", "S"] }`, citygrid.ErrNonRectangular},
		{"Empty", `map { rows = [] }`, citygrid.ErrEmptyGrid},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := mapfile.LoadBytes("city.hcl", []byte(tc.src))
			require.ErrorIs(t, err, tc.err)
		})
	}
}

// TestLoad reads a map file from disk, and reports missing files as a
// decode error.
func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "city.hcl")
	require.NoError(t, os.WriteFile(path, []byte(`
map {
  rows = ["ES"]
}
`), 0o644))

	g, err := mapfile.Load(path)
	require.NoError(t, err)
	require.Equal(t, 1, g.Rows())
	require.Equal(t, 2, g.Cols())

	_, err = mapfile.Load(filepath.Join(dir, "missing.hcl"))
	require.ErrorIs(t, err, mapfile.ErrDecode)
}
