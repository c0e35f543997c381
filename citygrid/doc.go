// Package citygrid models a rectangular city map as an immutable grid of
// cell markers, ready for route searching.
//
// What:
//
//   - Grid wraps a rectangular R×C matrix of Marker values, deep-copied on
//     construction so the map cannot change underneath a search.
//   - Markers distinguish free streets, blocked (congested) streets, the
//     departure cell and the destination cell.
//   - Coord is a fixed-arity (row, column) value type with structural
//     equality, usable as a map key; CoordSet is the companion set.
//   - Locate scans the map row-major for the departure and destination
//     markers.
//   - Neighbors enumerates the in-bounds 4-connected neighbors of a cell in
//     a fixed north, south, west, east order, which makes traversal order
//     over the grid fully reproducible.
//
// Why:
//
//   - Route planning: feed the grid to routegrid/route to find the shortest
//     street-level route around blocked cells.
//   - Reporting: the grid, together with search output, classifies every
//     cell for the routegrid/report and routegrid/render layers.
//
// Input format:
//
//	Each row is a string of single-character markers:
//	  '#' blocked, ' ' free, 'E' departure, 'S' destination.
//	Any other byte is treated as a free street.
//
// Complexity:
//
//   - Parse / New: O(R×C) time and memory (deep copy).
//   - At, InBounds, Neighbors: O(1).
//   - Locate: O(R×C).
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrStartNotFound: no departure marker in the grid.
//   - ErrGoalNotFound: no destination marker in the grid.
package citygrid
