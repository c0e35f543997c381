// Package report converts a city grid and route-search output into numeric
// cell-classification matrices for an external renderer.
//
// What:
//
//   - CellClass enumerates the fixed render classes
//     {Free=0, Blocked=1, Start=2, Goal=3, Route=4, Discarded=5}.
//   - SnapshotMatrix classifies one mid-search view:
//     Free, Blocked, Start, Goal, and Route(4) for every visited cell — the
//     growing explored area of the search.
//   - FinalMatrix classifies the finished search with a layering rule:
//     discarded paint is applied first over free cells, route paint is
//     applied last and overrides discarded paint on overlapping cells.
//
// Why:
//
//   - Keep the search engine free of any rendering dependency: this layer is
//     pure classification, and an external facility decides colors, legends
//     and output formats.
//
// Complexity: O(R×C) per matrix.
//
// The numeric values are part of the contract with renderers and never
// change.
package report
