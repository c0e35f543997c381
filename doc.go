// Package routegrid finds shortest street-level routes across a city map
// and replays the search visually, frame by frame.
//
// 🚀 What is routegrid?
//
//	A small, layered toolkit that brings together:
//		• citygrid — immutable rectangular city maps of free/blocked/marker cells
//		• route    — breadth-first route search with visitation snapshots
//		• report   — numeric cell-classification matrices for renderers
//		• render   — PNG rasterization with a fixed palette and legend
//		• mapfile  — HCL map files for external city layouts
//
// ✨ Why choose routegrid?
//
//   - Deterministic – fixed neighbor order and FIFO queues make every search
//     reproducible, snapshots included
//   - Strict layering – the search engine never touches image code; the
//     report layer is pure classification
//   - Extensible – functional options and hooks (OnDequeue, OnSnapshot…)
//     for custom instrumentation
//
// Quick ASCII example — three streets, two congested cells:
//
//	E _ #
//	_ # _
//	_ _ S
//
//	the only shortest route hugs the left and bottom edges:
//	(0,0)→(1,0)→(2,0)→(2,1)→(2,2).
//
// The routegrid command ties the layers together: it searches a map (built
// in, or loaded from an HCL file), writes one PNG per snapshot, and finishes
// with a final annotated map.
//
//	go get github.com/katalvlaran/routegrid
package routegrid
