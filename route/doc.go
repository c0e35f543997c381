// Package route finds a shortest street-level route across a citygrid.Grid
// using breadth-first search, recording enough state to replay the search
// visually afterwards.
//
// What
//
//   - FindBestRoute explores the grid in non-decreasing distance (cell count)
//     from the departure cell and stops the first time the destination is
//     dequeued, which makes the returned route a shortest one.
//   - Returns a Result containing:
//   - Best: the optimal route, or nil when the destination is unreachable
//   - Discarded: every explored segment that strayed off the optimal route
//   - Grid: the (unmodified) input map
//   - Snapshots: periodic copies of the visited set, for progressive
//     visualization of the search
//   - Supports functional hooks at two stages:
//   - OnDequeue (immediately after a cell leaves the work queue)
//   - OnSnapshot (after a snapshot is captured)
//   - Honors a configurable snapshot interval (default every 5th dequeue).
//
// Determinism
//
//	citygrid.Grid.Neighbors enumerates cells in a fixed north, south, west,
//	east order and the work queue is FIFO, so ties between equal-length
//	routes always break the same way and the whole search is reproducible.
//
// Route ownership
//
//	Segments grow copy-on-extend: enqueueing a neighbor copies the current
//	segment and appends one cell, so a segment never mutates after it has
//	been recorded or returned. Snapshots are likewise independent copies of
//	the visited set; nothing in a Result aliases search-internal state.
//
// Complexity (R×C grid cells)
//
//   - Time:   O((R×C)²) worst case — each of the O(R×C) enqueues copies a
//     segment of length O(R×C).
//   - Memory: O((R×C)²) worst case for the recorded segments, O(R×C) for the
//     queue and visited set.
//
// Usage
//
//	res, err := route.FindBestRoute(grid)
//	switch {
//	case errors.Is(err, citygrid.ErrStartNotFound),
//		errors.Is(err, citygrid.ErrGoalNotFound):
//		// map without markers: empty result, caller branches
//	case err != nil:
//		// ErrGridNil, ErrOptionViolation, or context cancellation
//	case res.Best == nil:
//		// destination unreachable: a normal outcome, not an error
//	default:
//		// res.Best holds a shortest route
//	}
//
// Options
//
//   - DefaultOptions(): background Context, snapshot every 5th dequeue,
//     no-op hooks.
//   - WithContext(ctx):          set a custom context for cancellation.
//   - WithSnapshotInterval(n):   capture every nth dequeue (n ≥ 1).
//   - WithOnDequeue(fn):         hook after each dequeue.
//   - WithOnSnapshot(fn):        hook after each snapshot capture.
//
// Errors
//
//   - ErrGridNil                 if the grid pointer is nil.
//   - ErrOptionViolation         if an invalid Option is supplied.
//   - citygrid.ErrStartNotFound  if the map has no departure marker.
//   - citygrid.ErrGoalNotFound   if the map has no destination marker.
//
// The marker errors arrive alongside a non-nil, empty Result so callers can
// still hand the untouched grid to the report layer.
package route
