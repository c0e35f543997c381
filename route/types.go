// Package route provides tunable options and result types for the
// breadth-first route search over a citygrid.Grid.
package route

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/routegrid/citygrid"
)

// Sentinel errors for route searches.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("route: grid is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("route: invalid option supplied")
)

// DefaultSnapshotInterval is the dequeue period between visited-set
// snapshots when no WithSnapshotInterval option is given.
const DefaultSnapshotInterval = 5

// Segment is an ordered sequence of adjacent grid cells, starting at the
// departure cell. Segments are copy-on-extend: the search never mutates a
// segment after recording it.
type Segment []citygrid.Coord

// extend returns a new Segment consisting of s plus one more cell.
// The receiver is copied, never modified.
func (s Segment) extend(c citygrid.Coord) Segment {
	next := make(Segment, len(s), len(s)+1)
	copy(next, s)

	return append(next, c)
}

// Snapshot is an immutable point-in-time copy of the visited set, captured
// purely for visualization. Step is the 0-based dequeue index at capture.
type Snapshot struct {
	Step    int
	Visited citygrid.CoordSet
}

// Result holds the outcome of a route search:
//   - Best: a shortest route from departure to destination, nil when
//     unreachable (or when the map carried no markers).
//   - Discarded: explored segments that strayed off the optimal route; when
//     no route exists, every explored segment of more than one cell.
//   - Grid: the original, unmodified map.
//   - Snapshots: visited-set copies in capture order.
type Result struct {
	Best      Segment
	Discarded []Segment
	Grid      *citygrid.Grid
	Snapshots []Snapshot
}

// Found reports whether a route to the destination was found.
func (r *Result) Found() bool { return r.Best != nil }

// FinalVisited returns the visited set of the last snapshot, which covers
// every cell the search ever reached. Returns nil when no snapshot was
// captured.
func (r *Result) FinalVisited() citygrid.CoordSet {
	if len(r.Snapshots) == 0 {
		return nil
	}

	return r.Snapshots[len(r.Snapshots)-1].Visited
}

// Option configures the search via functional arguments. An invalid Option
// is recorded internally and surfaced as ErrOptionViolation when
// FindBestRoute is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize a route search.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// SnapshotInterval is the dequeue period between visited-set snapshots.
	// Must be ≥ 1.
	SnapshotInterval int

	// OnDequeue is called immediately after a cell leaves the work queue.
	// Receives the cell and the 0-based dequeue index.
	OnDequeue func(c citygrid.Coord, step int)

	// OnSnapshot is called after each snapshot capture.
	OnSnapshot func(s Snapshot)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - SnapshotInterval = DefaultSnapshotInterval
//   - no-op hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:              context.Background(),
		SnapshotInterval: DefaultSnapshotInterval,
		OnDequeue:        func(citygrid.Coord, int) {},
		OnSnapshot:       func(Snapshot) {},
		err:              nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithSnapshotInterval captures a visited-set snapshot every nth dequeue.
//
//	n ≥ 1: capture period
//	n < 1: invalid option → ErrOptionViolation
func WithSnapshotInterval(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: SnapshotInterval must be ≥ 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.SnapshotInterval = n
	}
}

// WithOnDequeue registers a callback to run after each dequeue.
func WithOnDequeue(fn func(c citygrid.Coord, step int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnSnapshot registers a callback to run after each snapshot capture.
func WithOnSnapshot(fn func(s Snapshot)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnSnapshot = fn
		}
	}
}
