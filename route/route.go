// Package route implements breadth-first route search over a city grid,
// returning the optimal route, discarded segments, and visitation snapshots.
package route

import (
	"github.com/katalvlaran/routegrid/citygrid"
)

// queueItem pairs a grid cell with the segment that reached it.
type queueItem struct {
	at      citygrid.Coord
	segment Segment
}

// walker encapsulates mutable search state for one FindBestRoute call.
type walker struct {
	grid     *citygrid.Grid
	goal     citygrid.Coord
	opts     Options
	queue    []queueItem
	visited  citygrid.CoordSet
	explored []Segment
	step     int
	res      *Result
}

// FindBestRoute runs breadth-first search on g from its departure marker to
// its destination marker, applying any number of functional Options.
//
// The first time the destination is dequeued, the accompanying segment is a
// shortest route; ties break by the fixed neighbor order and FIFO dequeue
// order. An unreachable destination is a normal outcome: Result.Best is nil
// and every multi-cell segment lands in Result.Discarded.
//
// A map without a departure or destination marker yields an empty Result
// alongside citygrid.ErrStartNotFound or citygrid.ErrGoalNotFound, so the
// caller can branch without treating the condition as fatal.
// Returns ErrGridNil for a nil grid, ErrOptionViolation for bad options,
// or the context error on cancellation.
func FindBestRoute(g *citygrid.Grid, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	res := &Result{Grid: g}
	start, goal, err := g.Locate()
	if err != nil {
		return res, err
	}

	// Prepare walker
	n := g.Rows() * g.Cols()
	w := &walker{
		grid:    g,
		goal:    goal,
		opts:    o,
		queue:   make([]queueItem, 0, n),
		visited: make(citygrid.CoordSet, n),
		res:     res,
	}

	// Seed queue with the departure cell and its one-cell segment
	w.enqueue(start, Segment{start})
	if err = w.loop(); err != nil {
		return res, err
	}
	w.filterDiscarded()

	return res, nil
}

// enqueue marks c visited and adds it to the queue with its segment.
// Marking at enqueue time guarantees each cell enters the queue at most once.
func (w *walker) enqueue(c citygrid.Coord, seg Segment) {
	w.visited.Add(c)
	w.queue = append(w.queue, queueItem{at: c, segment: seg})
}

// loop processes the queue until the destination is dequeued, the queue
// empties, or the context is cancelled.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		item := w.dequeue()
		if w.visit(item) {
			return nil
		}
		w.expand(item)
	}

	return nil
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.at, w.step)

	return item
}

// visit records the dequeued segment, captures snapshots on schedule, and
// reports whether the destination was reached.
func (w *walker) visit(item queueItem) bool {
	// Every dequeued segment is recorded, success or not; this list is a
	// superset of the optimal route and of every abandoned branch.
	w.explored = append(w.explored, item.segment)

	atGoal := item.at == w.goal
	// The goal arrival always captures here, so the final snapshot needs no
	// separate capture and can never be duplicated.
	if w.step%w.opts.SnapshotInterval == 0 || atGoal {
		w.capture()
	}
	w.step++

	if atGoal {
		w.res.Best = item.segment
	}

	return atGoal
}

// capture appends an independent copy of the visited set, tagged with the
// current dequeue index, and invokes OnSnapshot.
func (w *walker) capture() {
	snap := Snapshot{Step: w.step, Visited: w.visited.Clone()}
	w.res.Snapshots = append(w.res.Snapshots, snap)
	w.opts.OnSnapshot(snap)
}

// expand enqueues each unseen, unblocked neighbor of the dequeued cell with
// a copy-on-extend segment.
func (w *walker) expand(item queueItem) {
	for _, nbr := range w.grid.Neighbors(item.at) {
		if w.grid.At(nbr) == citygrid.Blocked || w.visited.Has(nbr) {
			continue
		}
		w.enqueue(nbr, item.segment.extend(nbr))
	}
}

// filterDiscarded classifies the recorded segments once the search is over.
// With a route found, a segment is discarded when it contains at least one
// cell off that route (the optimal route itself can never qualify). With no
// route, every segment that made at least one hop is discarded.
func (w *walker) filterDiscarded() {
	if w.res.Best == nil {
		for _, seg := range w.explored {
			if len(seg) > 1 {
				w.res.Discarded = append(w.res.Discarded, seg)
			}
		}

		return
	}

	onBest := citygrid.NewCoordSet(w.res.Best...)
	for _, seg := range w.explored {
		if strays(seg, onBest) {
			w.res.Discarded = append(w.res.Discarded, seg)
		}
	}
}

// strays reports whether seg contains a cell outside the given set.
func strays(seg Segment, set citygrid.CoordSet) bool {
	for _, c := range seg {
		if !set.Has(c) {
			return true
		}
	}

	return false
}
