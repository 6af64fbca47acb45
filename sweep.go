package planar

import (
	"slices"

	"github.com/google/btree"
)

// sweepEpsilon is the nudge added to the sweep position right after an
// intersection event, so that the two crossed segments order by their
// post-crossing positions instead of coinciding.
const sweepEpsilon = 1e-8

// roundDecimals is applied to freshly computed intersection coordinates before
// they become event points, collapsing near-duplicate events caused by
// floating-point jitter.
const roundDecimals = 9

// statusKey orders an active segment by the y-coordinate of its line at the
// current sweep position. The segment itself breaks exact y ties, so that two
// segments meeting at a point coexist instead of overwriting each other.
type statusKey struct {
	y   float64
	seg Segment
}

func (k statusKey) less(m statusKey) bool {
	if k.y != m.y {
		return k.y < m.y
	}
	return k.seg.Less(m.seg)
}

// status is the y-structure: the set of segments currently crossing the sweep
// line, ordered by height.
type status struct {
	tree *btree.BTreeG[statusKey]
}

func newStatus() *status {
	return &status{btree.NewG(2, statusKey.less)}
}

func (st *status) key(s Segment, x, epsilon float64) statusKey {
	return statusKey{s.Line.Y(x + epsilon), s}
}

func (st *status) insert(k statusKey) {
	st.tree.ReplaceOrInsert(k)
}

func (st *status) remove(k statusKey) {
	st.tree.Delete(k)
}

// next returns the nearest active segment strictly above k.
func (st *status) next(k statusKey) (Segment, bool) {
	var seg Segment
	found := false
	st.tree.AscendGreaterOrEqual(k, func(item statusKey) bool {
		if k.less(item) {
			seg, found = item.seg, true
			return false
		}
		return true
	})
	return seg, found
}

// prev returns the nearest active segment strictly below k.
func (st *status) prev(k statusKey) (Segment, bool) {
	var seg Segment
	found := false
	st.tree.DescendLessOrEqual(k, func(item statusKey) bool {
		if item.less(k) {
			seg, found = item.seg, true
			return false
		}
		return true
	})
	return seg, found
}

// refresh recomputes every active segment's key at the sweep position
// x+epsilon, re-sorting the structure to the sweep line's current slice
// through all active segments.
func (st *status) refresh(x, epsilon float64) {
	items := make([]statusKey, 0, st.tree.Len())
	st.tree.Ascend(func(item statusKey) bool {
		items = append(items, item)
		return true
	})
	st.tree.Clear(false)
	for _, item := range items {
		st.tree.ReplaceOrInsert(st.key(item.seg, x, epsilon))
	}
}

func (st *status) len() int {
	return st.tree.Len()
}

// sweepLine owns all mutable state of one Bentley-Ottmann run: the pending
// events, the active segments, the current sweep position, and the results
// found so far. It is not reused across runs.
type sweepLine struct {
	queue  *eventQueue
	status *status
	x      float64
	points []Point
}

func newSweepLine() *sweepLine {
	return &sweepLine{
		queue:  newEventQueue(),
		status: newStatus(),
	}
}

// FindIntersections returns all pairwise intersection points among the given
// segments, sorted lexicographically. Points where several pairs cross at
// once appear once per crossing pair; duplicates are not removed. Vertical
// segments are dropped before the sweep begins, and colinear overlaps that
// share no single point are never reported.
func FindIntersections(segments []Segment) []Point {
	sl := newSweepLine()
	for _, s := range segments {
		if s.Line.IsVertical() {
			continue
		}
		sl.queue.push(Event{Point: s.P1, Kind: LeftEndpoint, Seg: s})
		sl.queue.push(Event{Point: s.P2, Kind: RightEndpoint, Seg: s})
	}

	for !sl.queue.empty() {
		sl.step()
	}

	slices.SortFunc(sl.points, Point.Cmp)
	return sl.points
}

// step pops the smallest pending event, moves the sweep line to it, refreshes
// the status structure, and dispatches on the event kind.
func (sl *sweepLine) step() {
	e, _ := sl.queue.pop()
	sl.x = e.Point.X

	epsilon := 0.0
	if e.Kind == Intersection {
		epsilon = sweepEpsilon
	}
	sl.status.refresh(sl.x, epsilon)

	switch e.Kind {
	case LeftEndpoint:
		sl.handleLeft(e)
	case RightEndpoint:
		sl.handleRight(e)
	case Intersection:
		sl.handleIntersection(e)
	}
}

// handleLeft inserts the segment and tests it against both of its new
// neighbors.
func (sl *sweepLine) handleLeft(e Event) {
	k := sl.status.key(e.Seg, sl.x, 0.0)
	sl.status.insert(k)

	if above, ok := sl.status.next(k); ok {
		sl.tryIntersect(e.Seg, above)
	}
	if below, ok := sl.status.prev(k); ok {
		sl.tryIntersect(e.Seg, below)
	}
}

// handleRight removes the segment and tests its former neighbors, now
// adjacent, against each other.
func (sl *sweepLine) handleRight(e Event) {
	k := sl.status.key(e.Seg, sl.x, 0.0)
	above, okAbove := sl.status.next(k)
	below, okBelow := sl.status.prev(k)
	sl.status.remove(k)

	if okAbove && okBelow {
		sl.tryIntersect(above, below)
	}
}

// handleIntersection records the intersection and probes outwards from the
// crossed segments. All pending intersection events at the same point are
// drained together; the point is recorded once per crossing pair among the
// involved segments, matching what a brute-force scan reports for concurrent
// crossings.
func (sl *sweepLine) handleIntersection(e Event) {
	segs := []Segment{e.Seg, e.Other}
	for {
		f, ok := sl.queue.peek()
		if !ok || f.Point != e.Point {
			break
		}
		sl.queue.pop()
		for _, s := range []Segment{f.Seg, f.Other} {
			if !slices.Contains(segs, s) {
				segs = append(segs, s)
			}
		}
	}
	pairs := len(segs) * (len(segs) - 1) / 2
	for i := 0; i < pairs; i++ {
		sl.points = append(sl.points, e.Point)
	}

	// After the epsilon refresh the crossed segments sit in post-crossing
	// order; probe above the topmost and below the bottommost.
	upper := sl.status.key(segs[0], sl.x, sweepEpsilon)
	lower := upper
	for _, s := range segs[1:] {
		k := sl.status.key(s, sl.x, sweepEpsilon)
		if upper.less(k) {
			upper = k
		}
		if k.less(lower) {
			lower = k
		}
	}

	if above, ok := sl.status.next(upper); ok {
		sl.tryIntersect(upper.seg, above)
	}
	if below, ok := sl.status.prev(lower); ok {
		sl.tryIntersect(lower.seg, below)
	}
}

// tryIntersect enqueues an intersection event for s and t when their
// intersection point lies strictly right of the sweep line.
func (sl *sweepLine) tryIntersect(s, t Segment) {
	p, ok := s.Intersection(t)
	if !ok || p.X <= sl.x {
		return
	}
	if t.Less(s) {
		s, t = t, s
	}
	sl.queue.push(Event{Point: p.Round(roundDecimals), Kind: Intersection, Seg: s, Other: t})
}
