package planar

import (
	"fmt"

	"github.com/google/btree"
)

// EventKind labels what a sweep line stops for: a segment's left or right
// endpoint, or a discovered intersection.
type EventKind int

const (
	LeftEndpoint EventKind = iota
	RightEndpoint
	Intersection
)

func (k EventKind) String() string {
	switch k {
	case LeftEndpoint:
		return "LeftEndpoint"
	case RightEndpoint:
		return "RightEndpoint"
	case Intersection:
		return "Intersection"
	}
	return fmt.Sprintf("EventKind(%d)", int(k))
}

// Event is a pending stop of the sweep line. Seg is the segment the event
// belongs to; Other is only set for intersection events and then holds the
// second segment, with Seg sorting before Other.
type Event struct {
	Point Point
	Kind  EventKind
	Seg   Segment
	Other Segment
}

func (e Event) String() string {
	if e.Kind == Intersection {
		return fmt.Sprintf("e: %v, p: %v, s: %v, s2: %v", e.Kind, e.Point, e.Seg, e.Other)
	}
	return fmt.Sprintf("e: %v, p: %v, s: %v", e.Kind, e.Point, e.Seg)
}

// less orders events by point first so that the sweep advances left to right.
// Events at the same point are ordered by kind (endpoints before
// intersections) and then by their segments, so that simultaneous events all
// get processed instead of silently replacing one another.
func (e Event) less(f Event) bool {
	if e.Point != f.Point {
		return e.Point.Less(f.Point)
	}
	if e.Kind != f.Kind {
		return e.Kind < f.Kind
	}
	if e.Seg != f.Seg {
		return e.Seg.Less(f.Seg)
	}
	return e.Other.Less(f.Other)
}

// eventQueue is the x-structure: the ordered set of pending events that drives
// the sweep.
type eventQueue struct {
	tree *btree.BTreeG[Event]
}

func newEventQueue() *eventQueue {
	return &eventQueue{btree.NewG(2, Event.less)}
}

// push inserts e unless it is already pending.
func (q *eventQueue) push(e Event) {
	if !q.tree.Has(e) {
		q.tree.ReplaceOrInsert(e)
	}
}

// pop removes and returns the lexicographically smallest pending event.
func (q *eventQueue) pop() (Event, bool) {
	return q.tree.DeleteMin()
}

// peek returns the smallest pending event without removing it.
func (q *eventQueue) peek() (Event, bool) {
	return q.tree.Min()
}

func (q *eventQueue) empty() bool {
	return q.tree.Len() == 0
}

func (q *eventQueue) len() int {
	return q.tree.Len()
}
