package planar

import (
	"math"
	"slices"
)

// SegmentRelation classifies how two segments relate to each other.
type SegmentRelation int

const (
	NonIntersecting SegmentRelation = iota
	Intersecting
	CollinearOverlap
	CollinearNonOverlap
)

func (r SegmentRelation) String() string {
	switch r {
	case NonIntersecting:
		return "NonIntersecting"
	case Intersecting:
		return "Intersecting"
	case CollinearOverlap:
		return "CollinearOverlap"
	case CollinearNonOverlap:
		return "CollinearNonOverlap"
	}
	return "SegmentRelation(?)"
}

// Relation classifies the relation between s and t using orientation tests
// only; no intersection coordinates are computed. Segments on the same
// supporting line are collinear, and overlap when an endpoint of one falls
// inside the other's extent along its dominant axis.
func Relation(s, t Segment) SegmentRelation {
	p1, p2, q1, q2 := s.P1, s.P2, t.P1, t.P2

	colinear := CCW(p1, p2, q1) == 0.0 && CCW(p1, p2, q2) == 0.0 ||
		CCW(q1, q2, p1) == 0.0 && CCW(q1, q2, p2) == 0.0
	if colinear {
		if s.spans(q1) || s.spans(q2) || t.spans(p1) || t.spans(p2) {
			return CollinearOverlap
		}
		return CollinearNonOverlap
	}

	if CCW(p1, p2, q1)*CCW(p1, p2, q2) <= 0.0 && CCW(q1, q2, p1)*CCW(q1, q2, p2) <= 0.0 {
		return Intersecting
	}
	return NonIntersecting
}

// spans returns true if p falls inside the segment's extent along its
// dominant axis. Only meaningful when p is on the segment's supporting line.
func (s Segment) spans(p Point) bool {
	d := s.P2.Sub(s.P1)
	if math.Abs(d.X) > math.Abs(d.Y) {
		return s.MinX <= p.X && p.X <= s.MaxX
	}
	return s.MinY <= p.Y && p.Y <= s.MaxY
}

// IntersectAll returns the intersection point of every crossing pair by
// checking all pairs in O(n²), sorted lexicographically. It reports exactly
// the single-point intersections that the sweep reports and serves as its
// oracle.
func IntersectAll(segments []Segment) []Point {
	var points []Point
	for i, s := range segments {
		for _, t := range segments[i+1:] {
			if p, ok := s.Intersection(t); ok {
				points = append(points, p)
			}
		}
	}
	slices.SortFunc(points, Point.Cmp)
	return points
}

// RelationCount tallies the pairwise relations of a segment set.
type RelationCount struct {
	Pairs             int
	Intersecting      int
	CollinearOverlaps int
}

// CountRelations classifies all pairs of segments. The progress callback, if
// non-nil, is invoked after each completed outer row with the number of rows
// done.
func CountRelations(segments []Segment, progress func(done int)) RelationCount {
	var c RelationCount
	for i, s := range segments {
		for _, t := range segments[i+1:] {
			c.Pairs++
			switch Relation(s, t) {
			case Intersecting:
				c.Intersecting++
			case CollinearOverlap:
				c.CollinearOverlaps++
			}
		}
		if progress != nil {
			progress(i + 1)
		}
	}
	return c
}
