package planar

import (
	"errors"
	"fmt"
)

// ErrInvalidSegment is returned when constructing a segment from two identical
// points.
var ErrInvalidSegment = errors.New("planar: segment endpoints must be distinct")

// Segment is a line segment between two distinct points. P1 is always the
// lexicographically smaller endpoint. The supporting line and the axis-aligned
// bounding box are computed on construction; a Segment must not be modified
// afterwards.
type Segment struct {
	Line   Line
	P1, P2 Point

	MinX, MaxX float64
	MinY, MaxY float64
}

// NewSegment returns the segment between a and b, or ErrInvalidSegment when
// both points are equal.
func NewSegment(a, b Point) (Segment, error) {
	if a == b {
		return Segment{}, fmt.Errorf("%w: %v", ErrInvalidSegment, a)
	}

	p1, p2 := a, b
	if p2.Less(p1) {
		p1, p2 = p2, p1
	}
	return Segment{
		Line: LineFromPoints(p1, p2),
		P1:   p1,
		P2:   p2,
		MinX: p1.X,
		MaxX: p2.X,
		MinY: min(p1.Y, p2.Y),
		MaxY: max(p1.Y, p2.Y),
	}, nil
}

// MustSegment is like NewSegment but panics on invalid input.
func MustSegment(a, b Point) Segment {
	s, err := NewSegment(a, b)
	if err != nil {
		panic(err)
	}
	return s
}

// Less returns true if S sorts before T, comparing P1 first and P2 second.
func (s Segment) Less(t Segment) bool {
	if s.P1 != t.P1 {
		return s.P1.Less(t.P1)
	}
	return s.P2.Less(t.P2)
}

// Length returns the Euclidean length of the segment.
func (s Segment) Length() float64 {
	return s.P1.Distance(s.P2)
}

// Center returns the midpoint of the segment.
func (s Segment) Center() Point {
	return Point{s.P1.X + (s.P2.X-s.P1.X)/2.0, s.P1.Y + (s.P2.Y-s.P1.Y)/2.0}
}

// HasEndpoint returns true if p is one of the segment's endpoints.
func (s Segment) HasEndpoint(p Point) bool {
	return s.P1 == p || s.P2 == p
}

// Contains returns true if p is an endpoint, or lies on the supporting line
// and inside the bounding box (inclusive).
func (s Segment) Contains(p Point) bool {
	return s.HasEndpoint(p) || s.Line.Contains(p) &&
		s.MinX <= p.X && p.X <= s.MaxX &&
		s.MinY <= p.Y && p.Y <= s.MaxY
}

// Intersection returns the single point in which both segments intersect, or
// false when they do not. Equal segments do not intersect, and neither do
// colinear overlapping segments unless they share exactly one endpoint, which
// is returned directly.
func (s Segment) Intersection(t Segment) (Point, bool) {
	if s == t {
		return Point{}, false
	}
	if s.HasEndpoint(t.P1) {
		return t.P1, true
	}
	if s.HasEndpoint(t.P2) {
		return t.P2, true
	}

	p1, p2, q1, q2 := s.P1, s.P2, t.P1, t.P2
	if CCW(p1, p2, q1)*CCW(p1, p2, q2) <= 0.0 && CCW(q1, q2, p1)*CCW(q1, q2, p2) <= 0.0 {
		return s.Line.Intersection(t.Line)
	}
	return Point{}, false
}

func (s Segment) String() string {
	return fmt.Sprintf("p1: %v, p2: %v", s.P1, s.P2)
}
