// Package planar implements 2D line segment geometry, most notably the
// Bentley-Ottmann plane sweep that finds all pairwise intersection points
// among a set of line segments in O((n+k) log n).
package planar

import (
	"fmt"
	"math"
)

// Point is a coordinate in the 2D plane. Points are ordered lexicographically,
// comparing X first and Y second, with exact floating-point equality.
type Point struct {
	X, Y float64
}

// Less returns true if P sorts before Q in lexicographic order.
func (p Point) Less(q Point) bool {
	return p.X < q.X || p.X == q.X && p.Y < q.Y
}

// Cmp compares P and Q lexicographically and returns -1, 0 or 1.
func (p Point) Cmp(q Point) int {
	if p.Less(q) {
		return -1
	} else if q.Less(p) {
		return 1
	}
	return 0
}

// Add adds Q to P.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub subtracts Q from P.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Distance returns the Euclidean distance between P and Q.
func (p Point) Distance(q Point) float64 {
	dx := q.X - p.X
	dy := q.Y - p.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// IsAbove returns true if P lies strictly above Q.
func (p Point) IsAbove(q Point) bool {
	return p.Y > q.Y
}

// IsBelow returns true if P lies strictly below Q.
func (p Point) IsBelow(q Point) bool {
	return p.Y < q.Y
}

// IsLeftOf returns true if P lies strictly left of Q.
func (p Point) IsLeftOf(q Point) bool {
	return p.X < q.X
}

// IsRightOf returns true if P lies strictly right of Q.
func (p Point) IsRightOf(q Point) bool {
	return p.X > q.X
}

// Round rounds both coordinates to the given number of decimal places. It is
// used to damp floating-point noise on freshly computed intersection
// coordinates.
func (p Point) Round(decimals int) Point {
	return Point{roundTo(p.X, decimals), roundTo(p.Y, decimals)}
}

func (p Point) String() string {
	return fmt.Sprintf("(%g,%g)", p.X, p.Y)
}

func roundTo(v float64, decimals int) float64 {
	mult := math.Pow(10.0, float64(decimals))
	return math.Round(v*mult) / mult
}

// CCW returns twice the signed area of the triangle p,q,r. It is zero when the
// three points are colinear, positive when they wind counter-clockwise, and
// negative when they wind clockwise.
func CCW(p, q, r Point) float64 {
	return (p.X*q.Y - p.Y*q.X) + (q.X*r.Y - q.Y*r.X) + (p.Y*r.X - p.X*r.Y)
}
