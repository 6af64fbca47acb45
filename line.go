package planar

import (
	"fmt"
	"math"
)

// Line is an infinite line in slope-intercept form. A vertical line has an
// infinite slope; Intercept then holds the line's x-coordinate instead of the
// y-axis intercept.
type Line struct {
	Slope, Intercept float64
}

// LineFromPoints returns the line through p1 and p2.
func LineFromPoints(p1, p2 Point) Line {
	if p1.X == p2.X {
		return Line{math.Inf(1), p1.X}
	}
	slope := (p2.Y - p1.Y) / (p2.X - p1.X)
	return Line{slope, p2.Y - slope*p2.X}
}

// LineFromSlope returns the line through p with the given slope. An infinite
// slope yields the vertical line through p.
func LineFromSlope(slope float64, p Point) Line {
	if math.IsInf(slope, 0) {
		return Line{slope, p.X}
	}
	return Line{slope, p.Y - slope*p.X}
}

// IsVertical returns true if the line is vertical.
func (l Line) IsVertical() bool {
	return math.IsInf(l.Slope, 0)
}

// IsHorizontal returns true if the line is horizontal.
func (l Line) IsHorizontal() bool {
	return l.Slope == 0.0
}

// Y evaluates the line at x. For a vertical line it returns the line's
// x-coordinate.
func (l Line) Y(x float64) float64 {
	if l.IsVertical() {
		return l.Intercept
	}
	return l.Slope*x + l.Intercept
}

// Contains returns true if p lies exactly on the line.
func (l Line) Contains(p Point) bool {
	if l.IsVertical() {
		return l.Intercept == p.X
	}
	return l.Slope*p.X+l.Intercept == p.Y
}

// IsParallelTo returns true if both lines have the same slope, including two
// vertical lines.
func (l Line) IsParallelTo(m Line) bool {
	return l.Slope == m.Slope
}

// Intersection returns the intersection point of both lines, or false when
// they are parallel.
func (l Line) Intersection(m Line) (Point, bool) {
	if l.IsParallelTo(m) {
		return Point{}, false
	}

	var x, y float64
	if l.IsVertical() {
		x, y = l.Intercept, m.Slope*l.Intercept+m.Intercept
	} else if m.IsVertical() {
		x, y = m.Intercept, l.Slope*m.Intercept+l.Intercept
	} else {
		x = (l.Intercept - m.Intercept) / (m.Slope - l.Slope)
		y = l.Slope*x + l.Intercept
	}
	return Point{x, y}, true
}

func (l Line) String() string {
	if l.IsVertical() {
		return fmt.Sprintf("x = %+g", l.Intercept)
	} else if l.IsHorizontal() {
		return fmt.Sprintf("f(x) -> %+g", l.Intercept)
	}
	return fmt.Sprintf("f(x) -> %+g * x %+g", l.Slope, l.Intercept)
}
