package planar

import (
	"fmt"
	"math"
	"testing"

	"github.com/tdewolff/test"
)

func TestLineFromPoints(t *testing.T) {
	var tts = []struct {
		p1, p2 Point
		line   Line
	}{
		{Point{0.0, 2.0}, Point{2.0, 0.0}, Line{-1.0, 2.0}},
		{Point{0.0, 0.0}, Point{2.0, 2.0}, Line{1.0, 0.0}},
		{Point{0.0, 1.0}, Point{2.0, 1.0}, Line{0.0, 1.0}},
		{Point{1.0, 0.0}, Point{1.0, 1.0}, Line{math.Inf(1), 1.0}},
	}
	for i, tt := range tts {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			test.T(t, LineFromPoints(tt.p1, tt.p2), tt.line)
		})
	}
}

func TestLineFromSlope(t *testing.T) {
	test.T(t, LineFromSlope(1.0, Point{1.0, 1.0}), Line{1.0, 0.0})
	test.T(t, LineFromSlope(-2.0, Point{1.0, 0.0}), Line{-2.0, 2.0})
	test.T(t, LineFromSlope(math.Inf(1), Point{3.0, 5.0}), Line{math.Inf(1), 3.0})
}

func TestLineOrientation(t *testing.T) {
	test.That(t, Line{math.Inf(1), 10.0}.IsVertical())
	test.That(t, !Line{2.0, 10.0}.IsVertical())
	test.That(t, Line{0.0, 10.0}.IsHorizontal())
	test.That(t, !Line{2.0, 10.0}.IsHorizontal())

	test.That(t, Line{1.0, 0.0}.IsParallelTo(Line{1.0, 5.0}))
	test.That(t, Line{math.Inf(1), 0.0}.IsParallelTo(Line{math.Inf(1), 5.0}))
	test.That(t, !Line{1.0, 0.0}.IsParallelTo(Line{2.0, 0.0}))
}

func TestLineY(t *testing.T) {
	test.Float(t, Line{2.0, 1.0}.Y(3.0), 7.0)
	test.Float(t, Line{0.0, 4.0}.Y(100.0), 4.0)
	test.Float(t, Line{math.Inf(1), 5.0}.Y(100.0), 5.0)
}

func TestLineContains(t *testing.T) {
	test.That(t, Line{1.0, 0.0}.Contains(Point{2.0, 2.0}))
	test.That(t, !Line{1.0, 0.0}.Contains(Point{2.0, 1.0}))
	test.That(t, Line{math.Inf(1), 2.0}.Contains(Point{2.0, 100.0}))
	test.That(t, !Line{math.Inf(1), 2.0}.Contains(Point{1.0, 100.0}))
}

func TestLineIntersection(t *testing.T) {
	var tts = []struct {
		l, m Line
		p    Point
		ok   bool
	}{
		{Line{math.Inf(1), 1.0}, Line{math.Inf(1), 2.0}, Point{}, false},
		{Line{1.0, 0.0}, Line{1.0, 2.0}, Point{}, false},
		{Line{math.Inf(1), 1.0}, Line{4.0, 1.0}, Point{1.0, 5.0}, true},
		{Line{1.0, 0.0}, Line{-1.0, 2.0}, Point{1.0, 1.0}, true},
		{Line{0.0, 1.0}, Line{1.0, 0.0}, Point{1.0, 1.0}, true},
	}
	for i, tt := range tts {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			p, ok := tt.l.Intersection(tt.m)
			test.T(t, ok, tt.ok)
			test.T(t, p, tt.p)

			// intersection is symmetric
			q, ok2 := tt.m.Intersection(tt.l)
			test.T(t, ok2, tt.ok)
			test.T(t, q, tt.p)
		})
	}
}

func TestLineString(t *testing.T) {
	test.String(t, Line{math.Inf(1), 10.0}.String(), "x = +10")
	test.String(t, Line{-12.0, -4.0}.String(), "f(x) -> -12 * x -4")
	test.String(t, Line{0.0, -4.0}.String(), "f(x) -> -4")
}
