package planar

import (
	"fmt"
	"testing"

	"github.com/tdewolff/test"
)

func TestRelation(t *testing.T) {
	var tts = []struct {
		s, o Segment
		r    SegmentRelation
	}{
		// crossing at (1,1)
		{MustSegment(Point{0.0, 0.0}, Point{2.0, 2.0}), MustSegment(Point{0.0, 2.0}, Point{2.0, 0.0}), Intersecting},
		// T-crossing
		{MustSegment(Point{0.0, 0.0}, Point{2.0, 0.0}), MustSegment(Point{1.0, 0.0}, Point{1.0, 2.0}), Intersecting},
		// sharing an endpoint
		{MustSegment(Point{0.0, 0.0}, Point{2.0, 2.0}), MustSegment(Point{2.0, 2.0}, Point{3.0, 0.0}), Intersecting},
		// apart
		{MustSegment(Point{0.0, 0.0}, Point{1.0, 1.0}), MustSegment(Point{3.0, 0.0}, Point{4.0, 1.0}), NonIntersecting},
		// near miss
		{MustSegment(Point{0.0, 0.0}, Point{2.0, 2.0}), MustSegment(Point{-2.0, 1.0}, Point{1.0, -2.0}), NonIntersecting},
		// colinear, overlapping
		{MustSegment(Point{0.0, 0.0}, Point{2.0, 2.0}), MustSegment(Point{1.5, 1.5}, Point{3.0, 3.0}), CollinearOverlap},
		// colinear, touching in one endpoint
		{MustSegment(Point{0.0, 0.0}, Point{2.0, 2.0}), MustSegment(Point{2.0, 2.0}, Point{3.0, 3.0}), CollinearOverlap},
		// colinear, apart
		{MustSegment(Point{0.0, 0.0}, Point{2.0, 2.0}), MustSegment(Point{2.5, 2.5}, Point{3.0, 3.0}), CollinearNonOverlap},
		// colinear vertically, overlapping
		{MustSegment(Point{1.0, 0.0}, Point{1.0, 2.0}), MustSegment(Point{1.0, 1.0}, Point{1.0, 3.0}), CollinearOverlap},
	}
	for i, tt := range tts {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			test.T(t, Relation(tt.s, tt.o), tt.r)
			test.T(t, Relation(tt.o, tt.s), tt.r)
		})
	}
}

func TestIntersectAll(t *testing.T) {
	segments := []Segment{
		MustSegment(Point{0.0, 0.0}, Point{2.0, 2.0}),
		MustSegment(Point{0.0, 2.0}, Point{2.0, 0.0}),
		MustSegment(Point{0.0, 1.5}, Point{2.0, 1.5}),
	}
	points := IntersectAll(segments)
	test.T(t, len(points), 3)
	test.T(t, points[0], Point{0.5, 1.5})
	test.T(t, points[1], Point{1.0, 1.0})
	test.T(t, points[2], Point{1.5, 1.5})

	test.T(t, len(IntersectAll(nil)), 0)
}

func TestCountRelations(t *testing.T) {
	segments := []Segment{
		MustSegment(Point{0.0, 0.0}, Point{2.0, 2.0}),
		MustSegment(Point{0.0, 2.0}, Point{2.0, 0.0}),
		MustSegment(Point{1.5, 1.5}, Point{3.0, 3.0}),
		MustSegment(Point{5.0, 5.0}, Point{6.0, 5.0}),
	}

	var calls []int
	count := CountRelations(segments, func(done int) {
		calls = append(calls, done)
	})
	test.T(t, count.Pairs, 6)
	test.T(t, count.Intersecting, 1)
	test.T(t, count.CollinearOverlaps, 1)
	test.T(t, len(calls), 4)
	test.T(t, calls[3], 4)

	// nil progress callback is allowed
	test.T(t, CountRelations(segments, nil), count)
}
