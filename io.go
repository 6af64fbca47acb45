package planar

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ReadSegments reads segments from r, one per line as four whitespace
// separated numbers "x1 y1 x2 y2". Blank lines are skipped and duplicate
// segments are dropped, so the result is a set. A malformed line, a
// non-numeric field, or a zero-length segment is an error naming the line.
func ReadSegments(r io.Reader) ([]Segment, error) {
	var segments []Segment
	seen := map[Segment]bool{}

	n := 0
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		n++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		} else if len(fields) != 4 {
			return nil, fmt.Errorf("line %d: expected 4 coordinates, got %d", n, len(fields))
		}

		var v [4]float64
		for i, field := range fields {
			f, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", n, err)
			}
			v[i] = f
		}

		s, err := NewSegment(Point{v[0], v[1]}, Point{v[2], v[3]})
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n, err)
		}
		if !seen[s] {
			seen[s] = true
			segments = append(segments, s)
		}
	}
	return segments, scanner.Err()
}

// ReadSegmentsFile reads segments from the file at path.
func ReadSegmentsFile(path string) ([]Segment, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadSegments(f)
}

// WritePoints writes points to w, one "x y" pair per line.
func WritePoints(w io.Writer, points []Point) error {
	buf := bufio.NewWriter(w)
	for _, p := range points {
		if _, err := fmt.Fprintf(buf, "%g %g\n", p.X, p.Y); err != nil {
			return err
		}
	}
	return buf.Flush()
}

// WritePointsFile writes points to the file at path.
func WritePointsFile(path string, points []Point) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WritePoints(f, points); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
