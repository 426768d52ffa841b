package polygon

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dkolbly/polyclip/geom"
)

// ReadFrom reads a polygon in the reference text format:
//
//	<n_contours>
//	for each contour:
//	  <n_vertices>
//	  <x y>        repeated n_vertices times
//	<optionally, lines of form "<id>: <hole_id> <hole_id> ...">
//
// Trailing hole lines attach the listed contours as holes of the contour
// with the given id; each listed hole gets its parent recorded and a depth
// one greater than the parent's.
func ReadFrom(r io.Reader) (Polygon, error) {
	scanner := bufio.NewScanner(r)

	nContours, err := readInt(scanner)
	if err != nil {
		return Polygon{}, fmt.Errorf("reading contour count: %w", err)
	}

	p := Polygon{}
	for ci := 0; ci < nContours; ci++ {
		nVertices, err := readInt(scanner)
		if err != nil {
			return Polygon{}, fmt.Errorf("reading vertex count of contour %d: %w", ci, err)
		}
		c := NewContour()
		for vi := 0; vi < nVertices; vi++ {
			fields, err := readFields(scanner)
			if err != nil {
				return Polygon{}, fmt.Errorf("reading vertex %d of contour %d: %w", vi, ci, err)
			}
			if len(fields) != 2 {
				return Polygon{}, fmt.Errorf("vertex %d of contour %d: expected 2 coordinates, got %d", vi, ci, len(fields))
			}
			x, err := strconv.ParseFloat(fields[0], 64)
			if err != nil {
				return Polygon{}, fmt.Errorf("vertex %d of contour %d: %w", vi, ci, err)
			}
			y, err := strconv.ParseFloat(fields[1], 64)
			if err != nil {
				return Polygon{}, fmt.Errorf("vertex %d of contour %d: %w", vi, ci, err)
			}
			c.AddVertex(geom.New(x, y))
		}
		p.Add(c)
	}

	// Optional trailing hole lines.
	for {
		fields, err := readFields(scanner)
		if err != nil {
			break
		}
		if err := applyHoleLine(&p, fields); err != nil {
			return Polygon{}, err
		}
	}

	return p, nil
}

// applyHoleLine parses a "<id>: <hole_id> ..." line and records the hole
// relationships on the polygon.
func applyHoleLine(p *Polygon, fields []string) error {
	id, ok := strings.CutSuffix(fields[0], ":")
	if !ok {
		return fmt.Errorf("malformed hole line %q: missing ':'", strings.Join(fields, " "))
	}
	parent, err := strconv.Atoi(id)
	if err != nil {
		return fmt.Errorf("malformed hole line: %w", err)
	}
	if parent < 0 || parent >= p.NumContours() {
		return fmt.Errorf("hole line references contour %d of %d", parent, p.NumContours())
	}
	for _, f := range fields[1:] {
		hole, err := strconv.Atoi(f)
		if err != nil {
			return fmt.Errorf("malformed hole line: %w", err)
		}
		if hole < 0 || hole >= p.NumContours() {
			return fmt.Errorf("hole line references contour %d of %d", hole, p.NumContours())
		}
		p.Contour(parent).AddHole(hole)
		p.Contour(hole).SetHoleOf(parent)
		p.Contour(hole).SetDepth(p.Contour(parent).Depth() + 1)
	}
	return nil
}

// readFields returns the whitespace-separated fields of the next non-blank
// line.
func readFields(scanner *bufio.Scanner) ([]string, error) {
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) > 0 {
			return fields, nil
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return nil, io.EOF
}

// readInt reads the next non-blank line and parses it as a single integer.
func readInt(scanner *bufio.Scanner) (int, error) {
	fields, err := readFields(scanner)
	if err != nil {
		return 0, err
	}
	if len(fields) != 1 {
		return 0, fmt.Errorf("expected a single integer, got %q", strings.Join(fields, " "))
	}
	return strconv.Atoi(fields[0])
}

// WriteTo writes the polygon in the reference text format accepted by
// [ReadFrom].
func WriteTo(w io.Writer, p Polygon) error {
	if _, err := fmt.Fprintf(w, "%d\n", p.NumContours()); err != nil {
		return err
	}
	for ci := 0; ci < p.NumContours(); ci++ {
		c := p.Contour(ci)
		if _, err := fmt.Fprintf(w, "%d\n", c.NumVertices()); err != nil {
			return err
		}
		for vi := 0; vi < c.NumVertices(); vi++ {
			v := c.Vertex(vi)
			if _, err := fmt.Fprintf(w, "\t%s %s\n", formatCoord(v.X()), formatCoord(v.Y())); err != nil {
				return err
			}
		}
	}
	for ci := 0; ci < p.NumContours(); ci++ {
		c := p.Contour(ci)
		if c.NumHoles() == 0 {
			continue
		}
		ids := make([]string, c.NumHoles())
		for hi := 0; hi < c.NumHoles(); hi++ {
			ids[hi] = strconv.Itoa(c.Hole(hi))
		}
		if _, err := fmt.Fprintf(w, "%d: %s\n", ci, strings.Join(ids, " ")); err != nil {
			return err
		}
	}
	return nil
}

func formatCoord(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
