package geom

import (
	"fmt"

	"github.com/dkolbly/polyclip/options"
)

// Segment represents an ordered pair (source, target) of vertices. The
// lexicographically smaller and larger endpoints are cached at construction
// so the sweep-line comparators can consult them without recomputing.
type Segment struct {
	source Vertex
	target Vertex
	min    Vertex // lexicographically smaller endpoint
	max    Vertex // lexicographically larger endpoint
}

// NewSegment creates a segment from the coordinates of its source (x1, y1)
// and target (x2, y2) endpoints.
func NewSegment(x1, y1, x2, y2 float64) Segment {
	return NewSegmentFromVertices(New(x1, y1), New(x2, y2))
}

// NewSegmentFromVertices creates a segment from its source and target
// vertices.
func NewSegmentFromVertices(source, target Vertex) Segment {
	s := Segment{
		source: source,
		target: target,
	}
	if lexicographicallyBefore(target, source) {
		s.min, s.max = target, source
	} else {
		s.min, s.max = source, target
	}
	return s
}

// lexicographicallyBefore reports whether a sorts before b by x, breaking
// ties by y.
func lexicographicallyBefore(a, b Vertex) bool {
	if a.x != b.x {
		return a.x < b.x
	}
	return a.y < b.y
}

// Source returns the source endpoint of the segment.
func (s Segment) Source() Vertex {
	return s.source
}

// Target returns the target endpoint of the segment.
func (s Segment) Target() Vertex {
	return s.target
}

// Min returns the cached lexicographically smaller endpoint of the segment.
func (s Segment) Min() Vertex {
	return s.min
}

// Max returns the cached lexicographically larger endpoint of the segment.
func (s Segment) Max() Vertex {
	return s.max
}

// Degenerate reports whether the segment's endpoints coincide exactly.
// Degenerate segments are dropped during event ingestion and never reach the
// sweep.
func (s Segment) Degenerate() bool {
	return s.source.Eq(s.target)
}

// Vertical reports whether both endpoints share the same x-coordinate.
func (s Segment) Vertical() bool {
	return s.source.x == s.target.x
}

// BoundingBox returns the axis-aligned bounding rectangle of the segment.
func (s Segment) BoundingBox() Rect {
	return NewRect(s.source.Min(s.target), s.source.Max(s.target))
}

// Eq reports whether s and q have equal source and target endpoints.
// An approximate comparison can be requested with [options.WithEpsilon].
func (s Segment) Eq(q Segment, opts ...options.GeometryOptionsFunc) bool {
	return s.source.Eq(q.source, opts...) && s.target.Eq(q.target, opts...)
}

// String returns a string representation of the segment in the form
// "(x1, y1)(x2, y2)".
func (s Segment) String() string {
	return fmt.Sprintf("%s%s", s.source, s.target)
}
