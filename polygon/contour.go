package polygon

import (
	"fmt"
	"slices"
	"strings"

	"github.com/dkolbly/polyclip/geom"
)

// Contour is a closed ring of vertices. The edge from the last vertex back
// to the first is implicit; the closing vertex is not repeated.
//
// Beyond its geometry, a contour carries the hole-nesting information the
// clipping engine attaches to its output: the indices of its child holes
// within the owning polygon, its nesting depth, and the index of its parent
// contour when it is itself a hole.
type Contour struct {
	vertices []geom.Vertex
	holes    []int
	holeOf   int // parent contour index, or -1 for an external contour
	depth    int

	// clockwise orientation is derived from the signed ring area, which is
	// linear in the vertex count, so it is cached until a mutation
	// invalidates it.
	cwCached bool
	cwValid  bool
}

// NewContour creates an external contour from the given vertices.
func NewContour(vertices ...geom.Vertex) Contour {
	c := Contour{holeOf: -1}
	c.vertices = append(c.vertices, vertices...)
	return c
}

// AddVertex appends a vertex to the ring.
func (c *Contour) AddVertex(v geom.Vertex) {
	c.vertices = append(c.vertices, v)
	c.cwValid = false
}

// Vertex returns the i-th vertex of the ring.
func (c Contour) Vertex(i int) geom.Vertex {
	return c.vertices[i]
}

// NumVertices returns the number of vertices in the ring.
func (c Contour) NumVertices() int {
	return len(c.vertices)
}

// NumEdges returns the number of edges in the ring, which equals the number
// of vertices because the ring is closed.
func (c Contour) NumEdges() int {
	return len(c.vertices)
}

// Edge returns the i-th edge of the ring as a segment. The last edge wraps
// around from the final vertex to the first.
func (c Contour) Edge(i int) geom.Segment {
	if i == len(c.vertices)-1 {
		return geom.NewSegmentFromVertices(c.vertices[i], c.vertices[0])
	}
	return geom.NewSegmentFromVertices(c.vertices[i], c.vertices[i+1])
}

// AddHole records idx as the index of a child hole of this contour within
// the owning polygon.
func (c *Contour) AddHole(idx int) {
	c.holes = append(c.holes, idx)
}

// Hole returns the i-th child hole index.
func (c Contour) Hole(i int) int {
	return c.holes[i]
}

// NumHoles returns the number of child holes recorded on the contour.
func (c Contour) NumHoles() int {
	return len(c.holes)
}

// BoundingBox returns the axis-aligned bounding rectangle of the ring, or
// the empty rectangle for a contour with no vertices.
func (c Contour) BoundingBox() geom.Rect {
	var bb geom.Rect
	for _, v := range c.vertices {
		bb = bb.Expand(v)
	}
	return bb
}

// signedRingArea returns twice the signed area enclosed by the ring,
// positive for counterclockwise winding.
func (c Contour) signedRingArea() float64 {
	area := 0.0
	for i := range c.vertices {
		j := (i + 1) % len(c.vertices)
		area += c.vertices[i].CrossProduct(c.vertices[j])
	}
	return area
}

// Clockwise reports whether the ring winds clockwise. The result is cached
// until the ring is mutated.
func (c *Contour) Clockwise() bool {
	if !c.cwValid {
		c.cwCached = c.signedRingArea() < 0
		c.cwValid = true
	}
	return c.cwCached
}

// CounterClockwise reports whether the ring winds counterclockwise.
func (c *Contour) CounterClockwise() bool {
	return !c.Clockwise()
}

// Reverse flips the winding direction of the ring in place.
func (c *Contour) Reverse() {
	slices.Reverse(c.vertices)
	if c.cwValid {
		c.cwCached = !c.cwCached
	}
}

// SetClockwise reverses the ring if it is not already clockwise.
func (c *Contour) SetClockwise() {
	if c.CounterClockwise() {
		c.Reverse()
	}
}

// SetCounterClockwise reverses the ring if it is not already
// counterclockwise.
func (c *Contour) SetCounterClockwise() {
	if c.Clockwise() {
		c.Reverse()
	}
}

// Clear removes all vertices and hole records from the contour, returning it
// to an empty external ring.
func (c *Contour) Clear() {
	c.vertices = c.vertices[:0]
	c.holes = c.holes[:0]
	c.holeOf = -1
	c.depth = 0
	c.cwValid = false
}

// Depth returns the nesting depth of the contour: 0 for an outermost
// contour, 1 for a hole in one, and so on.
func (c Contour) Depth() int {
	return c.depth
}

// SetDepth sets the nesting depth of the contour.
func (c *Contour) SetDepth(depth int) {
	c.depth = depth
}

// External reports whether the contour is external, i.e. not a hole of any
// other contour.
func (c Contour) External() bool {
	return c.holeOf < 0
}

// HoleOf returns the index of the contour's parent within the owning
// polygon, or -1 if the contour is external.
func (c Contour) HoleOf() int {
	return c.holeOf
}

// SetHoleOf marks the contour as a hole of the contour at index parent.
func (c *Contour) SetHoleOf(parent int) {
	c.holeOf = parent
}

// clone returns a deep copy of the contour.
func (c Contour) clone() Contour {
	out := c
	out.vertices = slices.Clone(c.vertices)
	out.holes = slices.Clone(c.holes)
	return out
}

// String returns a human-readable representation of the ring vertices.
func (c Contour) String() string {
	out := strings.Builder{}
	for i, v := range c.vertices {
		if i > 0 {
			out.WriteString(" ")
		}
		out.WriteString(v.String())
	}
	if len(c.holes) > 0 {
		out.WriteString(fmt.Sprintf(" holes=%v", c.holes))
	}
	return out.String()
}
