// Package polygon defines the polygon model consumed and produced by the
// clipping engine: a Polygon is an ordered list of Contours, and a Contour is
// a closed ring of vertices that additionally carries hole-nesting
// information.
//
// # Overview
//
// Contours do not repeat their closing vertex; the edge from the last vertex
// back to the first is implicit. Each contour records the indices of its
// child holes within the owning polygon, its nesting depth, and, for holes,
// the index of its parent contour.
//
// # Orientation
//
// External contours are counterclockwise, odd-depth holes are clockwise, and
// even-depth nested contours are counterclockwise again. The clipping engine
// enforces this invariant on its output; polygons built by hand or read from
// a file are taken as-is until explicitly reoriented with SetClockwise or
// SetCounterClockwise.
package polygon

import (
	"fmt"
	"strings"

	"github.com/dkolbly/polyclip/geom"
)

// Polygon is an ordered list of contours. The zero value is the empty
// polygon.
type Polygon struct {
	contours []Contour
}

// New creates a polygon from the given contours.
func New(contours ...Contour) Polygon {
	p := Polygon{}
	p.contours = append(p.contours, contours...)
	return p
}

// Add appends a contour to the polygon and returns a pointer to the stored
// copy, so callers building a result incrementally can keep mutating it.
func (p *Polygon) Add(c Contour) *Contour {
	p.contours = append(p.contours, c)
	return &p.contours[len(p.contours)-1]
}

// Pop removes and returns the last contour of the polygon. The second return
// value is false if the polygon is empty.
func (p *Polygon) Pop() (Contour, bool) {
	if len(p.contours) == 0 {
		return Contour{}, false
	}
	c := p.contours[len(p.contours)-1]
	p.contours = p.contours[:len(p.contours)-1]
	return c, true
}

// Contour returns a pointer to the i-th contour of the polygon.
func (p *Polygon) Contour(i int) *Contour {
	return &p.contours[i]
}

// NumContours returns the number of contours in the polygon.
func (p Polygon) NumContours() int {
	return len(p.contours)
}

// NumVertices returns the total vertex count across all contours.
func (p Polygon) NumVertices() int {
	n := 0
	for i := range p.contours {
		n += p.contours[i].NumVertices()
	}
	return n
}

// IsEmpty reports whether the polygon contains no vertices at all.
func (p Polygon) IsEmpty() bool {
	return p.NumVertices() == 0
}

// BoundingBox returns the union of the contour bounding boxes. The bounding
// box of an empty polygon is the empty rectangle.
func (p Polygon) BoundingBox() geom.Rect {
	var bb geom.Rect
	for i := range p.contours {
		bb = bb.Union(p.contours[i].BoundingBox())
	}
	return bb
}

// Join appends a copy of every contour of q to p, rewriting the hole-index
// and parent references of the appended contours so they remain valid after
// concatenation.
func (p *Polygon) Join(q Polygon) {
	offset := len(p.contours)
	for i := range q.contours {
		c := q.contours[i].clone()
		for h := range c.holes {
			c.holes[h] += offset
		}
		if c.holeOf >= 0 {
			c.holeOf += offset
		}
		p.contours = append(p.contours, c)
	}
}

// String returns a human-readable representation of the polygon, one contour
// per line.
func (p Polygon) String() string {
	out := strings.Builder{}
	for i := range p.contours {
		out.WriteString(fmt.Sprintf("contour %d: %s\n", i, p.contours[i]))
	}
	return out.String()
}
