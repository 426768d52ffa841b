package geom

import (
	"fmt"

	"github.com/dkolbly/polyclip/numeric"
)

// Rect is an axis-aligned bounding rectangle. The zero value is the empty
// rectangle, which contains nothing and unions as the identity. Empty
// rectangles arise naturally as the bounding box of an empty polygon.
type Rect struct {
	min      Vertex
	max      Vertex
	nonEmpty bool
}

// NewRect creates a rectangle spanning the two given corner vertices. The
// corners may be given in any order; they are normalized so that min holds
// the component-wise minimum and max the component-wise maximum.
func NewRect(a, b Vertex) Rect {
	return Rect{
		min:      a.Min(b),
		max:      a.Max(b),
		nonEmpty: true,
	}
}

// Min returns the bottom-left corner of the rectangle.
func (r Rect) Min() Vertex {
	return r.min
}

// Max returns the top-right corner of the rectangle.
func (r Rect) Max() Vertex {
	return r.max
}

// IsEmpty reports whether the rectangle is the empty rectangle. Note that a
// degenerate rectangle (a single point or axis-aligned line) is not empty.
func (r Rect) IsEmpty() bool {
	return !r.nonEmpty
}

// Expand returns the smallest rectangle containing both r and the vertex v.
func (r Rect) Expand(v Vertex) Rect {
	if r.IsEmpty() {
		return NewRect(v, v)
	}
	return Rect{
		min:      r.min.Min(v),
		max:      r.max.Max(v),
		nonEmpty: true,
	}
}

// Union returns the smallest rectangle containing both r and q.
func (r Rect) Union(q Rect) Rect {
	if r.IsEmpty() {
		return q
	}
	if q.IsEmpty() {
		return r
	}
	return Rect{
		min:      r.min.Min(q.min),
		max:      r.max.Max(q.max),
		nonEmpty: true,
	}
}

// Intersects reports whether r and q share at least one point. Touching
// edges or corners count as intersecting.
func (r Rect) Intersects(q Rect) bool {
	if r.IsEmpty() || q.IsEmpty() {
		return false
	}
	return r.min.x <= q.max.x && q.min.x <= r.max.x &&
		r.min.y <= q.max.y && q.min.y <= r.max.y
}

// Intersection returns the rectangle common to r and q, and whether that
// rectangle is non-empty.
func (r Rect) Intersection(q Rect) (Rect, bool) {
	if !r.Intersects(q) {
		return Rect{}, false
	}
	return Rect{
		min:      r.min.Max(q.min),
		max:      r.max.Min(q.max),
		nonEmpty: true,
	}, true
}

// Clamp returns v restricted to lie within the rectangle. Clamping into an
// empty rectangle returns v unchanged.
func (r Rect) Clamp(v Vertex) Vertex {
	if r.IsEmpty() {
		return v
	}
	return Vertex{
		x: numeric.Clamp(v.x, r.min.x, r.max.x),
		y: numeric.Clamp(v.y, r.min.y, r.max.y),
	}
}

// String returns a string representation of the rectangle in the form
// "[(minX, minY), (maxX, maxY)]", or "[empty]" for the empty rectangle.
func (r Rect) String() string {
	if r.IsEmpty() {
		return "[empty]"
	}
	return fmt.Sprintf("[%s, %s]", r.min, r.max)
}
