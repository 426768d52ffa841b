package geom

import (
	"fmt"
	"math"

	"github.com/dkolbly/polyclip/numeric"
	"github.com/dkolbly/polyclip/options"
)

// Vertex represents a point in two-dimensional space with x and y coordinates
// of type float64. The Vertex struct provides methods for common vector
// operations such as subtraction, cross and dot products, and distance
// calculations, making it the building block for segments, contours and
// polygons.
//
// Vertices are immutable: every method returns a new value.
type Vertex struct {
	x float64
	y float64
}

// New creates a new Vertex with the specified x and y coordinates.
func New(x, y float64) Vertex {
	return Vertex{
		x: x,
		y: y,
	}
}

// X returns the x-coordinate of the vertex.
func (v Vertex) X() float64 {
	return v.x
}

// Y returns the y-coordinate of the vertex.
func (v Vertex) Y() float64 {
	return v.y
}

// Add returns the sum of two vertices as if they were vectors.
// It performs component-wise addition:
//
//	(v.X + q.X, v.Y + q.Y)
func (v Vertex) Add(q Vertex) Vertex {
	return Vertex{
		x: v.x + q.x,
		y: v.y + q.y,
	}
}

// Sub returns the difference of two vertices as if they were vectors.
// It performs component-wise subtraction:
//
//	(v.X - q.X, v.Y - q.Y)
func (v Vertex) Sub(q Vertex) Vertex {
	return Vertex{
		x: v.x - q.x,
		y: v.y - q.y,
	}
}

// Min returns the component-wise minimum of two vertices.
func (v Vertex) Min(q Vertex) Vertex {
	return Vertex{
		x: math.Min(v.x, q.x),
		y: math.Min(v.y, q.y),
	}
}

// Max returns the component-wise maximum of two vertices.
func (v Vertex) Max(q Vertex) Vertex {
	return Vertex{
		x: math.Max(v.x, q.x),
		y: math.Max(v.y, q.y),
	}
}

// DotProduct computes the dot product of the vectors represented by v and q.
//
// The dot product is defined as:
//
//	v.X*q.X + v.Y*q.Y
func (v Vertex) DotProduct(q Vertex) float64 {
	return v.x*q.x + v.y*q.y
}

// CrossProduct computes the 2D cross product (the z component of the 3D
// cross product) of the vectors represented by v and q.
//
// The cross product is defined as:
//
//	v.X*q.Y - v.Y*q.X
//
// A positive result indicates q is counterclockwise from v, a negative
// result clockwise, and zero that the vectors are collinear.
func (v Vertex) CrossProduct(q Vertex) float64 {
	return v.x*q.y - v.y*q.x
}

// LengthSquared returns the squared length of the vector represented by v.
// It avoids the square root needed for the true length, which is sufficient
// for comparisons.
func (v Vertex) LengthSquared() float64 {
	return v.x*v.x + v.y*v.y
}

// DistanceToVertex returns the Euclidean distance between v and q.
func (v Vertex) DistanceToVertex(q Vertex) float64 {
	return math.Sqrt(v.DistanceSquaredToVertex(q))
}

// DistanceSquaredToVertex returns the squared Euclidean distance between v
// and q.
func (v Vertex) DistanceSquaredToVertex(q Vertex) float64 {
	dx := q.x - v.x
	dy := q.y - v.y
	return dx*dx + dy*dy
}

// Eq reports whether v and q have equal coordinates.
//
// By default the comparison is exact, which is what the sweep-line
// comparators require. An approximate comparison can be requested with
// [options.WithEpsilon].
func (v Vertex) Eq(q Vertex, opts ...options.GeometryOptionsFunc) bool {
	geoOpts := options.ApplyGeometryOptions(options.GeometryOptions{Epsilon: 0}, opts...)
	if geoOpts.Epsilon > 0 {
		return numeric.FloatEquals(v.x, q.x, geoOpts.Epsilon) &&
			numeric.FloatEquals(v.y, q.y, geoOpts.Epsilon)
	}
	return v.x == q.x && v.y == q.y
}

// String returns a string representation of the vertex in the form "(x, y)".
func (v Vertex) String() string {
	return fmt.Sprintf("(%v, %v)", v.x, v.y)
}
