package geom

import (
	"math"

	"github.com/dkolbly/polyclip/numeric"
	"github.com/dkolbly/polyclip/options"
)

// DefaultEpsilon is the snapping tolerance used by [FindIntersection] when
// the caller does not supply one via [options.WithEpsilon]. Intersection
// points closer than this to a segment endpoint are snapped onto that
// endpoint.
const DefaultEpsilon = 1e-9

// FindIntersection computes the intersection of segments a and b.
//
// Returns:
//   - count (int): 0 if the segments do not intersect, 1 if they intersect
//     in a single point q0, or 2 if they overlap along a collinear interval
//     with endpoints q0 and q1.
//   - q0, q1 (Vertex): the intersection point(s). q1 is only meaningful when
//     count is 2.
//
// Behavior:
//   - The axis-aligned rectangle common to both segment bounding boxes is
//     established first; if it is empty the segments cannot intersect.
//   - A single intersection point that lands within epsilon of an endpoint
//     of either segment is snapped onto that endpoint.
//   - Parallel segments on different supporting lines do not intersect;
//     collinear segments intersect in the overlap of their parameter
//     intervals, which may be empty, a single point, or an interval.
//   - Every returned point is clamped into the common rectangle to bound
//     numerical drift.
//
// The predicate is not exact: near-degenerate inputs can produce snapped or
// clamped points that a higher-precision computation would place elsewhere.
func FindIntersection(a, b Segment, opts ...options.GeometryOptionsFunc) (int, Vertex, Vertex) {
	geoOpts := options.ApplyGeometryOptions(options.GeometryOptions{Epsilon: DefaultEpsilon}, opts...)
	epsilon := geoOpts.Epsilon

	clip, ok := a.BoundingBox().Intersection(b.BoundingBox())
	if !ok {
		return 0, Vertex{}, Vertex{}
	}

	p0 := a.Source()
	d0 := a.Target().Sub(p0)
	p1 := b.Source()
	d1 := b.Target().Sub(p1)
	e := p1.Sub(p0)

	kross := d0.CrossProduct(d1)
	sqrKross := kross * kross
	sqrLen0 := d0.LengthSquared()
	sqrLen1 := d1.LengthSquared()
	sqrEpsilon := epsilon * epsilon

	if sqrKross > sqrEpsilon*sqrLen0*sqrLen1 {
		// The supporting lines cross. Solve for the parameters on each
		// segment and reject if the crossing lies outside either.
		s := e.CrossProduct(d1) / kross
		if s < 0 || s > 1 {
			return 0, Vertex{}, Vertex{}
		}
		t := e.CrossProduct(d0) / kross
		if t < 0 || t > 1 {
			return 0, Vertex{}, Vertex{}
		}
		q0 := New(p0.x+s*d0.x, p0.y+s*d0.y)
		q0 = snapToEndpoint(q0, epsilon, a, b)
		return 1, clip.Clamp(q0), Vertex{}
	}

	// The supporting lines are parallel. If the vector between the two
	// source points is not also collinear with the direction, the lines are
	// distinct and there is no intersection.
	sqrLenE := e.LengthSquared()
	kross = e.CrossProduct(d0)
	sqrKross = kross * kross
	if sqrKross > sqrEpsilon*sqrLen0*sqrLenE {
		return 0, Vertex{}, Vertex{}
	}

	// Collinear. Project b onto a's parameterization and intersect the
	// parameter intervals, clamped to [0, 1] on a.
	s0 := d0.DotProduct(e) / sqrLen0
	s1 := s0 + d0.DotProduct(d1)/sqrLen0
	smin := math.Min(s0, s1)
	smax := math.Max(s0, s1)
	if smax < 0 || smin > 1 {
		return 0, Vertex{}, Vertex{}
	}
	w0 := numeric.Clamp(smin, 0, 1)
	w1 := numeric.Clamp(smax, 0, 1)

	q0 := New(p0.x+w0*d0.x, p0.y+w0*d0.y)
	q0 = snapToEndpoint(q0, epsilon, a, b)
	if w0 == w1 {
		// The overlap interval is a single point: the segments touch at
		// coincident endpoints.
		return 1, clip.Clamp(q0), Vertex{}
	}
	q1 := New(p0.x+w1*d0.x, p0.y+w1*d0.y)
	q1 = snapToEndpoint(q1, epsilon, a, b)
	return 2, clip.Clamp(q0), clip.Clamp(q1)
}

// snapToEndpoint pulls q onto the nearest endpoint of a or b when it lies
// within epsilon of one. Endpoints of a are preferred over endpoints of b.
func snapToEndpoint(q Vertex, epsilon float64, a, b Segment) Vertex {
	for _, endpoint := range [4]Vertex{a.source, a.target, b.source, b.target} {
		if q.DistanceToVertex(endpoint) < epsilon {
			return endpoint
		}
	}
	return q
}
