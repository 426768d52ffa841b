// Package sweep implements the Martínez–Rueda–Ogayar–Jiménez sweep-line
// algorithm for Boolean operations on polygons.
//
// # Overview
//
// The engine turns every edge of both input polygons into a pair of linked
// events, processes the events left to right through a priority queue, and
// maintains a status line of the segments currently cut by the sweep.
// Whenever two segments meet, they are subdivided at the intersection so
// that afterwards segments only ever touch at endpoints. Each left event is
// labelled with whether its segment borders the interior of its own polygon
// and of the other polygon; the labels and the operation code decide which
// segments survive into the result. A final pass connects the surviving
// segments into contours and attributes holes and nesting depth.
//
// # Usage
//
// The only entry point is [Run]:
//
//	result, err := sweep.Run(subject, clip, sweep.Intersection)
//
// A sweep is single-threaded and fully synchronous; independent calls to
// Run may execute in parallel. Given the same inputs, Run produces the same
// result polygon, including contour order and vertex winding.
package sweep

import (
	"errors"
	"fmt"
	"math"

	"github.com/dkolbly/polyclip/options"
	"github.com/dkolbly/polyclip/polygon"
)

// Operation selects which Boolean result a sweep computes.
type Operation uint8

const (
	// Intersection keeps the region covered by both polygons.
	Intersection Operation = iota
	// Union keeps the region covered by either polygon.
	Union
	// Difference keeps the region covered by the subject but not the
	// clipping polygon.
	Difference
	// Xor keeps the region covered by exactly one of the polygons.
	Xor
)

// String returns the name of the operation.
//
// Panics:
//   - If the Operation value is not one of the defined constants.
func (op Operation) String() string {
	switch op {
	case Intersection:
		return "intersection"
	case Union:
		return "union"
	case Difference:
		return "difference"
	case Xor:
		return "xor"
	default:
		panic(fmt.Errorf("unsupported operation: %d", uint8(op)))
	}
}

// ErrInvalidOperation is returned by [Run] when the operation code is not
// one of the four defined values.
var ErrInvalidOperation = errors.New("invalid boolean operation")

// Run computes the Boolean operation op between the subject and clipping
// polygons and returns the result as a new polygon. Result contours carry
// their nesting depth, the index of their parent contour when they are
// holes, and the indices of their child holes; external contours wind
// counterclockwise and odd-depth holes clockwise.
//
// The optional [options.WithEpsilon] tunes the endpoint snapping tolerance
// of the underlying segment intersection predicate.
func Run(subject, clip polygon.Polygon, op Operation, opts ...options.GeometryOptionsFunc) (polygon.Polygon, error) {
	switch op {
	case Intersection, Union, Difference, Xor:
	default:
		return polygon.Polygon{}, fmt.Errorf("%w: code %d", ErrInvalidOperation, uint8(op))
	}

	if result, done := trivialResult(subject, clip, op); done {
		return result, nil
	}

	s := newSweeper(op, subject.BoundingBox(), clip.BoundingBox(), opts)
	s.addPolygon(subject, sideSubject)
	s.addPolygon(clip, sideClipping)
	return s.run(), nil
}

// trivialResult handles the cases that never need a sweep: one or both
// inputs empty, or bounding boxes that do not meet at all.
func trivialResult(subject, clip polygon.Polygon, op Operation) (polygon.Polygon, bool) {
	subjectEmpty := subject.IsEmpty()
	clipEmpty := clip.IsEmpty()
	if subjectEmpty || clipEmpty {
		switch op {
		case Intersection:
			return polygon.Polygon{}, true
		case Difference:
			return copyOf(subject), true
		default: // Union, Xor: whichever operand is non-empty
			if subjectEmpty {
				return copyOf(clip), true
			}
			return copyOf(subject), true
		}
	}

	if !subject.BoundingBox().Intersects(clip.BoundingBox()) {
		switch op {
		case Intersection:
			return polygon.Polygon{}, true
		case Difference:
			return copyOf(subject), true
		default: // Union, Xor: both operands, side by side
			result := copyOf(subject)
			result.Join(clip)
			return result, true
		}
	}

	return polygon.Polygon{}, false
}

// copyOf returns a deep copy of p, so trivial results never alias the
// caller's input.
func copyOf(p polygon.Polygon) polygon.Polygon {
	result := polygon.Polygon{}
	result.Join(p)
	return result
}

// rightBound returns the x coordinate past which the sweep can stop early:
// beyond the leftmost of the two bounding boxes' right edges for
// Intersection, beyond the subject for
// Difference. The other operations need the full sweep.
func (s *sweeper) rightBound() float64 {
	switch s.op {
	case Intersection:
		return math.Min(s.subjectBB.Max().X(), s.clipBB.Max().X())
	case Difference:
		return s.subjectBB.Max().X()
	default:
		return math.Inf(1)
	}
}
