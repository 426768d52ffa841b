package sweep

import (
	"cmp"
	"fmt"

	"github.com/dkolbly/polyclip/geom"
)

// polygonSide identifies which of the two operands a sweep event belongs to.
// The distinction only changes the outcome for Difference, but it also
// serves as a deterministic tie-breaker in both comparators.
type polygonSide uint8

const (
	sideSubject polygonSide = iota
	sideClipping
)

func (s polygonSide) String() string {
	if s == sideSubject {
		return "subject"
	}
	return "clipping"
}

// edgeType classifies a segment for the Boolean labelling. Every event
// starts out normal; overlap handling downgrades one of two coincident
// segments to non-contributing and tags the surviving one with whether the
// two overlapping edges crossed into their polygons in the same direction.
type edgeType uint8

const (
	edgeNormal edgeType = iota
	edgeNonContributing
	edgeSameTransition
	edgeDifferentTransition
)

// resultTransition records, for events that made it into the result, whether
// walking over the segment transitions into the result region. The connector
// uses it to decide hole nesting and depth.
type resultTransition int8

const (
	transitionNonContributing resultTransition = -1
	transitionNeutral         resultTransition = 0
	transitionContributing    resultTransition = 1
)

// event is the central record of the sweep. Each input segment becomes a
// linked pair of events, one per endpoint; subdivision allocates further
// pairs. Events are allocated once and stay alive until the run finishes,
// since the queue, the status line, the processing log and other events all
// hold references into the same pool.
type event struct {
	// id is the construction order of the event. It is the final
	// tie-breaker of both comparators, which makes them strict total orders
	// and the queue stable in effect.
	id int

	point geom.Vertex
	// left marks the event at the lexicographically smaller endpoint of its
	// segment. Subdivision fix-ups may flip it at most once.
	left  bool
	other *event

	side      polygonSide
	contourID int
	edgeType  edgeType

	// Labelling fields, maintained by computeFields on left events.
	inOut        bool
	otherInOut   bool
	prevInResult *event
	inResult     bool
	transition   resultTransition

	// inSL marks the event as currently resident in the status line, so
	// subdivision knows to take it out before changing its geometry.
	inSL bool

	// Connector fields.
	pos             int
	outputContourID int
	resultInOut     bool
}

// segment returns the segment spanned by the event and its partner.
func (e *event) segment() geom.Segment {
	return geom.NewSegmentFromVertices(e.point, e.other.point)
}

// vertical reports whether the event's segment is exactly vertical.
func (e *event) vertical() bool {
	return e.point.X() == e.other.point.X()
}

// below reports whether the event's segment lies below the point p.
func (e *event) below(p geom.Vertex) bool {
	if e.left {
		return geom.SignedArea(e.point, e.other.point, p) > 0
	}
	return geom.SignedArea(e.other.point, e.point, p) > 0
}

// above reports whether the event's segment lies above the point p.
func (e *event) above(p geom.Vertex) bool {
	return !e.below(p)
}

func (e *event) String() string {
	kind := "right"
	if e.left {
		kind = "left"
	}
	return fmt.Sprintf("%s (%s) of %s [%s]", e.point, kind, e.segment(), e.side)
}

// compareEvents is the queue order: the total order in which the sweep
// processes events. It returns a negative value if a is processed before b,
// positive if after, and zero only for the same event.
//
// Keys, in order: smaller x first; smaller y first; right endpoints before
// left endpoints; for two endpoints of the same kind at the same point, the
// event whose segment is below the other's far endpoint first; subject
// before clipping; construction order.
func compareEvents(a, b *event) int {
	if a == b {
		return 0
	}
	if a.point.X() != b.point.X() {
		return cmp.Compare(a.point.X(), b.point.X())
	}
	if a.point.Y() != b.point.Y() {
		return cmp.Compare(a.point.Y(), b.point.Y())
	}
	if a.left != b.left {
		// The right endpoint of a finished segment is processed before a
		// new segment starts at the same point.
		if a.left {
			return 1
		}
		return -1
	}
	if geom.SignedArea(a.point, a.other.point, b.other.point) != 0 {
		// Same point, same endpoint kind, non-collinear segments: the one
		// that is below comes first.
		if a.below(b.other.point) {
			return -1
		}
		return 1
	}
	if a.side != b.side {
		if a.side == sideSubject {
			return -1
		}
		return 1
	}
	return cmp.Compare(a.id, b.id)
}

// compareSegments is the status-line order: where, along the sweep line, the
// segment of left event x sits relative to the segment of left event y. The
// result is only meaningful while both segments are active, and must stay
// stable for as long as they are; subdivision removes and reinserts affected
// events to preserve that.
func compareSegments(x, y *event) int {
	if x == y {
		return 0
	}

	if geom.SignedArea(x.point, x.other.point, y.point) != 0 ||
		geom.SignedArea(x.point, x.other.point, y.other.point) != 0 {
		// Non-collinear segments.

		// Sharing the left endpoint: sort on the right endpoints.
		if x.point.Eq(y.point) {
			if x.below(y.other.point) {
				return -1
			}
			return 1
		}
		// Distinct left endpoints on the same vertical: lower y first.
		if x.point.X() == y.point.X() {
			if x.point.Y() < y.point.Y() {
				return -1
			}
			return 1
		}
		// Otherwise the segment inserted earlier in sweep order was already
		// in place, and the later one's position is decided by which side
		// of the earlier segment its left endpoint falls on.
		if compareEvents(x, y) > 0 {
			// y's segment entered the status line first.
			if y.above(x.point) {
				return -1
			}
			return 1
		}
		if x.below(y.point) {
			return -1
		}
		return 1
	}

	// Collinear segments.
	if x.side != y.side {
		if x.side == sideSubject {
			return -1
		}
		return 1
	}
	if x.point.Eq(y.point) {
		if x.other.point.Eq(y.other.point) {
			// Fully coincident: only the construction order keeps the tree
			// strict.
			return cmp.Compare(x.id, y.id)
		}
		return cmp.Compare(x.contourID, y.contourID)
	}
	return compareEvents(x, y)
}
