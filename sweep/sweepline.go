package sweep

import (
	"github.com/dkolbly/polyclip/geom"
	"github.com/dkolbly/polyclip/options"
	"github.com/dkolbly/polyclip/polygon"
)

// sweeper owns the state of one run: the event queue, the status line, the
// log of processed events, and the counters that make event ids and contour
// ids deterministic. It is not safe for concurrent use.
type sweeper struct {
	op   Operation
	opts []options.GeometryOptionsFunc

	subjectBB geom.Rect
	clipBB    geom.Rect

	queue  *eventQueue
	sl     *statusLine
	sorted []*event // events in processing order, input to the connector

	nextID    int
	contourID int
}

func newSweeper(op Operation, subjectBB, clipBB geom.Rect, opts []options.GeometryOptionsFunc) *sweeper {
	return &sweeper{
		op:        op,
		opts:      opts,
		subjectBB: subjectBB,
		clipBB:    clipBB,
		queue:     newEventQueue(),
		sl:        newStatusLine(),
	}
}

// newEvent allocates an event with the next construction-order id. Events
// live until the run finishes; the queue, status line, processing log and
// other events all reference them.
func (s *sweeper) newEvent(p geom.Vertex, left bool, side polygonSide) *event {
	e := &event{
		id:              s.nextID,
		point:           p,
		left:            left,
		side:            side,
		outputContourID: -1,
	}
	s.nextID++
	return e
}

// addPolygon feeds every edge of every contour of p into the queue. Each
// contour gets its own id, numbered consecutively across both inputs.
func (s *sweeper) addPolygon(p polygon.Polygon, side polygonSide) {
	for ci := 0; ci < p.NumContours(); ci++ {
		c := p.Contour(ci)
		for ei := 0; ei < c.NumEdges(); ei++ {
			s.addSegment(c.Edge(ei), side)
		}
		s.contourID++
	}
}

// addSegment turns one edge into a linked pair of events and enqueues both.
// Zero-length edges are dropped.
func (s *sweeper) addSegment(seg geom.Segment, side polygonSide) {
	if seg.Degenerate() {
		return
	}
	e1 := s.newEvent(seg.Source(), true, side)
	e2 := s.newEvent(seg.Target(), true, side)
	e1.other, e2.other = e2, e1
	e1.contourID, e2.contourID = s.contourID, s.contourID

	// The lexicographically smaller endpoint keeps the left flag; the event
	// comparator settles exact coordinate ties.
	if compareEvents(e1, e2) < 0 {
		e2.left = false
	} else {
		e1.left = false
	}
	s.queue.enqueue(e1)
	s.queue.enqueue(e2)
}

// run drives the main sweep loop and hands the processed events to the
// connector.
func (s *sweeper) run() polygon.Polygon {
	rightBound := s.rightBound()

	for s.queue.size() > 0 {
		e, _ := s.queue.dequeue()
		if e.point.X() > rightBound {
			// Nothing further right can contribute to the result.
			break
		}
		logDebugf("processing %s", e)
		s.sorted = append(s.sorted, e)

		if e.left {
			s.processLeft(e)
		} else {
			s.processRight(e)
		}
	}

	return connectEdges(s.sorted)
}

// processLeft inserts a segment into the status line, labels it from its
// lower neighbour, and checks both neighbours for intersections. When a
// neighbour turns out to overlap the new segment, the labels computed
// before the overlap was discovered are stale, so they are recomputed.
func (s *sweeper) processLeft(e *event) {
	s.sl.insert(e)
	prev := s.sl.prev(e)
	next := s.sl.next(e)

	s.computeFields(e, prev)

	if next != nil && s.possibleIntersection(e, next) == 2 {
		s.computeFields(e, prev)
		s.computeFields(next, e)
	}
	if prev != nil && s.possibleIntersection(prev, e) == 2 {
		s.computeFields(prev, s.sl.prev(prev))
		s.computeFields(e, prev)
	}
}

// processRight retires a segment from the status line and checks whether
// its former neighbours, now adjacent, intersect.
func (s *sweeper) processRight(e *event) {
	l := e.other
	prev := s.sl.prev(l)
	next := s.sl.next(l)
	s.sl.remove(l)

	if prev != nil && next != nil {
		s.possibleIntersection(prev, next)
	}
}

// computeFields labels the left event e from prev, its immediate lower
// neighbour in the status line at insertion time.
func (s *sweeper) computeFields(e, prev *event) {
	switch {
	case prev == nil:
		// Nothing below: a ray from below enters e's polygon here and is
		// outside the other polygon.
		e.inOut = false
		e.otherInOut = true
	case e.side == prev.side:
		e.inOut = !prev.inOut
		e.otherInOut = prev.otherInOut
	default:
		e.inOut = !prev.otherInOut
		if prev.vertical() {
			e.otherInOut = !prev.inOut
		} else {
			e.otherInOut = prev.inOut
		}
	}

	// The nearest lower event that contributes to the result; vertical
	// segments never qualify as "previous in result".
	if prev != nil {
		if !prev.inResult || prev.vertical() {
			e.prevInResult = prev.prevInResult
		} else {
			e.prevInResult = prev
		}
	} else {
		e.prevInResult = nil
	}

	e.inResult = s.inResult(e)
	if e.inResult {
		if s.inside(e) {
			e.transition = transitionContributing
		} else {
			e.transition = transitionNonContributing
		}
	} else {
		e.transition = transitionNeutral
	}
}

// inResult decides whether e's segment bounds the result region.
func (s *sweeper) inResult(e *event) bool {
	switch e.edgeType {
	case edgeNormal:
		switch s.op {
		case Intersection:
			return !e.otherInOut
		case Union:
			return e.otherInOut
		case Difference:
			if e.side == sideSubject {
				return e.otherInOut
			}
			return !e.otherInOut
		default: // Xor
			return true
		}
	case edgeSameTransition:
		return s.op == Intersection || s.op == Union
	case edgeDifferentTransition:
		return s.op == Difference
	default: // edgeNonContributing
		return false
	}
}

// inside reports whether the region just above e's segment belongs to the
// result. The connector uses the answer, recorded as the result transition,
// to tell holes from nested externals.
func (s *sweeper) inside(e *event) bool {
	thisIn := !e.inOut
	thatIn := !e.otherInOut
	switch s.op {
	case Intersection:
		return thisIn && thatIn
	case Union:
		return thisIn || thatIn
	case Xor:
		return thisIn != thatIn
	default: // Difference
		if e.side == sideSubject {
			return thisIn && !thatIn
		}
		return thatIn && !thisIn
	}
}

// possibleIntersection intersects the segments of two left events and
// subdivides them so that, afterwards, active segments only touch at
// endpoints.
//
// Returns:
//   - 0: no intersection, a shared endpoint only, or a tolerated
//     self-overlap within one input polygon.
//   - 1: a single crossing; each segment not ending there was divided.
//   - 2: the segments share their left endpoint (or coincide entirely); the
//     caller must recompute labels.
//   - 3: the segments overlap without sharing a left endpoint.
func (s *sweeper) possibleIntersection(le1, le2 *event) int {
	n, q0, _ := geom.FindIntersection(le1.segment(), le2.segment(), s.opts...)
	if n == 0 {
		return 0
	}
	if n == 1 && (le1.point.Eq(q0) || le1.other.point.Eq(q0)) &&
		(le2.point.Eq(q0) || le2.other.point.Eq(q0)) {
		// The segments only touch at a shared endpoint.
		return 0
	}
	if n == 2 && le1.side == le2.side {
		// Overlapping edges of the same input polygon. The input is
		// malformed, but the sweep tolerates it and treats the pair as
		// non-intersecting.
		return 0
	}

	if n == 1 {
		logDebugf("crossing of %s and %s at %s", le1, le2, q0)
		if !le1.point.Eq(q0) && !le1.other.point.Eq(q0) {
			s.divideSegment(le1, q0)
		}
		if !le2.point.Eq(q0) && !le2.other.point.Eq(q0) {
			s.divideSegment(le2, q0)
		}
		return 1
	}

	// The segments overlap along a collinear interval.
	logDebugf("overlap of %s and %s", le1, le2)
	leftCoincide := le1.point.Eq(le2.point)
	rightCoincide := le1.other.point.Eq(le2.other.point)

	if leftCoincide {
		// Shared left endpoint: only one of the two coincident pieces may
		// represent the pair in the result. le2 stops contributing and le1
		// records whether the two edges crossed into their polygons in the
		// same direction.
		le2.edgeType = edgeNonContributing
		if le1.inOut == le2.inOut {
			le1.edgeType = edgeSameTransition
		} else {
			le1.edgeType = edgeDifferentTransition
		}
		if !rightCoincide {
			// Trim the longer segment at the shorter one's right endpoint.
			if compareEvents(le1.other, le2.other) < 0 {
				s.divideSegment(le2, le1.other.point)
			} else {
				s.divideSegment(le1, le2.other.point)
			}
		}
		return 2
	}

	if rightCoincide {
		// Shared right endpoint only: split the earlier-starting segment at
		// the later one's left endpoint.
		if compareEvents(le1, le2) < 0 {
			s.divideSegment(le1, le2.point)
		} else {
			s.divideSegment(le2, le1.point)
		}
		return 3
	}

	// No shared endpoint: one segment contains the other, or they overlap
	// partially.
	first, second := le1, le2
	if compareEvents(le2, le1) < 0 {
		first, second = le2, le1
	}
	firstRight := first.other
	if compareEvents(firstRight, second.other) > 0 {
		// first contains second: split it at both of second's endpoints.
		// The second split applies to the sub-segment created by the first,
		// reachable through the original right event's rewired partner.
		s.divideSegment(first, second.point)
		s.divideSegment(firstRight.other, second.other.point)
	} else {
		// Partial overlap: split each segment at the other's interior
		// endpoint.
		s.divideSegment(first, second.point)
		s.divideSegment(second, firstRight.point)
	}
	return 3
}

// divideSegment splits the segment of left event le at the interior point
// p, producing a new right event closing the first half and a new left
// event opening the second half.
func (s *sweeper) divideSegment(le *event, p geom.Vertex) {
	logDebugf("dividing %s at %s", le, p)
	re := le.other

	// An active segment's status-line key must match the geometry it was
	// inserted with, so take it out before rewiring and put the shortened
	// segment back afterwards.
	wasActive := le.inSL
	if wasActive {
		s.sl.remove(le)
	}

	r := s.newEvent(p, false, le.side)
	r.other = le
	r.contourID = le.contourID
	r.edgeType = le.edgeType

	l := s.newEvent(p, true, le.side)
	l.other = re
	l.contourID = le.contourID
	l.edgeType = re.edgeType

	if compareEvents(l, re) > 0 {
		// Rounding pushed the new left event past the original right
		// event in queue order. Swap the flags so each pair still has its
		// left event processed first. re is still queued and the flag is
		// part of its ordering, so it leaves the tree for the flip.
		s.queue.remove(re)
		re.left = true
		l.left = false
		s.queue.enqueue(re)
	}

	le.other = r
	re.other = l

	s.queue.enqueue(l)
	s.queue.enqueue(r)

	if wasActive {
		s.sl.insert(le)
	}
}
