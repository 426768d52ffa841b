package sweep

import (
	"slices"

	"github.com/dkolbly/polyclip/geom"
	"github.com/dkolbly/polyclip/polygon"
)

// connectEdges assembles the labelled events that survived the sweep into
// oriented contours with hole and depth attribution.
func connectEdges(sortedEvents []*event) polygon.Polygon {
	// Both events of every surviving segment take part in the walk.
	resultEvents := make([]*event, 0, len(sortedEvents))
	for _, se := range sortedEvents {
		if (se.left && se.inResult) || (!se.left && se.other.inResult) {
			resultEvents = append(resultEvents, se)
		}
	}

	// Subdivision can append events to the processing log out of comparator
	// order, so re-sort. The sort must be stable; the construction-order
	// tie-breaker inside compareEvents makes the order deterministic.
	slices.SortStableFunc(resultEvents, compareEvents)

	// After this, resultEvents[resultEvents[i].pos] is the partner of the
	// event at position i.
	for i, e := range resultEvents {
		e.pos = i
	}
	for _, e := range resultEvents {
		if !e.left {
			e.pos, e.other.pos = e.other.pos, e.pos
		}
	}

	processed := make([]bool, len(resultEvents))
	result := polygon.Polygon{}

	for i := range resultEvents {
		if processed[i] {
			continue
		}

		contourID := result.NumContours()
		depth, holeOf := contourContext(resultEvents[i], &result)

		ring := walkContour(resultEvents, processed, i, contourID)

		contour := polygon.NewContour(ring...)
		contour.SetDepth(depth)
		if holeOf >= 0 {
			contour.SetHoleOf(holeOf)
			result.Contour(holeOf).AddHole(contourID)
		}
		result.Add(contour)
	}

	// Orientation is enforced only here: even depths wind counterclockwise,
	// odd depths clockwise.
	for ci := 0; ci < result.NumContours(); ci++ {
		c := result.Contour(ci)
		if c.Depth()%2 == 1 {
			c.SetClockwise()
		} else {
			c.SetCounterClockwise()
		}
	}

	return result
}

// contourContext derives the depth and parent of the contour starting at
// event e from the nearest lower contributing event, which belongs to a
// contour that has already been walked.
func contourContext(e *event, result *polygon.Polygon) (depth, holeOf int) {
	lower := e.prevInResult
	if lower == nil {
		// Nothing below: an external contour.
		return 0, -1
	}

	lowerID := lower.outputContourID
	lowerContour := result.Contour(lowerID)
	if lower.transition == transitionContributing {
		// The lower segment transitions into the result region, so the new
		// contour sits inside it: a hole of the lower contour, or a sibling
		// hole of the same parent when the lower contour is itself a hole.
		if !lowerContour.External() {
			return lowerContour.Depth(), lowerContour.HoleOf()
		}
		return lowerContour.Depth() + 1, lowerID
	}
	// The lower segment left us outside the result region: a further
	// external contour at the same depth.
	return lowerContour.Depth(), -1
}

// walkContour traces one closed ring starting at position start, marking
// every visited event processed and recording the output contour id on the
// left event of each visited pair. The returned ring does not repeat its
// closing vertex.
func walkContour(resultEvents []*event, processed []bool, start, contourID int) []geom.Vertex {
	pos := start
	initial := resultEvents[start].point
	ring := []geom.Vertex{initial}

	for {
		ev := resultEvents[pos]
		processed[pos] = true
		if ev.left {
			ev.resultInOut = false
			ev.outputContourID = contourID
		} else {
			ev.other.resultInOut = true
			ev.other.outputContourID = contourID
		}

		// Jump to the partner, which closes the current edge.
		pos = ev.pos
		processed[pos] = true
		ring = append(ring, resultEvents[pos].point)

		pos = nextPos(pos, resultEvents, processed, start)
		if pos == start || pos < 0 || pos >= len(resultEvents) || processed[pos] {
			break
		}
	}

	// The walk closes back onto its starting vertex; the ring keeps the
	// closing edge implicit.
	if len(ring) > 1 && ring[len(ring)-1].Eq(initial) {
		ring = ring[:len(ring)-1]
	}
	return ring
}

// nextPos finds the next event to continue the walk from: first an
// unprocessed event at the same point scanning forward, then, failing that,
// scanning backward while staying above origPos. If every candidate is
// processed the last scanned index is returned and the walk terminates.
func nextPos(pos int, resultEvents []*event, processed []bool, origPos int) int {
	p := resultEvents[pos].point
	newPos := pos + 1
	for newPos < len(resultEvents) && resultEvents[newPos].point.Eq(p) {
		if !processed[newPos] {
			return newPos
		}
		newPos++
	}
	newPos = pos - 1
	for newPos > origPos && processed[newPos] {
		newPos--
	}
	return newPos
}
