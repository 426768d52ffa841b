package sweep

import (
	"github.com/dkolbly/polyclip/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

// newTestPair builds a linked event pair the same way segment ingestion
// does, and returns (left, right).
func newTestPair(s *sweeper, seg geom.Segment, side polygonSide) (*event, *event) {
	e1 := s.newEvent(seg.Source(), true, side)
	e2 := s.newEvent(seg.Target(), true, side)
	e1.other, e2.other = e2, e1
	e1.contourID, e2.contourID = s.contourID, s.contourID
	if compareEvents(e1, e2) < 0 {
		e2.left = false
	} else {
		e1.left = false
	}
	if e1.left {
		return e1, e2
	}
	return e2, e1
}

func testSweeper(op Operation) *sweeper {
	return newSweeper(op, geom.Rect{}, geom.Rect{}, nil)
}

func TestEvent_PairInvariant(t *testing.T) {
	s := testSweeper(Union)
	l, r := newTestPair(s, geom.NewSegment(0, 0, 1, 1), sideSubject)
	assert.Same(t, l, r.other)
	assert.Same(t, r, l.other)
	assert.True(t, l.left)
	assert.False(t, r.left)
	assert.Equal(t, geom.New(0, 0), l.point)
}

func TestEvent_LeftAssignment(t *testing.T) {
	tests := map[string]struct {
		segment      geom.Segment
		expectedLeft geom.Vertex
	}{
		"source is left": {
			segment:      geom.NewSegment(0, 0, 1, 1),
			expectedLeft: geom.New(0, 0),
		},
		"target is left": {
			segment:      geom.NewSegment(5, 5, 2, 7),
			expectedLeft: geom.New(2, 7),
		},
		"vertical: lower endpoint is left": {
			segment:      geom.NewSegment(3, 9, 3, 1),
			expectedLeft: geom.New(3, 1),
		},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			s := testSweeper(Union)
			l, _ := newTestPair(s, tc.segment, sideSubject)
			assert.Equal(t, tc.expectedLeft, l.point)
		})
	}
}

func TestEvent_BelowAbove(t *testing.T) {
	s := testSweeper(Union)
	l, r := newTestPair(s, geom.NewSegment(0, 0, 2, 0), sideSubject)

	assert.True(t, l.below(geom.New(1, 1)))
	assert.False(t, l.below(geom.New(1, -1)))
	assert.True(t, l.above(geom.New(1, -1)))
	// The right event must answer consistently with its left partner.
	assert.True(t, r.below(geom.New(1, 1)))
	assert.False(t, r.below(geom.New(1, -1)))
}

func TestCompareEvents(t *testing.T) {
	tests := map[string]struct {
		build    func(s *sweeper) (a, b *event)
		expected int
	}{
		"smaller x first": {
			build: func(s *sweeper) (*event, *event) {
				a, _ := newTestPair(s, geom.NewSegment(0, 0, 1, 1), sideSubject)
				b, _ := newTestPair(s, geom.NewSegment(2, 0, 3, 1), sideSubject)
				return a, b
			},
			expected: -1,
		},
		"same x, smaller y first": {
			build: func(s *sweeper) (*event, *event) {
				a, _ := newTestPair(s, geom.NewSegment(0, 0, 1, 1), sideSubject)
				b, _ := newTestPair(s, geom.NewSegment(0, 2, 1, 3), sideSubject)
				return a, b
			},
			expected: -1,
		},
		"right endpoint before left endpoint at the same point": {
			build: func(s *sweeper) (*event, *event) {
				_, endsHere := newTestPair(s, geom.NewSegment(0, 0, 1, 1), sideSubject)
				startsHere, _ := newTestPair(s, geom.NewSegment(1, 1, 2, 2), sideSubject)
				return endsHere, startsHere
			},
			expected: -1,
		},
		"lower segment first at a shared left endpoint": {
			build: func(s *sweeper) (*event, *event) {
				steep, _ := newTestPair(s, geom.NewSegment(0, 0, 1, 2), sideSubject)
				shallow, _ := newTestPair(s, geom.NewSegment(0, 0, 2, 1), sideSubject)
				return shallow, steep
			},
			expected: -1,
		},
		"subject before clipping for coincident events": {
			build: func(s *sweeper) (*event, *event) {
				c, _ := newTestPair(s, geom.NewSegment(0, 0, 1, 1), sideClipping)
				sub, _ := newTestPair(s, geom.NewSegment(0, 0, 1, 1), sideSubject)
				return sub, c
			},
			expected: -1,
		},
		"construction order settles full ties": {
			build: func(s *sweeper) (*event, *event) {
				first, _ := newTestPair(s, geom.NewSegment(0, 0, 1, 1), sideSubject)
				second, _ := newTestPair(s, geom.NewSegment(0, 0, 1, 1), sideSubject)
				return first, second
			},
			expected: -1,
		},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			s := testSweeper(Union)
			a, b := tc.build(s)
			got := compareEvents(a, b)
			require.NotZero(t, got, "distinct events must never compare equal")
			assert.Equal(t, tc.expected, sign(got))
			assert.Equal(t, -tc.expected, sign(compareEvents(b, a)), "comparator must be antisymmetric")
		})
	}
}

func TestCompareSegments(t *testing.T) {
	tests := map[string]struct {
		build    func(s *sweeper) (x, y *event)
		expected int
	}{
		"shared left endpoint: lower right endpoint first": {
			build: func(s *sweeper) (*event, *event) {
				low, _ := newTestPair(s, geom.NewSegment(0, 0, 2, 1), sideSubject)
				high, _ := newTestPair(s, geom.NewSegment(0, 0, 2, 3), sideSubject)
				return low, high
			},
			expected: -1,
		},
		"same left x: lower y first": {
			build: func(s *sweeper) (*event, *event) {
				low, _ := newTestPair(s, geom.NewSegment(0, 0, 2, 0), sideSubject)
				high, _ := newTestPair(s, geom.NewSegment(0, 1, 2, 1), sideSubject)
				return low, high
			},
			expected: -1,
		},
		"later segment starting above the earlier one": {
			build: func(s *sweeper) (*event, *event) {
				earlier, _ := newTestPair(s, geom.NewSegment(0, 0, 4, 0), sideSubject)
				later, _ := newTestPair(s, geom.NewSegment(1, 1, 3, 2), sideSubject)
				return earlier, later
			},
			expected: -1,
		},
		"later segment starting below the earlier one": {
			build: func(s *sweeper) (*event, *event) {
				earlier, _ := newTestPair(s, geom.NewSegment(0, 0, 4, 0), sideSubject)
				later, _ := newTestPair(s, geom.NewSegment(1, -2, 3, -1), sideSubject)
				return later, earlier
			},
			expected: -1,
		},
		"collinear from different polygons: subject first": {
			build: func(s *sweeper) (*event, *event) {
				c, _ := newTestPair(s, geom.NewSegment(0, 0, 2, 0), sideClipping)
				sub, _ := newTestPair(s, geom.NewSegment(0, 0, 2, 0), sideSubject)
				return sub, c
			},
			expected: -1,
		},
		"collinear, same side, same left point: contour id decides": {
			build: func(s *sweeper) (*event, *event) {
				shorter, _ := newTestPair(s, geom.NewSegment(0, 0, 2, 0), sideSubject)
				s.contourID++
				longer, _ := newTestPair(s, geom.NewSegment(0, 0, 3, 0), sideSubject)
				return shorter, longer
			},
			expected: -1,
		},
		"fully coincident: construction order keeps the order strict": {
			build: func(s *sweeper) (*event, *event) {
				first, _ := newTestPair(s, geom.NewSegment(0, 0, 2, 0), sideSubject)
				second, _ := newTestPair(s, geom.NewSegment(0, 0, 2, 0), sideSubject)
				return first, second
			},
			expected: -1,
		},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			s := testSweeper(Union)
			x, y := tc.build(s)
			got := compareSegments(x, y)
			require.NotZero(t, got, "distinct events must never compare equal")
			assert.Equal(t, tc.expected, sign(got))
			assert.Equal(t, -tc.expected, sign(compareSegments(y, x)), "comparator must be antisymmetric")
		})
	}
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}
