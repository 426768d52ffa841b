package polyclip

import (
	"fmt"
	"sort"
	"strings"
	"testing"

	"github.com/dkolbly/polyclip/geom"
	"github.com/dkolbly/polyclip/options"
	"github.com/dkolbly/polyclip/polygon"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func square(x0, y0, size float64) polygon.Polygon {
	return polygon.New(polygon.NewContour(
		geom.New(x0, y0),
		geom.New(x0+size, y0),
		geom.New(x0+size, y0+size),
		geom.New(x0, y0+size),
	))
}

func ringOf(c *polygon.Contour) []geom.Vertex {
	vs := make([]geom.Vertex, c.NumVertices())
	for i := range vs {
		vs[i] = c.Vertex(i)
	}
	return vs
}

// normalizeRing rotates the ring so that its lexicographically smallest
// vertex comes first, keeping the winding direction. Two equal rings then
// compare equal regardless of which vertex a contour walk started from.
func normalizeRing(vs []geom.Vertex) []geom.Vertex {
	if len(vs) == 0 {
		return vs
	}
	min := 0
	for i := 1; i < len(vs); i++ {
		if vs[i].X() < vs[min].X() || (vs[i].X() == vs[min].X() && vs[i].Y() < vs[min].Y()) {
			min = i
		}
	}
	out := make([]geom.Vertex, 0, len(vs))
	out = append(out, vs[min:]...)
	out = append(out, vs[:min]...)
	return out
}

func assertRing(t *testing.T, c *polygon.Contour, want ...geom.Vertex) {
	t.Helper()
	got := normalizeRing(ringOf(c))
	expected := normalizeRing(want)
	require.Equal(t, len(expected), len(got), "ring %v", got)
	for i := range expected {
		assert.True(t, expected[i].Eq(got[i]), "vertex %d: got %s, want %s (ring %v)", i, got[i], expected[i], got)
	}
}

// ringArea returns the signed area of a ring: positive when it winds
// counterclockwise.
func ringArea(c *polygon.Contour) float64 {
	area := 0.0
	for i := 0; i < c.NumVertices(); i++ {
		j := (i + 1) % c.NumVertices()
		area += c.Vertex(i).CrossProduct(c.Vertex(j))
	}
	return area / 2
}

// totalArea sums the signed ring areas of a polygon; clockwise holes
// subtract from their parents.
func totalArea(p polygon.Polygon) float64 {
	area := 0.0
	for ci := 0; ci < p.NumContours(); ci++ {
		area += ringArea(p.Contour(ci))
	}
	return area
}

// fingerprint reduces a polygon to a sorted set of normalized ring strings
// with depths, for comparing results that should be geometrically equal.
func fingerprint(p polygon.Polygon) []string {
	out := make([]string, 0, p.NumContours())
	for ci := 0; ci < p.NumContours(); ci++ {
		c := p.Contour(ci)
		ring := strings.Builder{}
		for _, v := range normalizeRing(ringOf(c)) {
			ring.WriteString(v.String())
		}
		out = append(out, fmt.Sprintf("%s depth=%d", ring.String(), c.Depth()))
	}
	sort.Strings(out)
	return out
}

func TestIdenticalSquares(t *testing.T) {
	subject := square(0, 0, 1)
	clip := square(0, 0, 1)
	unitRing := []geom.Vertex{geom.New(0, 0), geom.New(1, 0), geom.New(1, 1), geom.New(0, 1)}

	inter, err := Intersection(subject, clip)
	require.NoError(t, err)
	require.Equal(t, 1, inter.NumContours())
	assertRing(t, inter.Contour(0), unitRing...)
	assert.True(t, inter.Contour(0).CounterClockwise())

	union, err := Union(subject, clip)
	require.NoError(t, err)
	require.Equal(t, 1, union.NumContours())
	assertRing(t, union.Contour(0), unitRing...)

	diff, err := Difference(subject, clip)
	require.NoError(t, err)
	assert.True(t, diff.IsEmpty())

	xor, err := Xor(subject, clip)
	require.NoError(t, err)
	assert.True(t, xor.IsEmpty())
}

func TestOverlappingSquares(t *testing.T) {
	subject := square(0, 0, 2)
	clip := square(1, 1, 2)

	inter, err := Intersection(subject, clip)
	require.NoError(t, err)
	require.Equal(t, 1, inter.NumContours())
	assertRing(t, inter.Contour(0),
		geom.New(1, 1), geom.New(2, 1), geom.New(2, 2), geom.New(1, 2))
	assert.True(t, inter.Contour(0).CounterClockwise())

	union, err := Union(subject, clip)
	require.NoError(t, err)
	require.Equal(t, 1, union.NumContours())
	assertRing(t, union.Contour(0),
		geom.New(0, 0), geom.New(2, 0), geom.New(2, 1), geom.New(3, 1),
		geom.New(3, 3), geom.New(1, 3), geom.New(1, 2), geom.New(0, 2))
	assert.InDelta(t, 7, totalArea(union), 1e-12)

	diff, err := Difference(subject, clip)
	require.NoError(t, err)
	require.Equal(t, 1, diff.NumContours())
	assertRing(t, diff.Contour(0),
		geom.New(0, 0), geom.New(2, 0), geom.New(2, 1), geom.New(1, 1),
		geom.New(1, 2), geom.New(0, 2))

	xor, err := Xor(subject, clip)
	require.NoError(t, err)
	require.Equal(t, 2, xor.NumContours())
	for ci := 0; ci < xor.NumContours(); ci++ {
		c := xor.Contour(ci)
		assert.True(t, c.External())
		assert.InDelta(t, 3, ringArea(c), 1e-12)
	}
}

func TestDisjointSquares(t *testing.T) {
	subject := square(0, 0, 1)
	clip := square(10, 10, 1)

	inter, err := Intersection(subject, clip)
	require.NoError(t, err)
	assert.True(t, inter.IsEmpty())

	union, err := Union(subject, clip)
	require.NoError(t, err)
	assert.Equal(t, 2, union.NumContours())
	assert.Equal(t, subject.NumVertices()+clip.NumVertices(), union.NumVertices())

	diff, err := Difference(subject, clip)
	require.NoError(t, err)
	require.Equal(t, 1, diff.NumContours())
	assertRing(t, diff.Contour(0), ringOf(subject.Contour(0))...)

	xor, err := Xor(subject, clip)
	require.NoError(t, err)
	assert.Equal(t, subject.NumVertices()+clip.NumVertices(), xor.NumVertices())
}

func TestHoleCreation(t *testing.T) {
	subject := square(0, 0, 10)
	clip := square(3, 3, 4)

	diff, err := Difference(subject, clip)
	require.NoError(t, err)
	require.Equal(t, 2, diff.NumContours())

	outer := diff.Contour(0)
	assert.True(t, outer.External())
	assert.Equal(t, 0, outer.Depth())
	assert.True(t, outer.CounterClockwise())
	assertRing(t, outer,
		geom.New(0, 0), geom.New(10, 0), geom.New(10, 10), geom.New(0, 10))
	require.Equal(t, 1, outer.NumHoles())
	assert.Equal(t, 1, outer.Hole(0))

	hole := diff.Contour(1)
	assert.False(t, hole.External())
	assert.Equal(t, 0, hole.HoleOf())
	assert.Equal(t, 1, hole.Depth())
	assert.True(t, hole.Clockwise())
	assertRing(t, hole,
		geom.New(3, 3), geom.New(3, 7), geom.New(7, 7), geom.New(7, 3))

	assert.InDelta(t, 100-16, totalArea(diff), 1e-12)
}

func TestTouchingAtSingleVertex(t *testing.T) {
	subject := square(0, 0, 1)
	clip := square(1, 1, 1)

	inter, err := Intersection(subject, clip)
	require.NoError(t, err)
	assert.True(t, inter.IsEmpty(), "a shared vertex encloses no area")

	union, err := Union(subject, clip)
	require.NoError(t, err)
	assert.InDelta(t, 2, totalArea(union), 1e-12, "area must be conserved")
}

func TestTouchingAlongSharedEdge(t *testing.T) {
	subject := square(0, 0, 1)
	clip := square(1, 0, 1)

	inter, err := Intersection(subject, clip)
	require.NoError(t, err)
	assert.True(t, inter.IsEmpty(), "a shared edge encloses no area")

	union, err := Union(subject, clip)
	require.NoError(t, err)
	require.Equal(t, 1, union.NumContours(), "the shared edge must dissolve")
	assert.InDelta(t, 2, totalArea(union), 1e-12)
}

func TestUnionCreatingRing(t *testing.T) {
	// A C-shape whose mouth is partially closed by the clipping square, so
	// that their union encloses an island.
	subject := polygon.New(polygon.NewContour(
		geom.New(0, 0), geom.New(3, 0), geom.New(3, 1), geom.New(1, 1),
		geom.New(1, 2), geom.New(3, 2), geom.New(3, 3), geom.New(0, 3),
	))
	clip := polygon.New(polygon.NewContour(
		geom.New(2, 1), geom.New(3, 1), geom.New(3, 2), geom.New(2, 2),
	))

	union, err := Union(subject, clip)
	require.NoError(t, err)
	require.Equal(t, 2, union.NumContours())

	outer := union.Contour(0)
	assert.True(t, outer.External())
	assert.Equal(t, 0, outer.Depth())
	assert.True(t, outer.CounterClockwise())
	assertRing(t, outer,
		geom.New(0, 0), geom.New(3, 0), geom.New(3, 1), geom.New(3, 2),
		geom.New(3, 3), geom.New(0, 3))

	hole := union.Contour(1)
	assert.Equal(t, 1, hole.Depth())
	assert.Equal(t, 0, hole.HoleOf())
	assert.True(t, hole.Clockwise())
	assertRing(t, hole,
		geom.New(1, 1), geom.New(1, 2), geom.New(2, 2), geom.New(2, 1))

	assert.InDelta(t, 8, totalArea(union), 1e-12)
}

func TestCommutativity(t *testing.T) {
	a := square(0, 0, 2)
	b := square(1, 1, 2)

	for name, op := range map[string]func(subject, clip polygon.Polygon, opts ...options.GeometryOptionsFunc) (polygon.Polygon, error){
		"intersection": Intersection,
		"union":        Union,
		"xor":          Xor,
	} {
		t.Run(name, func(t *testing.T) {
			ab, err := op(a, b)
			require.NoError(t, err)
			ba, err := op(b, a)
			require.NoError(t, err)
			assert.Equal(t, fingerprint(ab), fingerprint(ba))
		})
	}

	t.Run("difference is not commutative", func(t *testing.T) {
		ab, err := Difference(a, b)
		require.NoError(t, err)
		ba, err := Difference(b, a)
		require.NoError(t, err)
		assert.NotEqual(t, fingerprint(ab), fingerprint(ba))
	})
}

func TestIdempotence(t *testing.T) {
	a := square(0, 0, 1)

	union, err := Union(a, a)
	require.NoError(t, err)
	assert.Equal(t, fingerprint(a), fingerprint(union))

	inter, err := Intersection(a, a)
	require.NoError(t, err)
	assert.Equal(t, fingerprint(a), fingerprint(inter))

	xor, err := Xor(a, a)
	require.NoError(t, err)
	assert.True(t, xor.IsEmpty())

	diff, err := Difference(a, a)
	require.NoError(t, err)
	assert.True(t, diff.IsEmpty())
}

func TestUnionEqualsXorWhenDisjoint(t *testing.T) {
	// Bounding boxes overlap, so the full sweep runs, but the polygons
	// themselves are disjoint.
	subject := polygon.New(polygon.NewContour(
		geom.New(0, 0), geom.New(4, 0), geom.New(0, 4),
	))
	clip := square(3, 3, 1)

	inter, err := Intersection(subject, clip)
	require.NoError(t, err)
	require.True(t, inter.IsEmpty())

	union, err := Union(subject, clip)
	require.NoError(t, err)
	xor, err := Xor(subject, clip)
	require.NoError(t, err)
	assert.Equal(t, fingerprint(union), fingerprint(xor))
}

func TestDeMorgan(t *testing.T) {
	// Within a bounding universe U:
	// U \ (A ∪ B) == (U \ A) ∩ (U \ B)
	u := square(0, 0, 10)
	a := square(1, 1, 3)
	b := square(3, 3, 3)

	ab, err := Union(a, b)
	require.NoError(t, err)
	lhs, err := Difference(u, ab)
	require.NoError(t, err)

	ua, err := Difference(u, a)
	require.NoError(t, err)
	ub, err := Difference(u, b)
	require.NoError(t, err)
	rhs, err := Intersection(ua, ub)
	require.NoError(t, err)

	assert.Equal(t, fingerprint(lhs), fingerprint(rhs))
	assert.InDelta(t, totalArea(lhs), totalArea(rhs), 1e-12)
}

func TestIntersectionAreaBounded(t *testing.T) {
	subject := square(0, 0, 2)
	clip := square(1, 1, 2)
	inter, err := Intersection(subject, clip)
	require.NoError(t, err)
	assert.LessOrEqual(t, totalArea(inter), totalArea(subject))
	assert.LessOrEqual(t, totalArea(inter), totalArea(clip))
}

func TestDeterministicResults(t *testing.T) {
	subject := square(0, 0, 2)
	clip := square(1, 1, 2)

	first, err := Union(subject, clip)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := Union(subject, clip)
		require.NoError(t, err)
		require.Equal(t, first.NumContours(), again.NumContours())
		for ci := 0; ci < first.NumContours(); ci++ {
			assert.Equal(t, ringOf(first.Contour(ci)), ringOf(again.Contour(ci)))
		}
	}
}
