// Package polyclip computes Boolean operations between two planar polygons
// using the Martínez–Rueda–Ogayar–Jiménez sweep-line algorithm.
//
// Given a subject and a clipping polygon — each possibly multi-contour,
// possibly with holes, possibly self-touching at isolated points — the four
// operations return a new polygon whose contours carry hole-nesting
// information: nesting depth, parent contour index for holes, and child hole
// indices for outer contours. External contours wind counterclockwise and
// odd-depth holes clockwise.
//
// # Coordinate System
//
// This library assumes a standard Cartesian coordinate system where the
// x-axis increases to the right and the y-axis increases upward. All
// orientation conventions are relative to this system.
//
// # Precision
//
// Coordinates are double precision and the algorithm is not exact:
// near-degenerate inputs can produce incorrect geometry rather than an
// error. The snapping tolerance of the intersection predicate can be tuned
// per call with [options.WithEpsilon].
//
// # Acknowledgments
//
// The algorithm is described in Martínez, Rueda, Feito: "A new algorithm
// for computing Boolean operations on polygons" and its follow-up papers.
package polyclip

import (
	"github.com/dkolbly/polyclip/options"
	"github.com/dkolbly/polyclip/polygon"
	"github.com/dkolbly/polyclip/sweep"
)

// Intersection returns the region covered by both the subject and the
// clipping polygon.
func Intersection(subject, clip polygon.Polygon, opts ...options.GeometryOptionsFunc) (polygon.Polygon, error) {
	return sweep.Run(subject, clip, sweep.Intersection, opts...)
}

// Union returns the region covered by the subject or the clipping polygon
// or both.
func Union(subject, clip polygon.Polygon, opts ...options.GeometryOptionsFunc) (polygon.Polygon, error) {
	return sweep.Run(subject, clip, sweep.Union, opts...)
}

// Difference returns the region covered by the subject polygon but not the
// clipping polygon.
func Difference(subject, clip polygon.Polygon, opts ...options.GeometryOptionsFunc) (polygon.Polygon, error) {
	return sweep.Run(subject, clip, sweep.Difference, opts...)
}

// Xor returns the region covered by exactly one of the subject and clipping
// polygons.
func Xor(subject, clip polygon.Polygon, opts ...options.GeometryOptionsFunc) (polygon.Polygon, error) {
	return sweep.Run(subject, clip, sweep.Xor, opts...)
}
