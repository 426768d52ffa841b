// Package geom defines the geometric primitives the polyclip library is built
// upon: the Vertex and Segment types, axis-aligned bounding rectangles, and
// the segment intersection predicate.
//
// # Overview
//
// The Vertex type represents a two-dimensional point with floating-point
// coordinates and provides the fundamental vector operations the clipping
// engine needs: component-wise min/max, dot and 2D cross products, and
// distance measurements. Segments are ordered vertex pairs with cached
// lexicographic endpoints. Rect is the axis-aligned bounding rectangle used
// both for trivial rejection and for bounding numerical drift in the
// intersection predicate.
//
// # Coordinate System
//
// This library assumes a standard Cartesian coordinate system where the
// x-axis increases to the right and the y-axis increases upward. All
// orientation conventions (clockwise, counterclockwise) are relative to this
// system.
//
// # Precision Control with Epsilon
//
// Operations that are sensitive to floating-point error, in particular
// [FindIntersection], accept functional options from the options package so
// callers can tune the snapping tolerance. Plain vertex equality is exact by
// default; the sweep-line comparators depend on that.
package geom
