// Straightedge and compass geometry for Go.
//
// This package collects the value types of the geom package and the triangle
// centers of the trig package behind one import. Points, lines and circles are
// plain values; every construction that can fail returns an error, which is
// one of the sentinels below (possibly wrapped, so compare with errors.Is).
package compass

import (
	"github.com/osuushi/compass/geom"
	"github.com/osuushi/compass/trig"
)

type Point = geom.Point
type Line = geom.Line
type Circle = geom.Circle
type Triangle = geom.Triangle
type Curve = geom.Curve
type Vertex = geom.Vertex
type Report = trig.Report

var (
	ErrOverlappingPoint  = geom.ErrOverlappingPoint
	ErrNonpositiveRadius = geom.ErrNonpositiveRadius
	ErrCollinearPoints   = geom.ErrCollinearPoints
	ErrNoIntersection    = geom.ErrNoIntersection
	ErrZeroCoefficient   = geom.ErrZeroCoefficient
	ErrInfinity          = geom.ErrInfinity
)

// Compute every center of the triangle with the given vertices.
//
// The triangle must be proper: coincident vertices give ErrOverlappingPoint
// and collinear ones give ErrCollinearPoints. See the trig package for the
// individual centers.
func Centers(a, b, c Point) (Report, error) {
	return trig.Centers(Triangle{A: a, B: b, C: c})
}
