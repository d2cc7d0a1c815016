package geom

import "github.com/pkg/errors"

// Everything that can go wrong in a calculation. These are deterministic: an
// operation that fails on some input will always fail on that input, so there
// is no point in retrying.
//
// The calculation functions in this package return the bare sentinel. Code
// composing them may wrap it for context, so compare with errors.Is.
var (
	// Two points overlap when they shouldn't.
	ErrOverlappingPoint = errors.New("overlapping points")
	// A circle was defined with a nonpositive radius.
	ErrNonpositiveRadius = errors.New("nonpositive radius")
	// Three points are collinear when they shouldn't be.
	ErrCollinearPoints = errors.New("collinear points")
	// Two curves that were required to meet do not.
	ErrNoIntersection = errors.New("no intersection")
	// All coefficients of a line (or of a weighted combination) are zero.
	ErrZeroCoefficient = errors.New("zero coefficient")
	// The true result lies at infinity.
	ErrInfinity = errors.New("result at infinity")
)
