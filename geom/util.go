package geom

import "math"

// To compensate for imprecision in floats, equality is tolerance based
// everywhere in this package.
const Epsilon = 1e-10

const (
	Deg   = math.Pi / 180
	Round = 2 * math.Pi
)

var Origin = Point{0, 0}

// Compare two floats with an explicit tolerance. The difference must be
// strictly below eps.
func ApproxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

// Compare two floats with the default tolerance.
func Equal(a, b float64) bool {
	return ApproxEqual(a, b, Epsilon)
}

func (p Point) ApproxEqual(q Point, eps float64) bool {
	return ApproxEqual(p.X, q.X, eps) && ApproxEqual(p.Y, q.Y, eps)
}

func (p Point) Equal(q Point) bool {
	return p.ApproxEqual(q, Epsilon)
}

// Two lines are equal when their coefficient triples are proportional. Being
// parallel takes care of (A, B); the cross checks against C take care of the
// offset without dividing by anything.
func (l Line) ApproxEqual(k Line, eps float64) bool {
	return ApproxEqual(l.A*k.B, l.B*k.A, eps) &&
		ApproxEqual(l.A*k.C, l.C*k.A, eps) &&
		ApproxEqual(l.B*k.C, l.C*k.B, eps)
}

func (l Line) Equal(k Line) bool {
	return l.ApproxEqual(k, Epsilon)
}

func (c Circle) ApproxEqual(d Circle, eps float64) bool {
	return c.O.ApproxEqual(d.O, eps) && ApproxEqual(c.R, d.R, eps)
}

func (c Circle) Equal(d Circle) bool {
	return c.ApproxEqual(d, Epsilon)
}

// Clamp a cosine into [-1, 1] so that rounding can't turn math.Acos into NaN.
func clampCos(x float64) float64 {
	return math.Max(-1, math.Min(1, x))
}
