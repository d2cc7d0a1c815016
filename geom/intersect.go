package geom

import "math"

// Intersections come in two flavors. The plain one solves from scratch. The
// Common one is given a point that is already known to lie on both curves, and
// recovers the other by Vieta's formulas instead of taking a square root.
//
// The common point is NOT validated. If it isn't really on both curves, the
// result is silently wrong. Only pass points that are common by construction.

// Intersect two lines by Cramer's rule. Parallel lines (including coincident
// ones) have no intersection.
func InterLines(l, k Line) (Point, error) {
	if IsParallel(l, k) {
		return Point{}, ErrNoIntersection
	}
	d := l.A*k.B - k.A*l.B
	return Point{
		X: (l.B*k.C - k.B*l.C) / d,
		Y: (l.C*k.A - k.C*l.A) / d,
	}, nil
}

// Two lines meet in at most one point, so the common point is the answer.
func InterLinesCommon(l, k Line, common Point) Point {
	return common
}

// The quadratic obtained by substituting the line into the circle. When
// solveY is set, the unknown is y and x is recovered from the line;
// otherwise the roles swap. We solve for the coordinate whose line
// coefficient is larger in magnitude, so the back substitution never divides
// by something tiny.
type lineCircleQuadratic struct {
	l          Line
	solveY     bool
	qa, qb, qc float64
}

func newLineCircleQuadratic(l Line, c Circle) lineCircleQuadratic {
	a, b, k := l.A, l.B, l.C
	o, r := c.O, c.R
	q := lineCircleQuadratic{l: l, solveY: math.Abs(a) >= math.Abs(b)}
	q.qa = a*a + b*b
	if q.solveY {
		m := a*o.X + k
		q.qb = 2 * (m*b - a*a*o.Y)
		q.qc = a*a*(o.Y*o.Y-r*r) + m*m
	} else {
		m := b*o.Y + k
		q.qb = 2 * (m*a - b*b*o.X)
		q.qc = b*b*(o.X*o.X-r*r) + m*m
	}
	return q
}

// Map a root of the quadratic back to a point on the line.
func (q lineCircleQuadratic) point(t float64) Point {
	l := q.l
	if q.solveY {
		return Point{X: -(l.B*t + l.C) / l.A, Y: t}
	}
	return Point{X: t, Y: -(l.A*t + l.C) / l.B}
}

// The coordinate the quadratic is solved for.
func (q lineCircleQuadratic) coord(p Point) float64 {
	if q.solveY {
		return p.Y
	}
	return p.X
}

// Intersect a line and a circle. A tangent line gives the same point twice.
// The order of the two points is unspecified.
func InterLineCircle(l Line, c Circle) (Point, Point, error) {
	q := newLineCircleQuadratic(l, c)
	disc := q.qb*q.qb - 4*q.qa*q.qc
	if disc < 0 {
		return Point{}, Point{}, ErrNoIntersection
	}
	disc = math.Sqrt(disc)
	t1 := (-q.qb + disc) / q.qa / 2
	t2 := (-q.qb - disc) / q.qa / 2
	return q.point(t1), q.point(t2), nil
}

// Intersect a line and a circle that are known to share common. Returns the
// other point first, then common.
func InterLineCircleCommon(l Line, c Circle, common Point) (Point, Point) {
	q := newLineCircleQuadratic(l, c)
	t := -q.qb/q.qa - q.coord(common)
	return q.point(t), common
}

// The radical axis of two circles: subtracting their expanded equations
// cancels the quadratic terms and leaves a line. Concentric circles have no
// radical axis.
func RadicalAxis(c, d Circle) (Line, error) {
	o, p := c.O, d.O
	f1 := o.X*o.X + o.Y*o.Y - c.R*c.R
	f2 := p.X*p.X + p.Y*p.Y - d.R*d.R
	return NewLine(
		2*(p.X-o.X),
		2*(p.Y-o.Y),
		f1-f2,
	)
}

// Intersect two circles through their radical axis. Concentric circles never
// meet in a well defined pair of points, so they give ErrNoIntersection.
func InterCircles(c, d Circle) (Point, Point, error) {
	axis, err := RadicalAxis(c, d)
	if err != nil {
		return Point{}, Point{}, ErrNoIntersection
	}
	return InterLineCircle(axis, d)
}

// Intersect two circles known to share common. Returns the other point first,
// then common.
func InterCirclesCommon(c, d Circle, common Point) (Point, Point, error) {
	axis, err := RadicalAxis(c, d)
	if err != nil {
		return Point{}, Point{}, ErrNoIntersection
	}
	p, q := InterLineCircleCommon(axis, d, common)
	return p, q, nil
}
