package geom

import "math"

func Midpoint(a, b Point) Point {
	return a.Add(b).Div(2)
}

// The arithmetic mean of a set of points, e.g. the vertex centroid of a
// polygon. An empty set gives the origin.
func Center(points ...Point) Point {
	if len(points) == 0 {
		return Origin
	}
	var sum Point
	for _, p := range points {
		sum = sum.Add(p)
	}
	return sum.Div(float64(len(points)))
}

// The line through p parallel to l.
func Parallel(p Point, l Line) Line {
	return LineFromSlopeAndPoint(l.A, l.B, p)
}

// The line through p perpendicular to l.
func Perp(p Point, l Line) Line {
	return Line{
		A: -l.B,
		B: l.A,
		C: l.B*p.X - l.A*p.Y,
	}
}

// The foot of the perpendicular from p to l.
func Projection(p Point, l Line) Point {
	a, b, c := l.A, l.B, l.C
	n := a*a + b*b
	return Point{
		X: (b*b*p.X - a*c - a*b*p.Y) / n,
		Y: (a*a*p.Y - b*c - a*b*p.X) / n,
	}
}

// The perpendicular bisector of segment AB.
func PerpBisect(a, b Point) (Line, error) {
	ab, err := LineFrom2P(a, b)
	if err != nil {
		return Line{}, err
	}
	return Perp(Midpoint(a, b), ab), nil
}

// The two angle bisectors of two lines. Each line is normalized, and the sum
// and difference of the normalized triples are the bisectors.
//
// Which bisector comes first depends on the orientation of the lines' normals.
// For lines built by LineFrom2P from a common vertex outward (as AngleBisect3P
// does) the sum is the interior bisector and comes first.
func AngleBisect(l, k Line) (Line, Line) {
	m := math.Sqrt(l.A*l.A + l.B*l.B)
	n := math.Sqrt(k.A*k.A + k.B*k.B)
	a0, b0, c0 := l.A/m, l.B/m, l.C/m
	a1, b1, c1 := k.A/n, k.B/n, k.C/n
	return Line{a0 + a1, b0 + b1, c0 + c1}, Line{a0 - a1, b0 - b1, c0 - c1}
}

// The bisectors of angle AOB, interior first, exterior second.
func AngleBisect3P(a, o, b Point) (Line, Line, error) {
	oa, err := LineFrom2P(o, a)
	if err != nil {
		return Line{}, Line{}, err
	}
	ob, err := LineFrom2P(o, b)
	if err != nil {
		return Line{}, Line{}, err
	}
	interior, exterior := AngleBisect(oa, ob)
	return interior, exterior, nil
}

// The polar line of p with respect to c. The center of the circle has no
// polar line (it would be the line at infinity).
func PolarLine(p Point, c Circle) (Line, error) {
	o := c.O
	return NewLine(
		p.X-o.X,
		p.Y-o.Y,
		o.X*(o.X-p.X)+o.Y*(o.Y-p.Y)-c.R*c.R,
	)
}

// The tangents to c through p. A point on the circle has a single tangent,
// which is returned twice. A point strictly inside has none, which surfaces as
// ErrNoIntersection.
func Tangent(p Point, c Circle) (Line, Line, error) {
	if c.IsThrough(p) {
		radius, err := LineFrom2P(p, c.O)
		if err != nil {
			return Line{}, Line{}, err
		}
		l := Perp(p, radius)
		return l, l, nil
	}
	polar, err := PolarLine(p, c)
	if err != nil {
		return Line{}, Line{}, err
	}
	t1, t2, err := InterLineCircle(polar, c)
	if err != nil {
		return Line{}, Line{}, err
	}
	l1, err := LineFrom2P(p, t1)
	if err != nil {
		return Line{}, Line{}, err
	}
	l2, err := LineFrom2P(p, t2)
	if err != nil {
		return Line{}, Line{}, err
	}
	return l1, l2, nil
}

// The external and internal homothety centers of two circles, in that order.
// The external center maps c onto d with a positive ratio and lies outside the
// segment joining the centers; the internal one uses a negative ratio and lies
// between them. With equal radii the external center is at infinity, and the
// whole pair is reported as ErrInfinity.
func HomothetyCenter(c, d Circle) (Point, Point, error) {
	r1, r2 := c.R, d.R
	if Equal(r1, r2) {
		return Point{}, Point{}, ErrInfinity
	}
	external := c.O.Scale(r2).Sub(d.O.Scale(r1)).Div(r2 - r1)
	internal := c.O.Scale(r2).Add(d.O.Scale(r1)).Div(r1 + r2)
	return external, internal, nil
}

// The two outer common tangents of two circles.
func OuterCommonTangent(c, d Circle) (Line, Line, error) {
	external, _, err := HomothetyCenter(c, d)
	if err != nil {
		return Line{}, Line{}, err
	}
	return Tangent(external, c)
}

// The two inner common tangents of two circles. Overlapping circles have none.
func InnerCommonTangent(c, d Circle) (Line, Line, error) {
	_, internal, err := HomothetyCenter(c, d)
	if err != nil {
		return Line{}, Line{}, err
	}
	return Tangent(internal, c)
}

// The point on c at polar angle theta, measured counterclockwise from the
// positive x direction.
func OnCircle(c Circle, theta float64) Point {
	return Point{
		X: c.O.X + c.R*math.Cos(theta),
		Y: c.O.Y + c.R*math.Sin(theta),
	}
}

// The point dividing segment AB at ratio r: r = 0 gives A, r = 1 gives B, and
// values outside [0, 1] extend the segment.
func OnSegment(a, b Point, r float64) Point {
	return a.Scale(1 - r).Add(b.Scale(r))
}
