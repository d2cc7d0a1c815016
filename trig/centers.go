// Triangle centers, built by composing the constructions in geom.
//
// Every center except the centroid needs a proper triangle, so the vertices
// are checked first: coincident vertices give geom.ErrOverlappingPoint and
// collinear ones give geom.ErrCollinearPoints. Errors are wrapped with the
// name of the center, so use errors.Is to get at the sentinel.
package trig

import (
	"github.com/osuushi/compass/geom"
	"github.com/pkg/errors"
)

type Triangle = geom.Triangle

func validate(t Triangle) error {
	if t.A.Equal(t.B) || t.B.Equal(t.C) || t.C.Equal(t.A) {
		return geom.ErrOverlappingPoint
	}
	if geom.Collinear(t.A, t.B, t.C) {
		return geom.ErrCollinearPoints
	}
	return nil
}

// Intersect two lines that are known to meet because the triangle is proper.
func meet(name string, l, k geom.Line) (geom.Point, error) {
	p, err := geom.InterLines(l, k)
	if err != nil {
		return geom.Point{}, errors.Wrap(err, name)
	}
	return p, nil
}

// The point with barycentric coordinates (x, y, z) with respect to the
// triangle. The weights need not be normalized, but if they sum to zero the
// point is at infinity.
func FromBarycentric(t Triangle, x, y, z float64) (geom.Point, error) {
	s := x + y + z
	if geom.Equal(s, 0) {
		return geom.Point{}, errors.Wrap(geom.ErrZeroCoefficient, "barycentric")
	}
	return t.A.Scale(x).Add(t.B.Scale(y)).Add(t.C.Scale(z)).Div(s), nil
}

// The intersection of the perpendicular bisectors.
func Circumcenter(t Triangle) (geom.Point, error) {
	if err := validate(t); err != nil {
		return geom.Point{}, errors.Wrap(err, "circumcenter")
	}
	o, err := t.Circumcenter()
	return o, errors.Wrap(err, "circumcenter")
}

func Circumcircle(t Triangle) (geom.Circle, error) {
	o, err := Circumcenter(t)
	if err != nil {
		return geom.Circle{}, err
	}
	return geom.Circle{O: o, R: o.Distance(t.A)}, nil
}

// The intersection of the interior angle bisectors.
func Incenter(t Triangle) (geom.Point, error) {
	if err := validate(t); err != nil {
		return geom.Point{}, errors.Wrap(err, "incenter")
	}
	atB, _, err := geom.AngleBisect3P(t.A, t.B, t.C)
	if err != nil {
		return geom.Point{}, errors.Wrap(err, "incenter")
	}
	atC, _, err := geom.AngleBisect3P(t.A, t.C, t.B)
	if err != nil {
		return geom.Point{}, errors.Wrap(err, "incenter")
	}
	return meet("incenter", atB, atC)
}

func Incircle(t Triangle) (geom.Circle, error) {
	i, err := Incenter(t)
	if err != nil {
		return geom.Circle{}, err
	}
	ab, err := geom.LineFrom2P(t.A, t.B)
	if err != nil {
		return geom.Circle{}, errors.Wrap(err, "incircle")
	}
	return geom.Circle{O: i, R: i.DistanceToLine(ab)}, nil
}

// The excenter opposite v, i.e. the one inside the angle at v. It is where the
// interior bisector at v meets the exterior bisector at the next vertex.
func Excenter(t Triangle, v geom.Vertex) (geom.Point, error) {
	name := "excenter " + v.String()
	if err := validate(t); err != nil {
		return geom.Point{}, errors.Wrap(err, name)
	}
	t = t.RotateTo(v)
	interior, _, err := geom.AngleBisect3P(t.B, t.A, t.C)
	if err != nil {
		return geom.Point{}, errors.Wrap(err, name)
	}
	_, exterior, err := geom.AngleBisect3P(t.A, t.B, t.C)
	if err != nil {
		return geom.Point{}, errors.Wrap(err, name)
	}
	return meet(name, interior, exterior)
}

func Excircle(t Triangle, v geom.Vertex) (geom.Circle, error) {
	e, err := Excenter(t, v)
	if err != nil {
		return geom.Circle{}, err
	}
	t = t.RotateTo(v)
	bc, err := geom.LineFrom2P(t.B, t.C)
	if err != nil {
		return geom.Circle{}, errors.Wrap(err, "excircle")
	}
	return geom.Circle{O: e, R: e.DistanceToLine(bc)}, nil
}

// The intersection of the altitudes.
func Orthocenter(t Triangle) (geom.Point, error) {
	if err := validate(t); err != nil {
		return geom.Point{}, errors.Wrap(err, "orthocenter")
	}
	bc, err := geom.LineFrom2P(t.B, t.C)
	if err != nil {
		return geom.Point{}, errors.Wrap(err, "orthocenter")
	}
	ac, err := geom.LineFrom2P(t.A, t.C)
	if err != nil {
		return geom.Point{}, errors.Wrap(err, "orthocenter")
	}
	return meet("orthocenter", geom.Perp(t.A, bc), geom.Perp(t.B, ac))
}

// The mean of the vertices. This is defined even for a degenerate triangle.
func Centroid(t Triangle) geom.Point {
	return geom.Center(t.A, t.B, t.C)
}

// The circumcenter of the medial triangle.
func NinePointCenter(t Triangle) (geom.Point, error) {
	if err := validate(t); err != nil {
		return geom.Point{}, errors.Wrap(err, "nine-point center")
	}
	medial := Triangle{
		A: geom.Midpoint(t.B, t.C),
		B: geom.Midpoint(t.C, t.A),
		C: geom.Midpoint(t.A, t.B),
	}
	n, err := medial.Circumcenter()
	return n, errors.Wrap(err, "nine-point center")
}

// Barycentric a² : b² : c², weighting each vertex by the square of the
// opposite side.
func SymmedianPoint(t Triangle) (geom.Point, error) {
	if err := validate(t); err != nil {
		return geom.Point{}, errors.Wrap(err, "symmedian point")
	}
	a2, b2, c2 := t.SidesSq()
	k, err := FromBarycentric(t, a2, b2, c2)
	return k, errors.Wrap(err, "symmedian point")
}

// Barycentric s-a : s-b : s-c, where s is the semiperimeter. This is the
// point where the cevians to the excircles' touch points meet (often called
// the Nagel point). For the concurrence point of the cevians to the
// incircle's touch points, see ContactCevianPoint.
func GergonnePoint(t Triangle) (geom.Point, error) {
	if err := validate(t); err != nil {
		return geom.Point{}, errors.Wrap(err, "gergonne point")
	}
	x, y, z := semiperimeterExcess(t)
	g, err := FromBarycentric(t, x, y, z)
	return g, errors.Wrap(err, "gergonne point")
}

// The point where the cevians to the incircle's touch points meet. Its
// barycentrics are 1/(s-a) : 1/(s-b) : 1/(s-c); multiplying through by the
// product of the denominators avoids dividing.
func ContactCevianPoint(t Triangle) (geom.Point, error) {
	if err := validate(t); err != nil {
		return geom.Point{}, errors.Wrap(err, "contact cevian point")
	}
	x, y, z := semiperimeterExcess(t)
	p, err := FromBarycentric(t, y*z, z*x, x*y)
	return p, errors.Wrap(err, "contact cevian point")
}

// s-a, s-b and s-c, where s is the semiperimeter.
func semiperimeterExcess(t Triangle) (float64, float64, float64) {
	a, b, c := t.Sides()
	s := (a + b + c) / 2
	return s - a, s - b, s - c
}

// Reflect the cevians through p in the angle bisectors at B and C, and
// intersect the reflections. A point on the circumcircle has its conjugate at
// infinity, which is reported as geom.ErrInfinity. The vertices are on the
// circumcircle too, so they report the same.
func IsogonalConjugate(t Triangle, p geom.Point) (geom.Point, error) {
	if err := validate(t); err != nil {
		return geom.Point{}, errors.Wrap(err, "isogonal conjugate")
	}
	if p.Equal(t.A) || p.Equal(t.B) || p.Equal(t.C) {
		return geom.Point{}, errors.Wrap(geom.ErrInfinity, "isogonal conjugate")
	}
	atB, _, err := geom.AngleBisect3P(t.A, t.B, t.C)
	if err != nil {
		return geom.Point{}, errors.Wrap(err, "isogonal conjugate")
	}
	atC, _, err := geom.AngleBisect3P(t.A, t.C, t.B)
	if err != nil {
		return geom.Point{}, errors.Wrap(err, "isogonal conjugate")
	}
	fromB, err := geom.LineFrom2P(t.B, p.ReflectInLine(atB))
	if err != nil {
		return geom.Point{}, errors.Wrap(err, "isogonal conjugate")
	}
	fromC, err := geom.LineFrom2P(t.C, p.ReflectInLine(atC))
	if err != nil {
		return geom.Point{}, errors.Wrap(err, "isogonal conjugate")
	}
	q, err := geom.InterLines(fromB, fromC)
	if errors.Is(err, geom.ErrNoIntersection) {
		err = geom.ErrInfinity
	}
	return q, errors.Wrap(err, "isogonal conjugate")
}
