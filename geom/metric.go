package geom

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Two lines are parallel when their normals are, within tolerance. Coincident
// lines count as parallel.
func IsParallel(l, k Line) bool {
	return Equal(l.A*k.B, l.B*k.A)
}

// Whether three points lie on one line.
func Collinear(a, b, c Point) bool {
	return Equal(b.Sub(a).Cross(c.Sub(a)), 0)
}

func (l Line) IsThrough(p Point) bool {
	return Equal(l.A*p.X+l.B*p.Y+l.C, 0)
}

func (c Circle) IsThrough(p Point) bool {
	return Equal(c.R*c.R, c.O.DistanceSq(p))
}

func (p Point) DistanceSq(q Point) float64 {
	return r2.Norm2(r2.Sub(p.vec(), q.vec()))
}

func (p Point) Distance(q Point) float64 {
	return math.Sqrt(p.DistanceSq(q))
}

// Squared distance from the point to the line.
func (p Point) DistanceSqToLine(l Line) float64 {
	z := l.A*p.X + l.B*p.Y + l.C
	return z * z / l.Normal().NormSq()
}

func (p Point) DistanceToLine(l Line) float64 {
	return math.Sqrt(p.DistanceSqToLine(l))
}

// Squared distance between two lines, which is zero unless they are parallel.
func (l Line) DistanceSqToLine(k Line) float64 {
	if !IsParallel(l, k) {
		return 0
	}
	// Bring k to the same normal as l before comparing offsets. The normals are
	// parallel, so the ratio is the same for both components.
	n := l.Normal().NormSq()
	ratio := l.Normal().Dot(k.Normal()) / k.Normal().NormSq()
	z := l.C - k.C*ratio
	return z * z / n
}

func (l Line) DistanceToLine(k Line) float64 {
	return math.Sqrt(l.DistanceSqToLine(k))
}

// The unsigned angle AOB, in [0, pi]. The rays are undefined if either point
// overlaps the vertex.
func Angle(a, o, b Point) (float64, error) {
	if a.Equal(o) || b.Equal(o) {
		return 0, ErrOverlappingPoint
	}
	u := r2.Sub(a.vec(), o.vec())
	v := r2.Sub(b.vec(), o.vec())
	cos := r2.Dot(u, v) / math.Sqrt(r2.Norm2(u)*r2.Norm2(v))
	return math.Acos(clampCos(cos)), nil
}

// The acute angle between two lines, in [0, pi/2].
func AngleBetween(l, k Line) float64 {
	n, m := l.Normal(), k.Normal()
	cos := n.Dot(m) / math.Sqrt(n.NormSq()*m.NormSq())
	return math.Acos(clampCos(math.Abs(cos)))
}

func (p Point) vec() r2.Vec {
	return r2.Vec{X: p.X, Y: p.Y}
}

func fromVec(v r2.Vec) Point {
	return Point{v.X, v.Y}
}
