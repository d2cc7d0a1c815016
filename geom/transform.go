package geom

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Reflection, rotation and scaling are total: none of them can fail on valid
// input. Inversion lives in invert.go since it can.

func (p Point) ReflectInPoint(o Point) Point {
	return o.Scale(2).Sub(p)
}

func (p Point) ReflectInLine(l Line) Point {
	a, b, c := l.A, l.B, l.C
	m := b*b + a*a
	n := b*b - a*a
	return Point{
		X: (p.X*n - 2*a*(b*p.Y+c)) / m,
		Y: (-p.Y*n - 2*b*(a*p.X+c)) / m,
	}
}

func (l Line) ReflectInPoint(o Point) Line {
	return Line{
		A: l.A,
		B: l.B,
		C: -l.C - 2*(l.A*o.X+l.B*o.Y),
	}
}

func (l Line) ReflectInLine(k Line) Line {
	if IsParallel(l, k) {
		// Scale k so its normal matches l, then the offset reflects linearly
		ratio := l.Normal().Dot(k.Normal()) / k.Normal().NormSq()
		return Line{l.A, l.B, 2*k.C*ratio - l.C}
	}
	// Reflect l's normal across k. The pivot is where the lines cross, which
	// exists since they aren't parallel.
	a, b := k.A, k.B
	c, d := l.A, l.B
	a0 := a*a*c + 2*a*b*d - b*b*c
	b0 := 2*a*b*c + (b*b-a*a)*d
	pivot, _ := InterLines(l, k)
	return LineFromSlopeAndPoint(a0, b0, pivot)
}

func (c Circle) ReflectInPoint(o Point) Circle {
	return Circle{c.O.ReflectInPoint(o), c.R}
}

func (c Circle) ReflectInLine(l Line) Circle {
	return Circle{c.O.ReflectInLine(l), c.R}
}

// Rotate counterclockwise around o by theta radians.
func (p Point) Rotate(o Point, theta float64) Point {
	return fromVec(r2.Rotate(p.vec(), theta, o.vec()))
}

// Rotate counterclockwise around o by theta radians. The normal turns with the
// line, and the foot of the perpendicular from o stays on it.
func (l Line) Rotate(o Point, theta float64) Line {
	sin, cos := math.Sincos(theta)
	a := l.A*cos - l.B*sin
	b := l.A*sin + l.B*cos
	foot := Projection(o, l).Rotate(o, theta)
	return LineFromSlopeAndPoint(a, b, foot)
}

// Rotate counterclockwise around o by theta radians. Only the center moves.
func (c Circle) Rotate(o Point, theta float64) Circle {
	return Circle{c.O.Rotate(o, theta), c.R}
}

// Homothety with center o and ratio r. A negative ratio also reflects through
// o. A zero ratio collapses everything onto o; the result is then degenerate
// and it is up to the caller not to ask for that.
func (p Point) ScaleAbout(o Point, r float64) Point {
	return p.Scale(r).Sub(o.Scale(r - 1))
}

func (l Line) ScaleAbout(o Point, r float64) Line {
	return Line{
		A: l.A,
		B: l.B,
		C: (l.A*o.X+l.B*o.Y)*(r-1) + l.C*r,
	}
}

// The image of a circle under a homothety is a circle of radius |r| times the
// original. A negative ratio flips the circle through o but a radius is a
// length, so it stays positive.
func (c Circle) ScaleAbout(o Point, r float64) Circle {
	return Circle{c.O.ScaleAbout(o, r), c.R * math.Abs(r)}
}
