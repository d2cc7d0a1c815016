// Planar Euclidean geometry on points, lines and circles: the calculations
// behind compass and straightedge constructions.
//
// All values are immutable and every function is pure, so everything here is
// safe for concurrent use. Operations that are undefined on some input return
// one of the sentinel errors in errors.go rather than NaN or infinity.
package geom

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"
)

// A Point is a location in the plane, but it doubles as a free vector. All of
// the vector arithmetic below treats it that way.
type Point struct {
	X float64
	Y float64
}

// A Line in standard form: A*x + B*y + C = 0. A and B are never both zero for
// a line built by one of the constructors. Coefficient triples that are scalar
// multiples of each other describe the same line, so compare lines with Equal,
// never with ==.
type Line struct {
	A, B, C float64
}

// A Circle by center and radius. The radius is strictly positive for a circle
// built by one of the constructors.
type Circle struct {
	O Point
	R float64
}

// Ordered triple of points. Nothing enforces that the points are not
// collinear, but most triangle centers are undefined if they are.
type Triangle struct {
	A, B, C Point
}

// Curve is the image of a line or circle under inversion, which can be
// either. It is only ever implemented by Line and Circle, so callers type
// switch on it.
type Curve interface {
	IsThrough(p Point) bool
	String() string
	curve()
}

func (Line) curve()   {}
func (Circle) curve() {}

func NewPoint(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Scalar multiplication.
func (p Point) Scale(k float64) Point {
	return Point{p.X * k, p.Y * k}
}

// Scalar division. Dividing by zero is the caller's problem.
func (p Point) Div(k float64) Point {
	return Point{p.X / k, p.Y / k}
}

func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// The z component of the 3D cross product, treating both as vectors.
func (p Point) Cross(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

func (p Point) NormSq() float64 {
	return p.X*p.X + p.Y*p.Y
}

func (p Point) Norm() float64 {
	return r2.Norm(p.vec())
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// The normal vector (A, B) of the line.
func (l Line) Normal() Point {
	return Point{l.A, l.B}
}

// A direction vector of the line, which is the normal rotated a quarter turn
// clockwise.
func (l Line) Direction() Point {
	return Point{l.B, -l.A}
}

func (l Line) String() string {
	return fmt.Sprintf("%gx + %gy + %g = 0", l.A, l.B, l.C)
}

func (c Circle) String() string {
	return fmt.Sprintf("circle(%v, %g)", c.O, c.R)
}

// Vertex picks one of the three vertices of a triangle.
type Vertex int

const (
	VertexA Vertex = iota
	VertexB
	VertexC
)

func (v Vertex) String() string {
	switch v {
	case VertexA:
		return "A"
	case VertexB:
		return "B"
	case VertexC:
		return "C"
	}
	return fmt.Sprintf("Vertex(%d)", int(v))
}

// Rotate the triangle's labels so that v becomes A, keeping the orientation.
// Formulas written for "the vertex A" can then serve any vertex.
func (t Triangle) RotateTo(v Vertex) Triangle {
	switch v {
	case VertexB:
		return Triangle{t.B, t.C, t.A}
	case VertexC:
		return Triangle{t.C, t.A, t.B}
	}
	return t
}

// Side lengths opposite each vertex: a = |BC|, b = |CA|, c = |AB|.
func (t Triangle) Sides() (a, b, c float64) {
	return t.B.Distance(t.C), t.C.Distance(t.A), t.A.Distance(t.B)
}

// Squared side lengths, in the same order as Sides.
func (t Triangle) SidesSq() (a2, b2, c2 float64) {
	return t.B.DistanceSq(t.C), t.C.DistanceSq(t.A), t.A.DistanceSq(t.B)
}

func (t Triangle) String() string {
	return fmt.Sprintf("triangle(%v, %v, %v)", t.A, t.B, t.C)
}
