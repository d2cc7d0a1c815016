package geom

// Construct a line from its coefficients: a*x + b*y + c = 0. The coefficients
// of x and y can't both be zero.
func NewLine(a, b, c float64) (Line, error) {
	if a == 0 && b == 0 {
		return Line{}, ErrZeroCoefficient
	}
	return Line{a, b, c}, nil
}

// Construct a line from the coefficients of x and y and a point the line
// passes through. This can't fail unless the caller passes a zero (a, b)
// pair, which is never the case when the pair comes from an existing line.
func LineFromSlopeAndPoint(a, b float64, p Point) Line {
	return Line{a, b, -a*p.X - b*p.Y}
}

// Construct the line through two points, which must be distinct.
func LineFrom2P(p, q Point) (Line, error) {
	if p.Equal(q) {
		return Line{}, ErrOverlappingPoint
	}
	return Line{
		A: p.Y - q.Y,
		B: q.X - p.X,
		C: p.X*q.Y - p.Y*q.X,
	}, nil
}

func NewCircle(o Point, r float64) (Circle, error) {
	if r <= 0 {
		return Circle{}, ErrNonpositiveRadius
	}
	return Circle{o, r}, nil
}

// Construct a circle from its center and a point on its circumference.
func CircleFromCenterPoint(o, p Point) (Circle, error) {
	if o.Equal(p) {
		return Circle{}, ErrOverlappingPoint
	}
	return Circle{o, o.Distance(p)}, nil
}

// Construct the circle through three points. Any two points overlapping gives
// ErrOverlappingPoint. If the points are collinear, the perpendicular bisectors
// never meet and the result is ErrCollinearPoints.
func CircleFrom3P(a, b, c Point) (Circle, error) {
	o, err := circumcenter(a, b, c)
	if err != nil {
		return Circle{}, err
	}
	return Circle{o, o.Distance(a)}, nil
}

func circumcenter(a, b, c Point) (Point, error) {
	if a.Equal(c) {
		// The bisectors of AB and BC would coincide rather than fail
		return Point{}, ErrOverlappingPoint
	}
	ab, err := PerpBisect(a, b)
	if err != nil {
		return Point{}, err
	}
	bc, err := PerpBisect(b, c)
	if err != nil {
		return Point{}, err
	}
	o, err := InterLines(ab, bc)
	if err == ErrNoIntersection {
		return Point{}, ErrCollinearPoints
	}
	return o, err
}

// Circumcenter of the three points of a triangle. The trig package wraps this
// with context; it lives here because CircleFrom3P needs it.
func (t Triangle) Circumcenter() (Point, error) {
	return circumcenter(t.A, t.B, t.C)
}
