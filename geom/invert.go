package geom

import "math"

// Circular inversion with center o and power p: a point at distance d from o
// maps to the point at distance p/d along the same ray. A negative power also
// reflects through o. The power can't be zero, since then every point would
// collapse onto o.

// Invert a point. The center itself has no image.
func (p Point) Invert(o Point, power float64) (Point, error) {
	if power == 0 {
		return Point{}, ErrZeroCoefficient
	}
	if p.Equal(o) {
		return Point{}, ErrOverlappingPoint
	}
	d := p.Sub(o)
	return o.Add(d.Scale(power / d.NormSq())), nil
}

// Invert a line. A line through o maps to itself. Any other line maps to a
// circle through o, whose diameter from o ends at the image of the foot of the
// perpendicular from o.
func (l Line) Invert(o Point, power float64) (Curve, error) {
	if power == 0 {
		return nil, ErrZeroCoefficient
	}
	if l.IsThrough(o) {
		return l, nil
	}
	foot, err := Projection(o, l).Invert(o, power)
	if err != nil {
		return nil, err
	}
	return asCurve(CircleFromCenterPoint(Midpoint(foot, o), o))
}

// Invert a circle. A circle through o maps to a line perpendicular to the line
// of centers, through the image of the point diametrically opposite o. Any
// other circle maps to a circle: the two points of c on the line through o and
// the center invert to the ends of a diameter of the image.
func (c Circle) Invert(o Point, power float64) (Curve, error) {
	if power == 0 {
		return nil, ErrZeroCoefficient
	}
	if c.IsThrough(o) {
		far := c.O.Scale(2).Sub(o)
		image, err := far.Invert(o, power)
		if err != nil {
			return nil, err
		}
		axis, err := LineFrom2P(image, o)
		if err != nil {
			return nil, err
		}
		return Perp(image, axis), nil
	}
	if c.O.Equal(o) {
		// No line of centers, but the image is just a concentric circle
		return asCurve(NewCircle(o, math.Abs(power)/c.R))
	}
	axis, err := LineFrom2P(o, c.O)
	if err != nil {
		return nil, err
	}
	a, b, err := InterLineCircle(axis, c)
	if err != nil {
		return nil, err
	}
	a, err = a.Invert(o, power)
	if err != nil {
		return nil, err
	}
	b, err = b.Invert(o, power)
	if err != nil {
		return nil, err
	}
	return asCurve(CircleFromCenterPoint(Midpoint(a, b), a))
}

// Keep a failed circle construction from leaking out as a non-nil Curve.
func asCurve(c Circle, err error) (Curve, error) {
	if err != nil {
		return nil, err
	}
	return c, nil
}
