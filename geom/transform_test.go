package geom

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

var transformPoints = []Point{{0, 0}, {1, 2}, {-3.5, 4}, {10, -7}, {0.25, 0.125}}

var transformLines = []Line{
	{1, 0, -2},
	{0, 1, 3},
	{1, 1, 0},
	{2, -3, 5},
	{-0.5, 4, 1},
}

func TestReflectPoint(t *testing.T) {
	t.Run("in point", func(t *testing.T) {
		o := Point{1, 1}
		assert.Equal(t, Point{2, 0}, Point{0, 2}.ReflectInPoint(o))
		for _, p := range transformPoints {
			assertPointInDelta(t, p, p.ReflectInPoint(o).ReflectInPoint(o))
		}
	})

	t.Run("in line", func(t *testing.T) {
		diagonal := Line{1, -1, 0}
		assertPointInDelta(t, Point{2, 1}, Point{1, 2}.ReflectInLine(diagonal))
		assertPointInDelta(t, Point{4, 0}, Point{0, 0}.ReflectInLine(Line{1, 0, -2}))

		for _, l := range transformLines {
			for _, p := range transformPoints {
				image := p.ReflectInLine(l)
				assertPointInDelta(t, p, image.ReflectInLine(l), "%v in %v", p, l)
				// The line is the perpendicular bisector of p and its image
				assert.True(t, l.IsThrough(Midpoint(p, image)))
			}
		}
	})
}

func TestReflectLine(t *testing.T) {
	t.Run("in point", func(t *testing.T) {
		l := Line{1, 1, -2} // x + y = 2
		image := l.ReflectInPoint(Origin)
		assert.True(t, image.Equal(Line{1, 1, 2}), "%v", image)
		for _, l := range transformLines {
			o := Point{3, -1}
			assert.True(t, l.Equal(l.ReflectInPoint(o).ReflectInPoint(o)))
		}
	})

	t.Run("in parallel line", func(t *testing.T) {
		l := Line{0, 1, -1} // y = 1
		mirror := Line{0, 2, 6}
		image := l.ReflectInLine(mirror) // about y = -3
		assert.True(t, image.Equal(Line{0, 1, 7}), "%v", image)
	})

	t.Run("in crossing line", func(t *testing.T) {
		l := Line{0, 1, 0} // the x axis
		image := l.ReflectInLine(Line{1, -1, 0})
		assert.True(t, image.Equal(Line{1, 0, 0}), "%v", image)
	})

	t.Run("maps points to points", func(t *testing.T) {
		for _, mirror := range transformLines {
			for _, l := range transformLines {
				image := l.ReflectInLine(mirror)
				assert.True(t, l.ApproxEqual(image.ReflectInLine(mirror), testDelta), "%v in %v", l, mirror)
				// Reflect two points of l, and they must land on the image
				p := Projection(Origin, l)
				q := p.Add(l.Direction())
				assert.InDelta(t, 0, p.ReflectInLine(mirror).DistanceToLine(image), testDelta)
				assert.InDelta(t, 0, q.ReflectInLine(mirror).DistanceToLine(image), testDelta)
			}
		}
	})
}

func TestReflectCircle(t *testing.T) {
	c := Circle{Point{2, 3}, 1.5}
	assert.True(t, c.ReflectInPoint(Origin).Equal(Circle{Point{-2, -3}, 1.5}))
	assert.True(t, c.ReflectInLine(Line{0, 1, 0}).Equal(Circle{Point{2, -3}, 1.5}))
}

func TestRotate(t *testing.T) {
	o := Point{1, -2}

	t.Run("quarter turn", func(t *testing.T) {
		assertPointInDelta(t, Point{0, 1}, Point{1, 0}.Rotate(Origin, math.Pi/2))
		assertPointInDelta(t, Point{1, -1}, Point{2, -2}.Rotate(o, math.Pi/2))
		image := Line{0, 1, -1}.Rotate(Origin, math.Pi/2) // y = 1 becomes x = -1
		assert.True(t, image.Equal(Line{1, 0, 1}), "%v", image)
	})

	for i := 0; i < 14; i++ {
		theta := float64(i) * math.Pi / 7
		t.Run(fmt.Sprintf("%d/7 pi", i), func(t *testing.T) {
			for _, p := range transformPoints {
				assertPointInDelta(t, p, p.Rotate(o, theta).Rotate(o, -theta))
				assert.InDelta(t, p.Distance(o), p.Rotate(o, theta).Distance(o), testDelta)
			}
			for _, l := range transformLines {
				image := l.Rotate(o, theta)
				assert.True(t, l.ApproxEqual(image.Rotate(o, -theta), testDelta))
				// Points on the line rotate onto the image
				p := Projection(Origin, l).Add(l.Direction().Scale(3))
				assert.InDelta(t, 0, p.Rotate(o, theta).DistanceToLine(image), testDelta)
				assert.InDelta(t, o.DistanceToLine(l), o.DistanceToLine(image), testDelta)
			}
			c := Circle{Point{3, 4}, 2}
			assert.True(t, c.ApproxEqual(c.Rotate(o, theta).Rotate(o, -theta), testDelta))
		})
	}
}

func TestScaleAbout(t *testing.T) {
	o := Point{1, 1}

	t.Run("point", func(t *testing.T) {
		assert.Equal(t, Point{5, 1}, Point{3, 1}.ScaleAbout(o, 2))
		assert.Equal(t, Point{-3, 1}, Point{3, 1}.ScaleAbout(o, -2))
		assert.Equal(t, Point{3, 1}, Point{3, 1}.ScaleAbout(o, 1))
		for _, p := range transformPoints {
			assertPointInDelta(t, p, p.ScaleAbout(o, 4).ScaleAbout(o, 0.25))
		}
	})

	t.Run("line", func(t *testing.T) {
		image := Line{1, 0, -3}.ScaleAbout(o, 2) // x = 3 becomes x = 5
		assert.True(t, image.Equal(Line{1, 0, -5}), "%v", image)
		for _, l := range transformLines {
			for _, r := range []float64{3, -0.5} {
				image := l.ScaleAbout(o, r)
				p := Projection(Origin, l)
				assert.True(t, image.IsThrough(p.ScaleAbout(o, r)))
				assert.True(t, IsParallel(l, image))
			}
		}
	})

	t.Run("circle", func(t *testing.T) {
		c := Circle{Point{3, 1}, 1}
		assert.True(t, c.ScaleAbout(o, 2).Equal(Circle{Point{5, 1}, 2}))
		// Negative ratios keep the radius positive
		image := c.ScaleAbout(o, -2)
		assert.True(t, image.Equal(Circle{Point{-3, 1}, 2}), "%v", image)
		// And the image really is the set of scaled points
		for _, theta := range []float64{0, 1, 2, 3} {
			assert.True(t, image.IsThrough(OnCircle(c, theta).ScaleAbout(o, -2)))
		}
	})
}
