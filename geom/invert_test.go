package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvertPoint(t *testing.T) {
	o := Point{1, 1}

	image, err := Point{3, 1}.Invert(o, 4)
	require.NoError(t, err)
	assertPointInDelta(t, Point{3, 1}, image, "points on the circle of inversion are fixed")

	image, err = Point{5, 1}.Invert(o, 4)
	require.NoError(t, err)
	assertPointInDelta(t, Point{2, 1}, image)

	image, err = Point{5, 1}.Invert(o, -4)
	require.NoError(t, err)
	assertPointInDelta(t, Point{0, 1}, image, "negative power flips through the center")

	for _, power := range []float64{1, 2.5, -3, 100} {
		for _, p := range transformPoints {
			if p.Equal(o) {
				continue
			}
			image, err := p.Invert(o, power)
			require.NoError(t, err)
			back, err := image.Invert(o, power)
			require.NoError(t, err)
			assertPointInDelta(t, p, back, "%v with power %v", p, power)
			assert.InDelta(t, power, (p.Sub(o)).Dot(image.Sub(o)), testDelta)
		}
	}

	_, err = o.Invert(o, 4)
	assert.ErrorIs(t, err, ErrOverlappingPoint)
	_, err = Point{3, 1}.Invert(o, 0)
	assert.ErrorIs(t, err, ErrZeroCoefficient)
}

func TestInvertLine(t *testing.T) {
	o := Point{0, 0}

	t.Run("through the center", func(t *testing.T) {
		l := Line{1, 2, 0}
		image, err := l.Invert(o, 3)
		require.NoError(t, err)
		require.IsType(t, Line{}, image)
		assert.True(t, l.Equal(image.(Line)))
	})

	t.Run("away from the center", func(t *testing.T) {
		l := Line{1, 0, -2} // x = 2
		image, err := l.Invert(o, 4)
		require.NoError(t, err)
		require.IsType(t, Circle{}, image)
		circle := image.(Circle)
		assert.True(t, circle.Equal(Circle{Point{1, 0}, 1}), "%v", circle)
		assert.True(t, circle.IsThrough(o))

		// Every inverted point of the line is on the image
		for _, y := range []float64{-5, -1, 0, 0.5, 7} {
			p, err := Point{2, y}.Invert(o, 4)
			require.NoError(t, err)
			assert.True(t, image.IsThrough(p), "%v", p)
		}
	})

	t.Run("negative power", func(t *testing.T) {
		image, err := Line{1, 0, -2}.Invert(o, -4)
		require.NoError(t, err)
		require.IsType(t, Circle{}, image)
		assert.True(t, image.(Circle).Equal(Circle{Point{-1, 0}, 1}))
	})

	t.Run("zero power", func(t *testing.T) {
		_, err := Line{1, 0, -2}.Invert(o, 0)
		assert.ErrorIs(t, err, ErrZeroCoefficient)
	})
}

func TestInvertCircle(t *testing.T) {
	o := Point{0, 0}

	t.Run("through the center", func(t *testing.T) {
		c := Circle{Point{1, 0}, 1}
		image, err := c.Invert(o, 4)
		require.NoError(t, err)
		require.IsType(t, Line{}, image)
		assert.True(t, image.(Line).Equal(Line{1, 0, -2}), "%v", image)

		// And back again
		back, err := image.(Line).Invert(o, 4)
		require.NoError(t, err)
		require.IsType(t, Circle{}, back)
		assert.True(t, c.Equal(back.(Circle)))
	})

	t.Run("away from the center", func(t *testing.T) {
		c := Circle{Point{3, 0}, 1}
		image, err := c.Invert(o, 8)
		require.NoError(t, err)
		require.IsType(t, Circle{}, image)
		// 2 -> 4 and 4 -> 2
		assert.True(t, image.(Circle).Equal(Circle{Point{3, 0}, 1}), "%v", image)

		c = Circle{Point{2, 3}, 1.5}
		image, err = c.Invert(o, 5)
		require.NoError(t, err)
		require.IsType(t, Circle{}, image)
		for _, theta := range []float64{0, 1, 2, 3, 4, 5, 6} {
			p, err := OnCircle(c, theta).Invert(o, 5)
			require.NoError(t, err)
			assert.InDelta(t, image.(Circle).R, image.(Circle).O.Distance(p), testDelta)
		}

		back, err := image.(Circle).Invert(o, 5)
		require.NoError(t, err)
		assert.True(t, c.ApproxEqual(back.(Circle), testDelta), "%v", back)
	})

	t.Run("centered on the center", func(t *testing.T) {
		image, err := Circle{o, 2}.Invert(o, -8)
		require.NoError(t, err)
		assert.True(t, image.(Circle).Equal(Circle{o, 4}))
	})

	t.Run("zero power", func(t *testing.T) {
		_, err := Circle{o, 2}.Invert(o, 0)
		assert.ErrorIs(t, err, ErrZeroCoefficient)
	})
}
