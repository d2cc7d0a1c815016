package dbg

import (
	"io"
	"math"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/compass/geom"
)

// Padding around the shapes, so that lines visibly run off the edge
const dbgDrawPadding = 40

// A Sketch collects points, lines, circles and polygons to draw together.
// Lines are infinite, so they are clipped to the bounds of everything else.
type Sketch struct {
	points   []labeledPoint
	lines    []geom.Line
	circles  []geom.Circle
	polygons [][]geom.Point
}

type labeledPoint struct {
	geom.Point
	label string
}

// Add a point. An empty label gets a readable name.
func (s *Sketch) AddPoint(p geom.Point, label string) {
	if label == "" {
		label = Name(p)
	}
	s.points = append(s.points, labeledPoint{p, label})
}

func (s *Sketch) AddLine(l geom.Line) {
	s.lines = append(s.lines, l)
}

func (s *Sketch) AddCircle(c geom.Circle) {
	s.circles = append(s.circles, c)
}

func (s *Sketch) AddPolygon(points ...geom.Point) {
	s.polygons = append(s.polygons, points)
}

func (s *Sketch) AddTriangle(t geom.Triangle) {
	s.AddPolygon(t.A, t.B, t.C)
}

// The bounding box of everything but the lines. An empty sketch gets the unit
// square, and a sketch with a single point gets a unit square around it.
func (s *Sketch) Bounds() (lo, hi geom.Point) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	include := func(p geom.Point, r float64) {
		minX = math.Min(minX, p.X-r)
		minY = math.Min(minY, p.Y-r)
		maxX = math.Max(maxX, p.X+r)
		maxY = math.Max(maxY, p.Y+r)
	}
	for _, p := range s.points {
		include(p.Point, 0)
	}
	for _, c := range s.circles {
		include(c.O, c.R)
	}
	for _, poly := range s.polygons {
		for _, p := range poly {
			include(p, 0)
		}
	}
	if math.IsInf(minX, 1) {
		return geom.Origin, geom.Point{X: 1, Y: 1}
	}
	if maxX-minX < 1 {
		minX, maxX = minX-0.5, maxX+0.5
	}
	if maxY-minY < 1 {
		minY, maxY = minY-0.5, maxY+0.5
	}
	return geom.Point{X: minX, Y: minY}, geom.Point{X: maxX, Y: maxY}
}

// Two far apart points of the line, around the foot of the perpendicular from
// the middle of the bounds.
func (s *Sketch) clip(l geom.Line) (geom.Point, geom.Point) {
	lo, hi := s.Bounds()
	foot := geom.Projection(geom.Midpoint(lo, hi), l)
	reach := 2 * lo.Distance(hi)
	dir := l.Direction()
	dir = dir.Div(dir.Norm()).Scale(reach)
	return foot.Sub(dir), foot.Add(dir)
}

// Render the sketch, scale pixels per unit.
func (s *Sketch) Draw(scale float64) *gg.Context {
	lo, hi := s.Bounds()

	// Set up the context
	width := int(scale*(hi.X-lo.X)) + dbgDrawPadding*2
	height := int(scale*(hi.Y-lo.Y)) + dbgDrawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)

	// Translate for padding
	c.Translate(dbgDrawPadding, dbgDrawPadding)
	// Scale
	c.Scale(scale, scale)
	// Translate to min
	c.Translate(-lo.X, -lo.Y)

	c.SetLineWidth(2)
	for _, poly := range s.polygons {
		if len(poly) == 0 {
			continue
		}
		c.MoveTo(poly[0].X, poly[0].Y)
		for _, p := range poly[1:] {
			c.LineTo(p.X, p.Y)
		}
		c.ClosePath()
	}
	c.SetRGB(0, 0.5, 0)
	c.FillPreserve()
	c.SetRGB(0, 1, 1)
	c.Stroke()

	c.SetRGB(1, 1, 0)
	for _, circle := range s.circles {
		c.DrawCircle(circle.O.X, circle.O.Y, circle.R)
		c.Stroke()
	}

	c.SetRGB(1, 0, 1)
	for _, l := range s.lines {
		p, q := s.clip(l)
		c.DrawLine(p.X, p.Y, q.X, q.Y)
		c.Stroke()
	}

	// Points and labels are drawn in device space, so they keep their size and
	// the text isn't upside down
	c.SetRGB(1, 1, 1)
	for _, p := range s.points {
		x, y := c.TransformPoint(p.X, p.Y)
		c.Push()
		c.Identity()
		c.DrawPoint(x, y, 3)
		c.Fill()
		c.DrawString(p.label, x+5, y-5)
		c.Pop()
	}
	return c
}

func (s *Sketch) SavePNG(path string, scale float64) error {
	return s.Draw(scale).SavePNG(path)
}

// Print the sketch to the terminal (iTerm only).
func (s *Sketch) Cat(scale float64) error {
	return s.CatTo(os.Stdout, scale)
}

// Write the sketch as an inline image escape sequence.
func (s *Sketch) CatTo(w io.Writer, scale float64) error {
	path := filepath.Join(os.TempDir(), "compass_sketch.png")
	if err := s.SavePNG(path, scale); err != nil {
		return err
	}
	return imgcat.CatFile(path, w)
}
