package scene

import (
	"sort"
	"strings"

	"github.com/osuushi/compass/dbg"
	"github.com/osuushi/compass/geom"
	"github.com/osuushi/compass/trig"
	"github.com/pkg/errors"
)

// A resolved scene. Every shape is keyed by its name.
type Construction struct {
	Points    map[string]geom.Point
	Lines     map[string]geom.Line
	Circles   map[string]geom.Circle
	Triangles map[string]geom.Triangle
}

// Build the geometry the scene describes. The first shape that can't be built
// fails the whole scene, with an error naming it.
func (s *Scene) Resolve() (*Construction, error) {
	c := &Construction{
		Points:    make(map[string]geom.Point, len(s.Points)),
		Lines:     make(map[string]geom.Line, len(s.Lines)),
		Circles:   make(map[string]geom.Circle, len(s.Circles)),
		Triangles: make(map[string]geom.Triangle, len(s.Triangles)),
	}
	for name, xy := range s.Points {
		c.Points[name] = geom.Point{X: xy[0], Y: xy[1]}
	}

	for _, spec := range s.Lines {
		name := spec.Name
		if name == "" {
			name = strings.Join(spec.Through[:], "")
		}
		if _, ok := c.Lines[name]; ok {
			return nil, errors.Errorf("line %s: duplicate name", name)
		}
		points, err := c.lookup(spec.Through[:]...)
		if err != nil {
			return nil, errors.Wrapf(err, "line %s", name)
		}
		l, err := geom.LineFrom2P(points[0], points[1])
		if err != nil {
			return nil, errors.Wrapf(err, "line %s", name)
		}
		c.Lines[name] = l
	}

	for _, spec := range s.Circles {
		if spec.Name == "" {
			return nil, errors.New("circle: missing name")
		}
		if _, ok := c.Circles[spec.Name]; ok {
			return nil, errors.Errorf("circle %s: duplicate name", spec.Name)
		}
		circle, err := c.circle(spec)
		if err != nil {
			return nil, errors.Wrapf(err, "circle %s", spec.Name)
		}
		c.Circles[spec.Name] = circle
	}

	for _, spec := range s.Triangles {
		name := spec.Name
		if name == "" {
			name = strings.Join(spec.Vertices[:], "")
		}
		if _, ok := c.Triangles[name]; ok {
			return nil, errors.Errorf("triangle %s: duplicate name", name)
		}
		points, err := c.lookup(spec.Vertices[:]...)
		if err != nil {
			return nil, errors.Wrapf(err, "triangle %s", name)
		}
		c.Triangles[name] = geom.Triangle{A: points[0], B: points[1], C: points[2]}
	}
	return c, nil
}

func (c *Construction) lookup(names ...string) ([]geom.Point, error) {
	points := make([]geom.Point, len(names))
	for i, name := range names {
		p, ok := c.Points[name]
		if !ok {
			return nil, errors.Wrapf(ErrUnknownPoint, "%q", name)
		}
		points[i] = p
	}
	return points, nil
}

func (c *Construction) circle(spec CircleSpec) (geom.Circle, error) {
	if len(spec.Points) > 0 {
		if spec.Center != "" || spec.Through != "" || spec.Radius != 0 {
			return geom.Circle{}, errors.New("points can't be combined with a center")
		}
		if len(spec.Points) != 3 {
			return geom.Circle{}, errors.Errorf("need 3 points, got %d", len(spec.Points))
		}
		points, err := c.lookup(spec.Points...)
		if err != nil {
			return geom.Circle{}, err
		}
		return geom.CircleFrom3P(points[0], points[1], points[2])
	}

	if spec.Center == "" {
		return geom.Circle{}, errors.New("missing center")
	}
	o, err := c.lookup(spec.Center)
	if err != nil {
		return geom.Circle{}, err
	}
	if spec.Through != "" {
		if spec.Radius != 0 {
			return geom.Circle{}, errors.New("through can't be combined with a radius")
		}
		p, err := c.lookup(spec.Through)
		if err != nil {
			return geom.Circle{}, err
		}
		return geom.CircleFromCenterPoint(o[0], p[0])
	}
	return geom.NewCircle(o[0], spec.Radius)
}

// The centers of one named triangle.
type TriangleReport struct {
	Name string
	trig.Report
}

// Compute the centers of every triangle, in name order.
func (c *Construction) Report() ([]TriangleReport, error) {
	var reports []TriangleReport
	for _, name := range sortedNames(c.Triangles) {
		report, err := trig.Centers(c.Triangles[name])
		if err != nil {
			return nil, errors.Wrapf(err, "triangle %s", name)
		}
		reports = append(reports, TriangleReport{Name: name, Report: report})
	}
	return reports, nil
}

// Draw every shape in the construction. Points are labeled with their names.
func (c *Construction) Sketch() *dbg.Sketch {
	s := new(dbg.Sketch)
	for _, name := range sortedNames(c.Triangles) {
		s.AddTriangle(c.Triangles[name])
	}
	for _, name := range sortedNames(c.Circles) {
		s.AddCircle(c.Circles[name])
	}
	for _, name := range sortedNames(c.Lines) {
		s.AddLine(c.Lines[name])
	}
	for _, name := range sortedNames(c.Points) {
		s.AddPoint(c.Points[name], name)
	}
	return s
}

func sortedNames[V any](m map[string]V) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
