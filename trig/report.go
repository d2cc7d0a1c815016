package trig

import (
	"github.com/osuushi/compass/geom"
)

// All of the centers of one triangle.
type Report struct {
	Triangle           Triangle
	Centroid           geom.Point
	Circumcircle       geom.Circle
	Incircle           geom.Circle
	Excircles          [3]geom.Circle // Opposite A, B and C
	Orthocenter        geom.Point
	NinePointCenter    geom.Point
	SymmedianPoint     geom.Point
	GergonnePoint      geom.Point
	ContactCevianPoint geom.Point
}

// Compute every center of the triangle, stopping at the first failure. Since
// the failures all come from a degenerate triangle, in practice either
// everything succeeds or the first one fails.
func Centers(t Triangle) (report Report, err error) {
	report.Triangle = t
	report.Centroid = Centroid(t)
	if report.Circumcircle, err = Circumcircle(t); err != nil {
		return
	}
	if report.Incircle, err = Incircle(t); err != nil {
		return
	}
	for i, v := range []geom.Vertex{geom.VertexA, geom.VertexB, geom.VertexC} {
		if report.Excircles[i], err = Excircle(t, v); err != nil {
			return
		}
	}
	if report.Orthocenter, err = Orthocenter(t); err != nil {
		return
	}
	if report.NinePointCenter, err = NinePointCenter(t); err != nil {
		return
	}
	if report.SymmedianPoint, err = SymmedianPoint(t); err != nil {
		return
	}
	if report.GergonnePoint, err = GergonnePoint(t); err != nil {
		return
	}
	report.ContactCevianPoint, err = ContactCevianPoint(t)
	return
}
