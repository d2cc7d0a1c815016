// Command compass reports triangle centers and draws constructions described
// by scene files.
//
//	compass centers scene.toml
//	compass draw scene.toml --out scene.png --scale 40
//	compass centroid < points.txt
//
// The centroid command reads newline separated points in the form "x y".
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/osuushi/compass/dbg"
	"github.com/osuushi/compass/geom"
	"github.com/osuushi/compass/scene"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/alecthomas/kingpin.v2"
)

var (
	app     = kingpin.New("compass", "Straightedge and compass constructions.")
	verbose = app.Flag("verbose", "Log debug output.").Short('v').Bool()
	noColor = app.Flag("no-color", "Don't color the output.").Bool()

	centers      = app.Command("centers", "Print the centers of every triangle in a scene.")
	centersScene = centers.Arg("scene", "Scene file.").Required().ExistingFile()

	draw      = app.Command("draw", "Render a scene to a PNG.")
	drawScene = draw.Arg("scene", "Scene file.").Required().ExistingFile()
	drawOut   = draw.Flag("out", "Output file.").Short('o').Default("scene.png").String()
	drawScale = draw.Flag("scale", "Pixels per unit.").Default("40").Float64()
	drawCat   = draw.Flag("cat", "Also print the image in the terminal (iTerm only).").Bool()

	centroid = app.Command("centroid", "Print the centroid of the points on stdin.")
)

var logger = logrus.StandardLogger()

func main() {
	command := kingpin.MustParse(app.Parse(os.Args[1:]))
	if *verbose {
		logger.SetLevel(logrus.DebugLevel)
	}
	dbg.SetColor(!*noColor)

	var err error
	switch command {
	case centers.FullCommand():
		err = printCenters(*centersScene, os.Stdout)
	case draw.FullCommand():
		err = drawToFile(*drawScene, *drawOut, *drawScale, *drawCat)
	case centroid.FullCommand():
		err = printCentroid(os.Stdin, os.Stdout)
	}
	if err != nil {
		logger.WithError(err).Fatal(command + " failed")
	}
}

func resolve(path string) (*scene.Construction, error) {
	s, err := scene.Load(path)
	if err != nil {
		return nil, err
	}
	logger.WithFields(logrus.Fields{
		"points":    len(s.Points),
		"lines":     len(s.Lines),
		"circles":   len(s.Circles),
		"triangles": len(s.Triangles),
	}).Debug("loaded scene")
	return s.Resolve()
}

func printCenters(path string, out io.Writer) error {
	c, err := resolve(path)
	if err != nil {
		return err
	}
	reports, err := c.Report()
	if err != nil {
		return err
	}
	if len(reports) == 0 {
		logger.Warn("no triangles in scene")
	}
	for _, r := range reports {
		fmt.Fprintln(out, dbg.Labeled(r.Name, r.Triangle))
		fmt.Fprintln(out, "  "+dbg.Labeled("centroid", r.Centroid))
		fmt.Fprintln(out, "  "+dbg.Labeled("circumcircle", r.Circumcircle))
		fmt.Fprintln(out, "  "+dbg.Labeled("incircle", r.Incircle))
		for v, excircle := range r.Excircles {
			fmt.Fprintln(out, "  "+dbg.Labeled("excircle "+geom.Vertex(v).String(), excircle))
		}
		fmt.Fprintln(out, "  "+dbg.Labeled("orthocenter", r.Orthocenter))
		fmt.Fprintln(out, "  "+dbg.Labeled("nine-point center", r.NinePointCenter))
		fmt.Fprintln(out, "  "+dbg.Labeled("symmedian point", r.SymmedianPoint))
		fmt.Fprintln(out, "  "+dbg.Labeled("gergonne point", r.GergonnePoint))
		fmt.Fprintln(out, "  "+dbg.Labeled("contact cevian point", r.ContactCevianPoint))
	}
	return nil
}

func drawToFile(path, out string, scale float64, cat bool) error {
	if scale <= 0 {
		return errors.Errorf("scale must be positive, got %g", scale)
	}
	c, err := resolve(path)
	if err != nil {
		return err
	}
	sketch := c.Sketch()
	if err := sketch.SavePNG(out, scale); err != nil {
		return errors.Wrap(err, "saving sketch")
	}
	logger.WithField("path", out).Info("saved sketch")
	if cat {
		return sketch.Cat(scale)
	}
	return nil
}

func printCentroid(in io.Reader, out io.Writer) error {
	points, err := readPoints(in)
	if err != nil {
		return err
	}
	logger.WithField("count", len(points)).Debug("read points")
	if len(points) == 0 {
		return errors.New("no points on input")
	}
	fmt.Fprintln(out, dbg.Labeled("centroid", geom.Center(points...)))
	return nil
}

func readPoints(in io.Reader) ([]geom.Point, error) {
	var points []geom.Point
	// Scan lines
	scanner := bufio.NewScanner(in)
	for lineNumber := 1; scanner.Scan(); lineNumber++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		point, err := parsePoint(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		points = append(points, point)
	}
	return points, scanner.Err()
}

func parsePoint(line string) (geom.Point, error) {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		return geom.Point{}, errors.Errorf("expected \"x y\", got %q", line)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return geom.Point{}, errors.Wrap(err, "x")
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return geom.Point{}, errors.Wrap(err, "y")
	}
	return geom.Point{X: x, Y: y}, nil
}
