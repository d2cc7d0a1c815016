// Scene files describe a construction by name: points by coordinates, and
// lines, circles and triangles in terms of those points. A scene is decoded
// from TOML and then resolved into geom values.
package scene

import (
	"io"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// ErrUnknownPoint is reported when a shape refers to a point that isn't
// declared in the [points] table.
var ErrUnknownPoint = errors.New("unknown point")

type Scene struct {
	Points    map[string][2]float64 `toml:"points"`
	Lines     []LineSpec            `toml:"lines"`
	Circles   []CircleSpec          `toml:"circles"`
	Triangles []TriangleSpec        `toml:"triangles"`
}

// A line through two named points.
type LineSpec struct {
	Name    string    `toml:"name"`
	Through [2]string `toml:"through"`
}

// A circle given by its center and either a radius or a point it passes
// through, or else by three points on it. Exactly one form must be used.
type CircleSpec struct {
	Name    string   `toml:"name"`
	Center  string   `toml:"center"`
	Radius  float64  `toml:"radius"`
	Through string   `toml:"through"`
	Points  []string `toml:"points"`
}

type TriangleSpec struct {
	Name     string    `toml:"name"`
	Vertices [3]string `toml:"vertices"`
}

// Decode a scene. Keys the scene format doesn't know about are an error, since
// they are almost always typos.
func Parse(r io.Reader) (*Scene, error) {
	s := new(Scene)
	md, err := toml.NewDecoder(r).Decode(s)
	if err != nil {
		return nil, errors.Wrap(err, "decoding scene")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, key := range undecoded {
			keys[i] = key.String()
		}
		sort.Strings(keys)
		return nil, errors.Errorf("decoding scene: unknown keys %s", strings.Join(keys, ", "))
	}
	// The decoder quietly skips a map whose value isn't a table
	if md.IsDefined("points") && md.Type("points") != "Hash" {
		return nil, errors.New("decoding scene: points must be a table")
	}
	for _, key := range []string{"lines", "circles", "triangles"} {
		if md.IsDefined(key) && md.Type(key) != "ArrayHash" && md.Type(key) != "Array" {
			return nil, errors.Errorf("decoding scene: %s must be an array of tables", key)
		}
	}
	return s, nil
}

func Load(path string) (*Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "loading scene")
	}
	defer f.Close()
	s, err := Parse(f)
	if err != nil {
		return nil, errors.Wrapf(err, "loading %s", path)
	}
	return s, nil
}
