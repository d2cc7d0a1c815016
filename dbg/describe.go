package dbg

import (
	"fmt"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/compass/geom"
)

var au = aurora.NewAurora(true)

// Turn colors off (or back on), e.g. when output isn't a terminal.
func SetColor(enabled bool) {
	au = aurora.NewAurora(enabled)
}

// A colored string for a geometric value, so that the kinds are easy to tell
// apart in a wall of debug output.
func Describe(v interface{}) string {
	switch v := v.(type) {
	case geom.Point:
		return au.Cyan(v.String()).String()
	case geom.Line:
		return au.Green(v.String()).String()
	case geom.Circle:
		return au.Yellow(v.String()).String()
	case geom.Triangle:
		return au.Magenta(v.String()).String()
	case error:
		return au.Red(v.Error()).String()
	}
	return fmt.Sprint(v)
}

// Describe with a label in front.
func Labeled(label string, v interface{}) string {
	return fmt.Sprintf("%s %s", au.Bold(label+":"), Describe(v))
}
