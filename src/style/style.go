// Package style parses the compact matplotlib-like line specs the plot API
// accepts ("b-", "r--", "ko", ...) into concrete stroke and marker styles
// usable by the renderers.
package style

import (
	"fmt"
	"strings"

	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Line is one parsed line style.
type Line struct {
	Color  drawing.Color
	Dash   []float64 // nil means a solid stroke
	Marker bool      // true means dots only, no connecting stroke
	Width  float64
}

// DefaultStrokeWidth is used whenever a spec does not imply a width.
const DefaultStrokeWidth = 2.0

var colorCodes = map[byte]drawing.Color{
	'b': {R: 0, G: 0, B: 255, A: 255},
	'g': {R: 0, G: 128, B: 0, A: 255},
	'r': {R: 255, G: 0, B: 0, A: 255},
	'c': {R: 0, G: 192, B: 192, A: 255},
	'm': {R: 192, G: 0, B: 192, A: 255},
	'y': {R: 192, G: 192, B: 0, A: 255},
	'k': {R: 0, G: 0, B: 0, A: 255},
	'w': {R: 255, G: 255, B: 255, A: 255},
}

// palette cycles colors for lines that were inferred rather than configured.
var palette = []drawing.Color{
	{R: 0, G: 116, B: 217, A: 255},
	{R: 255, G: 65, B: 54, A: 255},
	{R: 46, G: 204, B: 64, A: 255},
	{R: 255, G: 133, B: 27, A: 255},
	{R: 177, G: 13, B: 201, A: 255},
	{R: 57, G: 204, B: 204, A: 255},
}

// Auto returns the default style for the i-th line when the caller supplied
// no explicit style, matching the "auto linestyle" behavior for lines that
// appear via inference.
func Auto(i int) Line {
	return Line{Color: palette[i%len(palette)], Width: DefaultStrokeWidth}
}

// Parse converts a spec like "b-", "r--", "g:" or "ko" into a Line.
// The spec is an optional single color code followed by an optional stroke
// token: "-" solid, "--" dashed, "-." dash-dot, ":" dotted, or a marker
// character ("o", "x", ".") for point-only rendering. An empty spec yields
// Auto(0). Anything unrecognized is a configuration error.
func Parse(spec string) (Line, error) {
	if spec == "" {
		return Auto(0), nil
	}
	l := Line{Color: colorCodes['b'], Width: DefaultStrokeWidth}
	rest := spec
	if c, ok := colorCodes[spec[0]]; ok {
		l.Color = c
		rest = spec[1:]
	}
	switch rest {
	case "", "-":
		// solid
	case "--":
		l.Dash = []float64{8, 6}
	case "-.":
		l.Dash = []float64{8, 4, 2, 4}
	case ":":
		l.Dash = []float64{2, 4}
	case "o", "x", ".", "^", "s", "*":
		l.Marker = true
	default:
		return Line{}, fmt.Errorf("invalid linestyle %q", spec)
	}
	if rest == "" && len(spec) > 1 {
		return Line{}, fmt.Errorf("invalid linestyle %q", spec)
	}
	return l, nil
}

// ParseAll parses a list of specs, reporting the first offending entry.
func ParseAll(specs []string) ([]Line, error) {
	out := make([]Line, 0, len(specs))
	for i, s := range specs {
		l, err := Parse(s)
		if err != nil {
			return nil, fmt.Errorf("linestyle %d: %w", i, err)
		}
		out = append(out, l)
	}
	return out, nil
}

// Describe renders a Line back to a human-readable summary for logs.
func Describe(l Line) string {
	var b strings.Builder
	fmt.Fprintf(&b, "#%02x%02x%02x", l.Color.R, l.Color.G, l.Color.B)
	switch {
	case l.Marker:
		b.WriteString(" marker")
	case len(l.Dash) > 0:
		b.WriteString(" dashed")
	default:
		b.WriteString(" solid")
	}
	return b.String()
}
