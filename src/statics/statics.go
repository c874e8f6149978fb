// Package statics manages the fixed decorations drawn on every frame of a
// plot: reference lines, boxes, circles, and marker points. Elements are
// configured once, kept outside the sliding data window, and handed to the
// renderer below the live series each tick.
package statics

import (
	"fmt"
	"sync"

	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/nabeelsherazi/rtplot/src/style"
)

// Kind names one supported static primitive.
type Kind string

const (
	Point     Kind = "point"
	Circle    Kind = "circle"
	Rectangle Kind = "rectangle"
	VLine     Kind = "vline"
	HLine     Kind = "hline"
)

// Params carries the keyword parameters of one static element. Geometry keys
// are float64; "linestyle" is a style spec string; "width" overrides the
// stroke width.
type Params = map[string]any

// requiredKeys lists geometry keys each kind must supply.
var requiredKeys = map[Kind][]string{
	Point:     {"x", "y"},
	Circle:    {"x", "y", "radius"},
	Rectangle: {"x", "y", "width", "height"},
	VLine:     {"x"},
	HLine:     {"y"},
}

// Element is one resolved static, ready to draw.
type Element struct {
	Kind   Kind
	X, Y   float64
	Radius float64
	Width  float64 // rectangle width
	Height float64
	Style  style.Line

	id int
}

// Handle identifies an added element for later removal.
type Handle struct{ id int }

// Layer is the set of statics owned by one plot. Add and Remove are rare and
// mutex-guarded; the render loop reads through Snapshot.
type Layer struct {
	mu     sync.Mutex
	nextID int
	elems  []Element
}

// NewLayer returns an empty layer.
func NewLayer() *Layer { return &Layer{} }

// Merge resolves shortcut bundles into params with last-wins semantics: later
// bundles override earlier ones, and explicit params override all bundles.
func Merge(params Params, bundles ...style.Bundle) Params {
	out := Params{}
	for _, b := range bundles {
		for k, v := range b {
			out[k] = v
		}
	}
	for k, v := range params {
		out[k] = v
	}
	return out
}

// Add validates kind and params and appends the element, returning a handle
// usable with Remove. Unknown kinds, missing keys, and bad linestyles are
// reported as errors, never coerced.
func (l *Layer) Add(kind Kind, params Params, bundles ...style.Bundle) (Handle, error) {
	req, ok := requiredKeys[kind]
	if !ok {
		return Handle{}, fmt.Errorf("unknown static kind %q", kind)
	}
	p := Merge(params, bundles...)

	e := Element{Kind: kind, Style: staticDefaultStyle(kind)}
	for _, key := range req {
		v, ok := floatParam(p, key)
		if !ok {
			return Handle{}, fmt.Errorf("static %q missing required parameter %q", kind, key)
		}
		switch key {
		case "x":
			e.X = v
		case "y":
			e.Y = v
		case "radius":
			e.Radius = v
		case "width":
			e.Width = v
		case "height":
			e.Height = v
		}
	}
	if ls, ok := p["linestyle"]; ok {
		spec, ok := ls.(string)
		if !ok {
			return Handle{}, fmt.Errorf("static %q linestyle must be a string", kind)
		}
		parsed, err := style.Parse(spec)
		if err != nil {
			return Handle{}, fmt.Errorf("static %q: %w", kind, err)
		}
		if kind == Point && !parsed.Marker {
			return Handle{}, fmt.Errorf("static point linestyle %q draws a stroke; a point would be invisible", spec)
		}
		e.Style = parsed
	}
	if kind != Rectangle {
		// For non-rectangles "width" means stroke width.
		if w, ok := floatParam(p, "width"); ok {
			e.Style.Width = w
		}
	}

	l.mu.Lock()
	l.nextID++
	e.id = l.nextID
	l.elems = append(l.elems, e)
	l.mu.Unlock()
	return Handle{id: e.id}, nil
}

// Remove deletes the element h refers to. Removing an unknown or already
// removed handle is a no-op.
func (l *Layer) Remove(h Handle) {
	l.mu.Lock()
	for i, e := range l.elems {
		if e.id == h.id {
			l.elems = append(l.elems[:i], l.elems[i+1:]...)
			break
		}
	}
	l.mu.Unlock()
}

// Snapshot returns a copy of the current elements in insertion order.
func (l *Layer) Snapshot() []Element {
	l.mu.Lock()
	out := make([]Element, len(l.elems))
	copy(out, l.elems)
	l.mu.Unlock()
	return out
}

// Len reports the number of elements currently in the layer.
func (l *Layer) Len() int {
	l.mu.Lock()
	n := len(l.elems)
	l.mu.Unlock()
	return n
}

// staticDefaultStyle is a mid gray so undecorated statics sit visually below
// live data. Points default to marker rendering.
func staticDefaultStyle(kind Kind) style.Line {
	l := style.Line{
		Color: drawing.Color{R: 128, G: 128, B: 128, A: 255},
		Width: style.DefaultStrokeWidth,
	}
	if kind == Point {
		l.Marker = true
	}
	return l
}

func floatParam(p Params, key string) (float64, bool) {
	v, ok := p[key]
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}
