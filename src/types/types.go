// Package types holds the small value types shared between the buffer,
// projection, and rendering layers. Keeping them here avoids import cycles
// between src/buffer, src/rtplot, and src/render.
package types

import (
	"math"
	"time"
)

// Sample is one timestamped data point written by a producer. Values holds
// one scalar per axis of the owning plot: 1 for a time series line, 2 for an
// XY point, 3 for a Z3D point.
type Sample struct {
	At     time.Time
	Values []float64
}

// Point is a 2D coordinate supplied to an XY plot.
type Point struct {
	X, Y float64
}

// Point3 is a 3D coordinate supplied to a Z3D plot.
type Point3 struct {
	X, Y, Z float64
}

// DrawableSeries is one line's worth of projected coordinates, ready for a
// renderer to consume. X and Y are always the same length.
type DrawableSeries struct {
	Name string
	X    []float64
	Y    []float64
	// StyleIndex selects which configured line style to draw this series
	// with. Series beyond the configured styles get the renderer default.
	StyleIndex int
	// Marker draws dots instead of a stroked line (used for line heads).
	Marker bool
}

// Bounds is an axis-aligned view rectangle in data coordinates.
type Bounds struct {
	XMin, XMax float64
	YMin, YMax float64
}

// Valid reports whether the bounds describe a non-degenerate, finite area.
func (b Bounds) Valid() bool {
	for _, v := range []float64{b.XMin, b.XMax, b.YMin, b.YMax} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return b.XMax > b.XMin && b.YMax > b.YMin
}

// Expand grows the bounds by frac of each side length in every direction.
func (b Bounds) Expand(frac float64) Bounds {
	mx := frac * (b.XMax - b.XMin)
	my := frac * (b.YMax - b.YMin)
	return Bounds{
		XMin: b.XMin - mx, XMax: b.XMax + mx,
		YMin: b.YMin - my, YMax: b.YMax + my,
	}
}

// Square returns bounds centered like b but stretched so both sides equal the
// longer side. XY and Z3D plots keep square axes so shapes are not distorted.
func (b Bounds) Square() Bounds {
	w := b.XMax - b.XMin
	h := b.YMax - b.YMin
	if h > w {
		cx := (b.XMin + b.XMax) / 2
		b.XMin = cx - h/2
		b.XMax = cx + h/2
	} else {
		cy := (b.YMin + b.YMax) / 2
		b.YMin = cy - w/2
		b.YMax = cy + w/2
	}
	return b
}
