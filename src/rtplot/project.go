package rtplot

import (
	"math"

	"github.com/nabeelsherazi/rtplot/src/types"
)

// rangeOf scans values for their min and max. ok is false when there were
// no values at all.
func rangeOf(vals ...[]float64) (lo, hi float64, ok bool) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, vs := range vals {
		for _, v := range vs {
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
	}
	if lo > hi {
		return 0, 0, false
	}
	return lo, hi, true
}

// padRange widens [lo,hi] by the bounds margin, giving degenerate ranges a
// unit of breathing room so a flat line is still visible.
func padRange(lo, hi float64) (float64, float64) {
	if hi == lo {
		return lo - 1, hi + 1
	}
	m := boundsMargin * (hi - lo)
	return lo - m, hi + m
}

// squareBounds builds equal-sided bounds around the data, the shape XY and
// Z3D plots keep so geometry is not distorted.
func squareBounds(xs, ys []float64) types.Bounds {
	xlo, xhi, okx := rangeOf(xs)
	ylo, yhi, oky := rangeOf(ys)
	if !okx || !oky {
		return types.Bounds{XMin: -1, XMax: 1, YMin: -1, YMax: 1}
	}
	xlo, xhi = padRange(xlo, xhi)
	ylo, yhi = padRange(ylo, yhi)
	return types.Bounds{XMin: xlo, XMax: xhi, YMin: ylo, YMax: yhi}.Square()
}
