package rtplot

import (
	"fmt"
	"math"
	"time"

	"github.com/nabeelsherazi/rtplot/src/types"
)

// Z3D plots 3D points, projected onto the image plane with a fixed
// orthographic camera. Like XY it draws a trailing window when one is
// configured and accumulates forever otherwise. Each line additionally gets
// a marker at its newest point so the current position stands out.
type Z3D struct {
	*plot
}

// NewZ3D builds a 3D trajectory plot.
func NewZ3D(cfg Config) (*Z3D, error) {
	z := &Z3D{}
	p, err := newPlot(z3dProjector{}, 3, cfg)
	if err != nil {
		return nil, err
	}
	z.plot = p
	return z, nil
}

// Update appends one point per line.
func (z *Z3D) Update(points ...types.Point3) error {
	rows := make([][]float64, len(points))
	for i, pt := range points {
		rows[i] = []float64{pt.X, pt.Y, pt.Z}
	}
	return z.write(rows)
}

// Fixed camera: 45 degrees azimuth, 30 degrees elevation.
var (
	sinAz = math.Sin(math.Pi / 4)
	cosAz = math.Cos(math.Pi / 4)
	sinEl = math.Sin(math.Pi / 6)
	cosEl = math.Cos(math.Pi / 6)
)

// project3D maps a 3D point into view coordinates.
func project3D(x, y, z float64) (u, v float64) {
	u = x*cosAz - y*sinAz
	v = z*cosEl - (x*sinAz+y*cosAz)*sinEl
	return u, v
}

type z3dProjector struct{}

func (z3dProjector) kind() string { return "Z3D" }

func (z3dProjector) project(now time.Time, snaps [][]types.Sample, window time.Duration) ([]types.DrawableSeries, types.Bounds) {
	series := make([]types.DrawableSeries, 0, 2*len(snaps))
	var allU, allV []float64

	for i, snap := range snaps {
		us := make([]float64, len(snap))
		vs := make([]float64, len(snap))
		for j, s := range snap {
			us[j], vs[j] = project3D(s.Values[0], s.Values[1], s.Values[2])
		}
		allU = append(allU, us...)
		allV = append(allV, vs...)
		series = append(series, types.DrawableSeries{
			Name:       fmt.Sprintf("line %d", i),
			X:          us,
			Y:          vs,
			StyleIndex: i,
		})
		if n := len(snap); n > 0 {
			series = append(series, types.DrawableSeries{
				Name:       fmt.Sprintf("line %d head", i),
				X:          []float64{us[n-1]},
				Y:          []float64{vs[n-1]},
				StyleIndex: i,
				Marker:     true,
			})
		}
	}
	return series, squareBounds(allU, allV)
}
