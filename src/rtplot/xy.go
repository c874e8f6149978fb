package rtplot

import (
	"fmt"
	"time"

	"github.com/nabeelsherazi/rtplot/src/types"
)

// XY plots 2D points, one trace per line. With a window configured only the
// trailing seconds of points are drawn (a "trail"); without one the plot is
// cumulative and every point ever received stays visible.
type XY struct {
	*plot
}

// NewXY builds an XY plot.
func NewXY(cfg Config) (*XY, error) {
	xy := &XY{}
	p, err := newPlot(xyProjector{}, 2, cfg)
	if err != nil {
		return nil, err
	}
	xy.plot = p
	return xy, nil
}

// Update appends one point per line. Axis bounds stay square so shapes are
// drawn undistorted.
func (xy *XY) Update(points ...types.Point) error {
	rows := make([][]float64, len(points))
	for i, pt := range points {
		rows[i] = []float64{pt.X, pt.Y}
	}
	return xy.write(rows)
}

type xyProjector struct{}

func (xyProjector) kind() string { return "XY" }

func (xyProjector) project(now time.Time, snaps [][]types.Sample, window time.Duration) ([]types.DrawableSeries, types.Bounds) {
	series := make([]types.DrawableSeries, 0, len(snaps))
	var allX, allY []float64

	for i, snap := range snaps {
		xs := make([]float64, len(snap))
		ys := make([]float64, len(snap))
		for j, s := range snap {
			xs[j] = s.Values[0]
			ys[j] = s.Values[1]
		}
		allX = append(allX, xs...)
		allY = append(allY, ys...)
		series = append(series, types.DrawableSeries{
			Name:       fmt.Sprintf("line %d", i),
			X:          xs,
			Y:          ys,
			StyleIndex: i,
		})
	}
	return series, squareBounds(allX, allY)
}
