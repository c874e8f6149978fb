package rtplot

import (
	"fmt"
	"math"
	"time"

	"github.com/nabeelsherazi/rtplot/src/types"
)

// TimeSeries plots one or more values against time. The x-axis is "seconds
// ago", sliding so the newest sample sits at 0.
type TimeSeries struct {
	*plot
}

// NewTimeSeries builds a time series plot. The number of lines is fixed by
// cfg.LineStyles or inferred from the first Update.
func NewTimeSeries(cfg Config) (*TimeSeries, error) {
	ts := &TimeSeries{}
	p, err := newPlot(tsProjector{}, 1, cfg)
	if err != nil {
		return nil, err
	}
	ts.plot = p
	return ts, nil
}

// Update appends one value per line, stamped with the current time. The
// call returns quickly regardless of render activity; it never waits on a
// frame. Supplying a different number of values than the established line
// count is a ConfigurationError.
func (ts *TimeSeries) Update(values ...float64) error {
	rows := make([][]float64, len(values))
	for i, v := range values {
		rows[i] = []float64{v}
	}
	return ts.write(rows)
}

type tsProjector struct{}

func (tsProjector) kind() string { return "TimeSeries" }

// project maps each line's snapshot to (seconds ago, value) pairs. The
// x-range is the configured window, or stretches to the oldest retained
// sample when unbounded; the y-range tracks the snapshot's min and max with
// a margin, unless the caller pinned bounds.
func (tsProjector) project(now time.Time, snaps [][]types.Sample, window time.Duration) ([]types.DrawableSeries, types.Bounds) {
	series := make([]types.DrawableSeries, 0, len(snaps))
	ylo, yhi := math.Inf(1), math.Inf(-1)
	oldest := 0.0

	for i, snap := range snaps {
		xs := make([]float64, len(snap))
		ys := make([]float64, len(snap))
		for j, s := range snap {
			xs[j] = s.At.Sub(now).Seconds() // negative: seconds ago
			ys[j] = s.Values[0]
			if ys[j] < ylo {
				ylo = ys[j]
			}
			if ys[j] > yhi {
				yhi = ys[j]
			}
			if xs[j] < oldest {
				oldest = xs[j]
			}
		}
		series = append(series, types.DrawableSeries{
			Name:       fmt.Sprintf("line %d", i),
			X:          xs,
			Y:          ys,
			StyleIndex: i,
		})
	}

	b := types.Bounds{XMax: 0}
	if window > 0 {
		b.XMin = -window.Seconds()
	} else if oldest < 0 {
		// Unbounded: grow leftward in 5 second steps so the axis does not
		// jitter every frame.
		b.XMin = math.Floor(oldest/5) * 5
	} else {
		b.XMin = -10
	}
	if ylo > yhi {
		b.YMin, b.YMax = -1, 1
	} else {
		b.YMin, b.YMax = padRange(ylo, yhi)
	}
	return series, b
}
