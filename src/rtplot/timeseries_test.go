package rtplot

import (
	"math"
	"testing"
	"time"

	"github.com/nabeelsherazi/rtplot/src/types"
)

func sampleAt(t time.Time, vals ...float64) types.Sample {
	return types.Sample{At: t, Values: vals}
}

func TestTimeSeriesProjection(t *testing.T) {
	now := time.Now()
	snaps := [][]types.Sample{
		{
			sampleAt(now.Add(-4*time.Second), 1.0),
			sampleAt(now.Add(-2*time.Second), 3.0),
			sampleAt(now, 2.0),
		},
	}
	series, bounds := tsProjector{}.project(now, snaps, 10*time.Second)
	if len(series) != 1 {
		t.Fatalf("series count = %d", len(series))
	}
	xs := series[0].X
	if math.Abs(xs[0]+4) > 1e-6 || math.Abs(xs[2]) > 1e-6 {
		t.Fatalf("seconds-ago mapping wrong: %v", xs)
	}
	if bounds.XMin != -10 || bounds.XMax != 0 {
		t.Fatalf("windowed x bounds = [%v,%v] want [-10,0]", bounds.XMin, bounds.XMax)
	}
	// y range [1,3] with 10% margin.
	if math.Abs(bounds.YMin-0.8) > 1e-9 || math.Abs(bounds.YMax-3.2) > 1e-9 {
		t.Fatalf("y bounds = [%v,%v] want [0.8,3.2]", bounds.YMin, bounds.YMax)
	}
}

func TestTimeSeriesUnboundedXGrowsInSteps(t *testing.T) {
	now := time.Now()
	snaps := [][]types.Sample{{
		sampleAt(now.Add(-12*time.Second), 1.0),
		sampleAt(now, 1.0),
	}}
	_, bounds := tsProjector{}.project(now, snaps, 0)
	if bounds.XMin != -15 {
		t.Fatalf("unbounded x min = %v want -15 (5s steps)", bounds.XMin)
	}
}

func TestTimeSeriesFlatLineStillVisible(t *testing.T) {
	now := time.Now()
	snaps := [][]types.Sample{{sampleAt(now, 5.0), sampleAt(now.Add(time.Second), 5.0)}}
	_, bounds := tsProjector{}.project(now.Add(time.Second), snaps, 10*time.Second)
	if bounds.YMax <= bounds.YMin {
		t.Fatalf("degenerate y bounds for flat data: [%v,%v]", bounds.YMin, bounds.YMax)
	}
}

func TestTimeSeriesEmptySnapshot(t *testing.T) {
	series, bounds := tsProjector{}.project(time.Now(), nil, 0)
	if len(series) != 0 {
		t.Fatalf("series from empty snapshot: %v", series)
	}
	if !bounds.Valid() {
		t.Fatalf("fallback bounds invalid: %+v", bounds)
	}
}
