package rtplot

import (
	"math"
	"testing"
	"time"

	"github.com/nabeelsherazi/rtplot/src/types"
)

func TestProject3DOrigin(t *testing.T) {
	u, v := project3D(0, 0, 0)
	if u != 0 || v != 0 {
		t.Fatalf("origin projects to (%v,%v)", u, v)
	}
	// Pure z motion maps straight up, scaled by the elevation cosine.
	_, v = project3D(0, 0, 1)
	if math.Abs(v-math.Cos(math.Pi/6)) > 1e-9 {
		t.Fatalf("z unit projects to v=%v", v)
	}
	// x and y are symmetric under the 45 degree azimuth: equal x and y
	// collapse onto the v axis.
	u, _ = project3D(1, 1, 0)
	if math.Abs(u) > 1e-9 {
		t.Fatalf("diagonal xy should have u=0, got %v", u)
	}
}

func TestZ3DProjectionAddsLineHeads(t *testing.T) {
	now := time.Now()
	snaps := [][]types.Sample{
		{
			sampleAt(now.Add(-time.Second), 0, 0, 0),
			sampleAt(now, 1, 1, 1),
		},
	}
	series, bounds := z3dProjector{}.project(now, snaps, 0)
	if len(series) != 2 {
		t.Fatalf("expected line + head, got %d series", len(series))
	}
	head := series[1]
	if !head.Marker || len(head.X) != 1 {
		t.Fatalf("head series malformed: %+v", head)
	}
	wantU, wantV := project3D(1, 1, 1)
	if head.X[0] != wantU || head.Y[0] != wantV {
		t.Fatalf("head not at newest point: (%v,%v) want (%v,%v)", head.X[0], head.Y[0], wantU, wantV)
	}
	if w, h := bounds.XMax-bounds.XMin, bounds.YMax-bounds.YMin; math.Abs(w-h) > 1e-9 {
		t.Fatalf("bounds not square: %v x %v", w, h)
	}
}

func TestZ3DUpdateShape(t *testing.T) {
	z, err := NewZ3D(fastConfig(&captureRenderer{}))
	if err != nil {
		t.Fatalf("NewZ3D: %v", err)
	}
	if err := z.Update(types.Point3{X: 1, Y: 2, Z: 3}); err != nil {
		t.Fatalf("update: %v", err)
	}
	if err := z.Update(types.Point3{X: 1, Y: 2, Z: 3}, types.Point3{X: 4, Y: 5, Z: 6}); err == nil {
		t.Fatalf("expected line-count mismatch error")
	}
}
