package types

import (
	"math"
	"testing"
)

func TestBoundsValid(t *testing.T) {
	if !(Bounds{XMin: 0, XMax: 1, YMin: 0, YMax: 1}).Valid() {
		t.Fatalf("unit bounds reported invalid")
	}
	if (Bounds{XMin: 1, XMax: 1, YMin: 0, YMax: 1}).Valid() {
		t.Fatalf("degenerate x accepted")
	}
	if (Bounds{XMin: math.NaN(), XMax: 1, YMin: 0, YMax: 1}).Valid() {
		t.Fatalf("NaN accepted")
	}
	if (Bounds{XMin: math.Inf(-1), XMax: 1, YMin: 0, YMax: 1}).Valid() {
		t.Fatalf("infinity accepted")
	}
}

func TestBoundsExpand(t *testing.T) {
	b := Bounds{XMin: 0, XMax: 10, YMin: 0, YMax: 10}.Expand(0.1)
	if b.XMin != -1 || b.XMax != 11 || b.YMin != -1 || b.YMax != 11 {
		t.Fatalf("expand wrong: %+v", b)
	}
}

func TestBoundsSquare(t *testing.T) {
	b := Bounds{XMin: 0, XMax: 10, YMin: 4, YMax: 6}.Square()
	if b.YMax-b.YMin != 10 {
		t.Fatalf("short side not stretched: %+v", b)
	}
	if b.YMin != 0 || b.YMax != 10 {
		t.Fatalf("not centered: %+v", b)
	}
	tall := Bounds{XMin: -1, XMax: 1, YMin: 0, YMax: 8}.Square()
	if tall.XMax-tall.XMin != 8 {
		t.Fatalf("x side not stretched: %+v", tall)
	}
}
