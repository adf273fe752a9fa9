package gridder

import (
	"math"
	"testing"

	"github.com/sabourke/difmap-sub005/mapbeam"
	"github.com/sabourke/difmap-sub005/obs"
)

func symmetricUVSet(n int, maxUV float64) []obs.Visibility {
	vis := make([]obs.Visibility, 0, n)
	for i := 0; i < n; i++ {
		theta := 2 * math.Pi * float64(i) / float64(n)
		r := maxUV * (0.2 + 0.6*float64(i%5)/5)
		u := r * math.Cos(theta)
		v := r * math.Sin(theta)
		vis = append(vis, obs.Visibility{U: u, V: v, Wt: 1, Amp: 1, Phs: 0})
		vis = append(vis, obs.Visibility{U: -u, V: -v, Wt: 1, Amp: 1, Phs: 0})
	}
	return vis
}

func TestBuildBeamPeaksAtOrigin(t *testing.T) {
	g, err := mapbeam.NewGrid(64, 64, 1e-6, 1e-6)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	gr, err := New(g)
	if err != nil {
		t.Fatalf("gridder.New: %v", err)
	}

	vis := symmetricUVSet(40, g.Uinc*10)
	rep, err := gr.BuildBeam(vis)
	if err != nil {
		t.Fatalf("BuildBeam: %v", err)
	}
	if rep.Total != len(vis) {
		t.Fatalf("rep.Total = %d, want %d", rep.Total, len(vis))
	}

	if err := gr.UVTrans(g.Beam); err != nil {
		t.Fatalf("UVTrans: %v", err)
	}

	stats, err := g.BeamStats()
	if err != nil {
		t.Fatalf("BeamStats: %v", err)
	}
	peakIx, peakIy := g.PeakIx(), g.PeakIy()
	if stats.PeakIx != peakIx || stats.PeakIy != peakIy {
		t.Fatalf("beam peak at (%d,%d), want (%d,%d)", stats.PeakIx, stats.PeakIy, peakIx, peakIy)
	}
}

func TestBuildBeamRejectsEmptySet(t *testing.T) {
	g, err := mapbeam.NewGrid(64, 64, 1e-6, 1e-6)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	gr, err := New(g)
	if err != nil {
		t.Fatalf("gridder.New: %v", err)
	}
	if _, err := gr.BuildBeam(nil); err == nil {
		t.Fatalf("BuildBeam(nil) should fail with ErrNoData")
	}
}

func TestUVBinCountsVisibilities(t *testing.T) {
	g, err := mapbeam.NewGrid(64, 64, 1e-6, 1e-6)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	gr, err := New(g, WithUniformBinWidth(2))
	if err != nil {
		t.Fatalf("gridder.New: %v", err)
	}
	vis := symmetricUVSet(10, g.Uinc*5)
	if _, err := gr.UVBin(vis); err != nil {
		t.Fatalf("UVBin: %v", err)
	}
	total := 0
	for _, c := range g.Bins {
		total += c
	}
	if total == 0 {
		t.Fatalf("UVBin left every bin at zero")
	}
}
