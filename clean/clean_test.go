package clean

import (
	"testing"

	"github.com/sabourke/difmap-sub005/dsp/core"
	"github.com/sabourke/difmap-sub005/internal/geom"
	"github.com/sabourke/difmap-sub005/mapbeam"
	"github.com/sabourke/difmap-sub005/obs"
)

// deltaBeamGrid builds a 64x64 grid whose beam is a unit delta at the
// origin pixel (no sidelobes), so beam subtraction only ever touches the
// pixel it is centered on.
func deltaBeamGrid(t *testing.T) *mapbeam.Grid {
	t.Helper()
	g, err := mapbeam.NewGrid(64, 64, 1e-6, 1e-6)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	mapbeam.Set(g.Beam, g.Stride(), g.PeakIx(), g.PeakIy(), 1)
	return g
}

func TestCleanFindsSinglePointSource(t *testing.T) {
	g := deltaBeamGrid(t)
	ix, iy := g.PeakIx()+3, g.PeakIy()-2
	mapbeam.Set(g.Map, g.Stride(), ix, iy, 2.0)

	model := &obs.Model{}
	opts := Apply(WithMaxComponents(1), WithGain(1), WithCutoff(0), WithCompress(false))

	rep, err := Clean(g, model, opts, nil)
	if err != nil {
		t.Fatalf("Clean: %v", err)
	}
	if rep.Components != 1 {
		t.Fatalf("rep.Components = %d, want 1", rep.Components)
	}
	if len(model.Components) != 1 {
		t.Fatalf("model has %d components, want 1", len(model.Components))
	}
	if got := model.Components[0].Flux; !core.NearlyEqual(got, 2.0, 1e-9) {
		t.Fatalf("component flux = %v, want 2.0", got)
	}
	wantX := float64(ix-g.PeakIx()) * g.Xinc
	wantY := float64(iy-g.PeakIy()) * g.Yinc
	if !core.NearlyEqual(model.Components[0].X, wantX, 1e-12) || !core.NearlyEqual(model.Components[0].Y, wantY, 1e-12) {
		t.Fatalf("component position = (%v,%v), want (%v,%v)", model.Components[0].X, model.Components[0].Y, wantX, wantY)
	}
	if got := mapbeam.At(g.Map, g.Stride(), ix, iy); !core.NearlyEqual(got, 0, 1e-9) {
		t.Fatalf("residual at peak = %v, want ~0", got)
	}
}

func TestCleanStopsAtCutoff(t *testing.T) {
	g := deltaBeamGrid(t)
	mapbeam.Set(g.Map, g.Stride(), g.PeakIx()+1, g.PeakIy(), 0.05)

	model := &obs.Model{}
	opts := Apply(WithMaxComponents(100), WithGain(1), WithCutoff(0.1))

	rep, err := Clean(g, model, opts, nil)
	if err != nil {
		t.Fatalf("Clean: %v", err)
	}
	if rep.Components != 0 {
		t.Fatalf("rep.Components = %d, want 0 (below cutoff)", rep.Components)
	}
	if rep.Stop != StopCutoff {
		t.Fatalf("rep.Stop = %v, want StopCutoff", rep.Stop)
	}
}

func TestCleanStopsOnNegativePeak(t *testing.T) {
	g := deltaBeamGrid(t)
	mapbeam.Set(g.Map, g.Stride(), g.PeakIx()+1, g.PeakIy(), -1.0)

	model := &obs.Model{}
	opts := Apply(WithMaxComponents(-10), WithGain(0.5), WithCutoff(0))

	rep, err := Clean(g, model, opts, nil)
	if err != nil {
		t.Fatalf("Clean: %v", err)
	}
	if rep.Components != 0 {
		t.Fatalf("rep.Components = %d, want 0", rep.Components)
	}
	if rep.Stop != StopNegative {
		t.Fatalf("rep.Stop = %v, want StopNegative", rep.Stop)
	}
}

func TestCleanRejectsInvalidGain(t *testing.T) {
	g := deltaBeamGrid(t)
	model := &obs.Model{}

	for _, gain := range []float64{0, -1, 1.5} {
		opts := Apply(WithGain(gain))
		if _, err := Clean(g, model, opts, nil); err == nil {
			t.Fatalf("Clean with gain=%v should fail", gain)
		}
	}
}

func TestCleanRejectsZeroBeam(t *testing.T) {
	g, err := mapbeam.NewGrid(64, 64, 1e-6, 1e-6)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	model := &obs.Model{}
	opts := Apply()

	if _, err := Clean(g, model, opts, nil); err != ErrBeamZero {
		t.Fatalf("Clean with zero beam: err = %v, want ErrBeamZero", err)
	}
}

func TestCleanRestrictsSearchToWindow(t *testing.T) {
	g := deltaBeamGrid(t)
	insideIx, insideIy := g.PeakIx()+2, g.PeakIy()+2
	outsideIx, outsideIy := g.PeakIx()-10, g.PeakIy()-10
	mapbeam.Set(g.Map, g.Stride(), insideIx, insideIy, 1.0)
	mapbeam.Set(g.Map, g.Stride(), outsideIx, outsideIy, 5.0)

	win := geom.NewWindow(-5*g.Xinc, 5*g.Xinc, -5*g.Yinc, 5*g.Yinc)
	model := &obs.Model{}
	opts := Apply(WithMaxComponents(1), WithGain(1), WithWindows(win))

	rep, err := Clean(g, model, opts, nil)
	if err != nil {
		t.Fatalf("Clean: %v", err)
	}
	if rep.Components != 1 {
		t.Fatalf("rep.Components = %d, want 1", rep.Components)
	}
	if got := model.Components[0].Flux; !core.NearlyEqual(got, 1.0, 1e-9) {
		t.Fatalf("component flux = %v, want 1.0 (window should exclude the brighter outside peak)", got)
	}
}
