package fft

import (
	"math"
	"testing"

	"github.com/sabourke/difmap-sub005/internal/testutil"
)

func TestPlan2DRoundTrip(t *testing.T) {
	cases := []struct {
		name   string
		nx, ny int
	}{
		{"8x8", 8, 8},
		{"16x8", 16, 8},
		{"32x16", 32, 16},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			plan, err := NewPlan2D(c.nx, c.ny)
			if err != nil {
				t.Fatalf("NewPlan2D: %v", err)
			}
			data := make([]float64, plan.Len())
			want := make([]float64, plan.Len())
			stride := plan.Stride()
			for r := 0; r < c.ny; r++ {
				for i := 0; i < c.nx; i++ {
					v := math.Sin(float64(i)*0.3) + math.Cos(float64(r)*0.7)
					data[r*stride+i] = v
					want[r*stride+i] = v
				}
			}

			if err := plan.Forward(data); err != nil {
				t.Fatalf("Forward: %v", err)
			}
			if err := plan.Inverse(data, true); err != nil {
				t.Fatalf("Inverse: %v", err)
			}
			testutil.RequireFinite(t, data)
			testutil.RequireSliceNearlyEqual(t, data, want, 1e-9)
		})
	}
}

func TestPlan2DUnrescaledInverseMatchesScaledByN(t *testing.T) {
	nx, ny := 16, 16
	plan, err := NewPlan2D(nx, ny)
	if err != nil {
		t.Fatalf("NewPlan2D: %v", err)
	}
	stride := plan.Stride()

	base := make([]float64, plan.Len())
	for r := 0; r < ny; r++ {
		for i := 0; i < nx; i++ {
			base[r*stride+i] = math.Sin(float64(i+r) * 0.2)
		}
	}

	rescaled := append([]float64(nil), base...)
	if err := plan.Forward(rescaled); err != nil {
		t.Fatalf("Forward: %v", err)
	}
	if err := plan.Inverse(rescaled, true); err != nil {
		t.Fatalf("Inverse (rescale): %v", err)
	}

	unrescaled := append([]float64(nil), base...)
	if err := plan.Forward(unrescaled); err != nil {
		t.Fatalf("Forward: %v", err)
	}
	if err := plan.Inverse(unrescaled, false); err != nil {
		t.Fatalf("Inverse (no rescale): %v", err)
	}

	n := float64(nx * ny)
	for r := 0; r < ny; r++ {
		for i := 0; i < nx; i++ {
			idx := r*stride + i
			want := rescaled[idx] * n
			if diff := math.Abs(unrescaled[idx] - want); diff > 1e-6 {
				t.Fatalf("index %d: unrescaled=%v, rescaled*N=%v (diff %v)", idx, unrescaled[idx], want, diff)
			}
		}
	}
}

func TestShiftIsInvolution(t *testing.T) {
	nx, ny := 4, 4
	data := make([]complex128, nx*ny)
	for i := range data {
		data[i] = complex(float64(i), float64(-i))
	}
	orig := append([]complex128(nil), data...)

	Shift(nx, ny, data)
	Shift(nx, ny, data)

	for i := range data {
		if data[i] != orig[i] {
			t.Fatalf("index %d: Shift twice gave %v, want %v", i, data[i], orig[i])
		}
	}
}

func TestConjShiftIsInvolution(t *testing.T) {
	nx, ny := 8, 4
	stride := nx + 2
	data := make([]float64, stride*ny)
	for i := range data {
		data[i] = float64(i) * 0.5
	}
	orig := append([]float64(nil), data...)

	ConjShift(nx, ny, data)
	ConjShift(nx, ny, data)

	testutil.RequireSliceNearlyEqual(t, data, orig, 1e-12)
}

func TestCosTranMirrorsFirstHalf(t *testing.T) {
	in := []float64{1, 0.5, 0.2, 0.05}
	out := make([]float64, 8)
	CosTran(in, 4, out)

	half := len(out)/2 + 1
	for j := half; j < len(out); j++ {
		if out[j] != out[len(out)-j] {
			t.Fatalf("index %d: got %v, want mirror of index %d (%v)", j, out[j], len(out)-j, out[len(out)-j])
		}
	}
}

func TestCosTranDCTerm(t *testing.T) {
	in := []float64{2, 2, 2, 2}
	out := make([]float64, 4)
	CosTran(in, 4, out)
	want := 8.0
	if diff := math.Abs(out[0] - want); diff > 1e-9 {
		t.Fatalf("DC term: got %v, want %v", out[0], want)
	}
}

func TestRoundHalfAway(t *testing.T) {
	cases := []struct {
		in   float64
		want int
	}{
		{0.4, 0},
		{0.5, 1},
		{0.5 + 1e-12, 1},
		{-0.5, -1},
		{-0.4, 0},
		{2.5, 3},
		{-2.5, -3},
	}
	for _, c := range cases {
		if got := RoundHalfAway(c.in); got != c.want {
			t.Errorf("RoundHalfAway(%v) = %d, want %d", c.in, got, c.want)
		}
	}
}
