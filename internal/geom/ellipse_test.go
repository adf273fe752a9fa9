package geom

import (
	"math"
	"testing"
)

func TestEllipseLocusOnAxes(t *testing.T) {
	e := NewEllipse(4, 2, 0, 10, 20)

	major := e.Locus(0)
	wantMajor := Point{X: 10, Y: 22}
	if math.Abs(major.X-wantMajor.X) > 1e-9 || math.Abs(major.Y-wantMajor.Y) > 1e-9 {
		t.Errorf("Locus(0) = %+v, want %+v", major, wantMajor)
	}

	minor := e.Locus(math.Pi / 2)
	wantMinor := Point{X: 11, Y: 20}
	if math.Abs(minor.X-wantMinor.X) > 1e-9 || math.Abs(minor.Y-wantMinor.Y) > 1e-9 {
		t.Errorf("Locus(pi/2) = %+v, want %+v", minor, wantMinor)
	}
}

func TestNewEllipseSwapsMajorMinor(t *testing.T) {
	e := NewEllipse(2, 4, 0, 0, 0)
	if e.Major != 4 || e.Minor != 2 {
		t.Fatalf("major/minor not swapped: got major=%v minor=%v", e.Major, e.Minor)
	}
	if math.Abs(e.PA-math.Pi/2) > 1e-9 {
		t.Fatalf("PA not rotated by pi/2 on swap: got %v", e.PA)
	}
}

func TestEllipseVisibleFull(t *testing.T) {
	e := NewEllipse(2, 1, 0, 0, 0)
	r := Rect{XMin: -10, XMax: 10, YMin: -10, YMax: 10}
	if got := e.Visible(r); got != Full {
		t.Fatalf("Visible() = %v, want Full", got)
	}
}

func TestEllipseVisibleReject(t *testing.T) {
	e := NewEllipse(2, 1, 0, 100, 100)
	r := Rect{XMin: -10, XMax: 10, YMin: -10, YMax: 10}
	if got := e.Visible(r); got != Reject {
		t.Fatalf("Visible() = %v, want Reject", got)
	}
}

func TestEllipseVisibleCenterDoubleXBug(t *testing.T) {
	// Center is within the X range but far outside the Y range; the bug
	// under test never checks Y, so this must still report Center.
	e := NewEllipse(1, 0.5, 0, 5, 1000)
	r := Rect{XMin: 0, XMax: 10, YMin: -10, YMax: 10}
	if got := e.Visible(r); got != Center {
		t.Fatalf("Visible() = %v, want Center (double-X-test bug not preserved)", got)
	}
}

func TestBoundingHalfWidthsUnrotatedCircle(t *testing.T) {
	e := NewEllipse(4, 4, 0, 0, 0)
	b := e.BoundingRect()
	if math.Abs(b.XMax-2) > 1e-9 || math.Abs(b.YMax-2) > 1e-9 {
		t.Fatalf("bounding rect of unrotated circle of diameter 4: got %+v", b)
	}
}
