package geom

import "math"

// Point is a position in the same (x,y) plane as Ellipse and Rect.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle (xmin,xmax,ymin,ymax), used as the
// bounding region ellipses and windows are tested against.
type Rect struct {
	XMin, XMax, YMin, YMax float64
}

// Containment classifies how an Ellipse sits relative to a Rect.
type Containment int

const (
	Reject Containment = iota
	Full
	Partial
	Center
)

func (c Containment) String() string {
	switch c {
	case Full:
		return "full"
	case Partial:
		return "partial"
	case Center:
		return "center"
	default:
		return "reject"
	}
}

// Ellipse is a clean-component shape: full axis lengths Major ≥ Minor, position
// angle PA (radians, measured clockwise from +Y), and center (Xc, Yc).
// xwid/ywid are the cached half-widths of the ellipse's axis-aligned
// bounding rectangle, computed once at construction.
type Ellipse struct {
	Major, Minor, PA float64
	Xc, Yc           float64

	xwid, ywid float64
}

// NewEllipse constructs an Ellipse, swapping major/minor (and rotating PA by
// π/2) if major < minor so the invariant Major ≥ Minor always holds.
func NewEllipse(major, minor, pa, xc, yc float64) Ellipse {
	if major < minor {
		major, minor = minor, major
		pa += math.Pi / 2
	}
	e := Ellipse{Major: major, Minor: minor, PA: pa, Xc: xc, Yc: yc}
	e.xwid, e.ywid = boundingHalfWidths(major, minor, pa)
	return e
}

// boundingHalfWidths computes the half-widths of the ellipse's axis-aligned
// bounding rectangle at the extremum angles xang = atan(minor/major·cot pa)
// and yang = -atan(tan pa·minor/major). Using atan2 rather than atan avoids
// the need for separate guards when pa is near 0 or ±π/2.
func boundingHalfWidths(major, minor, pa float64) (xwid, ywid float64) {
	xang := math.Atan2(minor*math.Cos(pa), major*math.Sin(pa))
	yang := -math.Atan2(minor*math.Sin(pa), major*math.Cos(pa))
	x, _ := locusAt(major, minor, pa, xang)
	_, y := locusAt(major, minor, pa, yang)
	return math.Abs(x), math.Abs(y)
}

// locusAt evaluates the (unrotated-then-rotated) ellipse point at polar
// angle theta, about the origin, for the given major/minor/pa. Locus uses
// this with the ellipse's own center added back in.
func locusAt(major, minor, pa, theta float64) (x, y float64) {
	x0 := (minor / 2) * math.Sin(theta)
	y0 := (major / 2) * math.Cos(theta)
	x = x0*math.Cos(pa) + y0*math.Sin(pa)
	y = -x0*math.Sin(pa) + y0*math.Cos(pa)
	return x, y
}

// Locus returns the point on the ellipse at clockwise polar angle theta
// measured from +Y. Locus(0) lies on the major axis at distance Major/2 from
// the center; Locus(π/2) lies on the minor axis at distance Minor/2.
func (e Ellipse) Locus(theta float64) Point {
	x, y := locusAt(e.Major, e.Minor, e.PA, theta)
	return Point{X: e.Xc + x, Y: e.Yc + y}
}

// BoundingRect returns the ellipse's cached axis-aligned bounding rectangle.
func (e Ellipse) BoundingRect() Rect {
	return Rect{
		XMin: e.Xc - e.xwid,
		XMax: e.Xc + e.xwid,
		YMin: e.Yc - e.ywid,
		YMax: e.Yc + e.ywid,
	}
}

// Visible classifies the ellipse's bounding rectangle against r: Full if
// wholly enclosed, Partial if the bounding boxes overlap at all, Center if
// neither but the ellipse's center still falls within r on the X axis, else
// Reject.
//
// The Center test checks the X coordinate twice and never checks Y. This
// reproduces a known bug in the original center-containment test and is
// preserved intentionally rather than fixed.
func (e Ellipse) Visible(r Rect) Containment {
	b := e.BoundingRect()

	if b.XMin >= r.XMin && b.XMax <= r.XMax && b.YMin >= r.YMin && b.YMax <= r.YMax {
		return Full
	}

	overlaps := b.XMax >= r.XMin && b.XMin <= r.XMax && b.YMax >= r.YMin && b.YMin <= r.YMax
	if overlaps {
		return Partial
	}

	if e.Xc >= r.XMin && e.Xc <= r.XMax {
		return Center
	}

	return Reject
}
