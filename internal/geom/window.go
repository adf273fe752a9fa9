package geom

import (
	"math"

	"github.com/sabourke/difmap-sub005/internal/fft"
)

// Window is a rectangular clean/search region in radians. Construction
// enforces XMin ≤ XMax and YMin ≤ YMax.
type Window struct {
	XMin, XMax, YMin, YMax float64
}

// NewWindow builds a Window, reordering bounds so XMin ≤ XMax and
// YMin ≤ YMax hold regardless of argument order.
func NewWindow(xmin, xmax, ymin, ymax float64) Window {
	if xmin > xmax {
		xmin, xmax = xmax, xmin
	}
	if ymin > ymax {
		ymin, ymax = ymax, ymin
	}
	return Window{XMin: xmin, XMax: xmax, YMin: ymin, YMax: ymax}
}

// Contains reports whether (x, y) falls within w, bounds inclusive.
func (w Window) Contains(x, y float64) bool {
	return x >= w.XMin && x <= w.XMax && y >= w.YMin && y <= w.YMax
}

// Shift translates w by (east, north).
func (w Window) Shift(east, north float64) Window {
	return Window{
		XMin: w.XMin + east,
		XMax: w.XMax + east,
		YMin: w.YMin + north,
		YMax: w.YMax + north,
	}
}

// List is an ordered collection of windows.
type List struct {
	windows []Window
}

// Append adds w to the end of the list.
func (l *List) Append(w Window) {
	l.windows = append(l.windows, w)
}

// Len reports the number of windows in the list.
func (l *List) Len() int { return len(l.windows) }

// At returns the window at index i.
func (l *List) At(i int) Window { return l.windows[i] }

// Remove deletes the first window equal to target, checking index hint
// first (the common case when the caller already knows where the target
// window sits) and otherwise scanning the list from the start. It reports
// whether a window was removed.
func (l *List) Remove(target Window, hint int) bool {
	if hint >= 0 && hint < len(l.windows) && l.windows[hint] == target {
		l.removeAt(hint)
		return true
	}
	for i, w := range l.windows {
		if w == target {
			l.removeAt(i)
			return true
		}
	}
	return false
}

func (l *List) removeAt(i int) {
	l.windows = append(l.windows[:i], l.windows[i+1:]...)
}

// Contains reports whether (x, y) falls within any window in the list.
func (l *List) Contains(x, y float64) bool {
	for _, w := range l.windows {
		if w.Contains(x, y) {
			return true
		}
	}
	return false
}

// Shift translates every window in the list by (east, north) in place.
func (l *List) Shift(east, north float64) {
	for i, w := range l.windows {
		l.windows[i] = w.Shift(east, north)
	}
}

// PixelRange converts w's real bounds into an inclusive pixel index range
// [xa,xb]×[ya,yb] within the region [ixmin,ixmax]×[iymin,iymax], centered on
// (xcenter, ycenter) with cell sizes (xinc, yinc).
//
// The conversion uses half-pixel enclosure: a bound at or past zero rounds
// up to the next whole pixel boundary (⌈v/inc⌉); a negative bound rounds
// down and steps in by one (⌊v/inc⌋+1). If the resulting range collapses
// (xb < xa or yb < ya) both ends are set to the pixel nearest the window's
// midpoint. A window that falls entirely outside the region reports ok=false.
func PixelRange(w Window, ixmin, ixmax, iymin, iymax int, xcenter, ycenter int, xinc, yinc float64) (xa, xb, ya, yb int, ok bool) {
	xa = xcenter + enclose(w.XMin, xinc)
	xb = xcenter + enclose(w.XMax, xinc)
	if xb < xa {
		mid := xcenter + fft.RoundHalfAway((w.XMin+w.XMax)/2/xinc)
		xa, xb = mid, mid
	}

	ya = ycenter + enclose(w.YMin, yinc)
	yb = ycenter + enclose(w.YMax, yinc)
	if yb < ya {
		mid := ycenter + fft.RoundHalfAway((w.YMin+w.YMax)/2/yinc)
		ya, yb = mid, mid
	}

	if xa < ixmin {
		xa = ixmin
	}
	if xb > ixmax {
		xb = ixmax
	}
	if ya < iymin {
		ya = iymin
	}
	if yb > iymax {
		yb = iymax
	}

	if xa > ixmax || xb < ixmin || ya > iymax || yb < iymin {
		return 0, 0, 0, 0, false
	}
	return xa, xb, ya, yb, true
}

func enclose(v, inc float64) int {
	if v >= 0 {
		return int(math.Ceil(v / inc))
	}
	return int(math.Floor(v/inc)) + 1
}
