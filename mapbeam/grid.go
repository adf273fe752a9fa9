package mapbeam

import (
	"fmt"
	"math"

	"github.com/sabourke/difmap-sub005/internal/fft"
)

// Grid is the paired dirty-map/dirty-beam container for one imaging
// session: Nx-by-Ny pixel arrays stored with row stride Nx+2 so they can be
// FFT-transformed in place between real and half-complex layouts, plus the
// auxiliary arrays the gridder needs to deconvolve its convolution
// function.
type Grid struct {
	Nx, Ny     int
	Xinc, Yinc float64 // angular pixel size, radians
	Uinc, Vinc float64 // UV-plane cell size, wavelengths

	Map  []float64 // (Nx+2)*Ny
	Beam []float64 // (Nx+2)*Ny

	Rxft []float64 // length Nx+1, reciprocal FT of the gridding function along x
	Ryft []float64 // length Ny+1, reciprocal FT of the gridding function along y

	// Bins is the uniform-weighting bin matrix, Nx/4 by Ny/2 integer
	// counts, row-major.
	Bins []int

	// IxMin, IxMax, IyMin, IyMax bound the cleanable inner quarter:
	// Nx/4 ≤ ix ≤ 3Nx/4-1 (and the analogous range in y).
	IxMin, IxMax, IyMin, IyMax int
}

// NewGrid allocates a Grid for an Nx-by-Ny image with the given angular
// pixel sizes. Nx and Ny must be powers of two strictly greater than 32;
// xinc and yinc must be positive and finite.
func NewGrid(nx, ny int, xinc, yinc float64) (*Grid, error) {
	if !fft.IsPowerOfTwo(nx) || nx <= 32 || !fft.IsPowerOfTwo(ny) || ny <= 32 {
		return nil, fmt.Errorf("mapbeam: NewGrid: nx=%d, ny=%d must be powers of two > 32: %w", nx, ny, ErrInvalidGrid)
	}
	if !(xinc > 0) || !(yinc > 0) || math.IsInf(xinc, 0) || math.IsInf(yinc, 0) {
		return nil, fmt.Errorf("mapbeam: NewGrid: xinc=%v, yinc=%v must be positive and finite: %w", xinc, yinc, ErrInvalidGrid)
	}

	g := &Grid{
		Nx: nx, Ny: ny,
		Xinc: xinc, Yinc: yinc,
		Uinc: 1 / (xinc * float64(nx)),
		Vinc: 1 / (yinc * float64(ny)),
		Map:  make([]float64, (nx+2)*ny),
		Beam: make([]float64, (nx+2)*ny),
		Rxft: make([]float64, nx+1),
		Ryft: make([]float64, ny+1),
		Bins: make([]int, (nx/4)*(ny/2)),
	}
	g.IxMin, g.IxMax = nx/4, 3*nx/4-1
	g.IyMin, g.IyMax = ny/4, 3*ny/4-1
	return g, nil
}

// Stride is the number of floats per row (Nx+2).
func (g *Grid) Stride() int { return g.Nx + 2 }

// PeakIx, PeakIy are the grid indices of the origin both the beam's peak
// and the map's phase center sit at.
func (g *Grid) PeakIx() int { return g.Nx / 2 }
func (g *Grid) PeakIy() int { return g.Ny / 2 }

// ClearBins zeroes the uniform-weighting bin matrix.
func (g *Grid) ClearBins() {
	for i := range g.Bins {
		g.Bins[i] = 0
	}
}

// ClearMap zeroes the map array.
func (g *Grid) ClearMap() {
	for i := range g.Map {
		g.Map[i] = 0
	}
}

// ClearBeam zeroes the beam array.
func (g *Grid) ClearBeam() {
	for i := range g.Beam {
		g.Beam[i] = 0
	}
}

// At returns the pixel value at (ix, iy) in plane.
func At(plane []float64, stride, ix, iy int) float64 {
	return plane[iy*stride+ix]
}

// Set writes the pixel value at (ix, iy) in plane.
func Set(plane []float64, stride, ix, iy int, v float64) {
	plane[iy*stride+ix] = v
}
