package fft

import (
	"fmt"
	"math/bits"
	"math/cmplx"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// Plan2D performs a two-dimensional real/half-complex Fourier transform of a
// fixed Nx-by-Ny grid. Rows are transformed real-to-half-complex (or back)
// with a plan of size Nx; the Nx/2+1 resulting complex columns are then
// transformed full-complex with a plan of size Ny.
//
// Storage layout matches the grid used throughout the package: Nx*Ny real
// samples packed row-major with stride Nx+2, so that the same buffer can be
// reinterpreted in place as Ny rows of Nx/2+1 complex pairs once transformed.
type Plan2D struct {
	nx, ny int
	nc     int // Nx/2 + 1 complex values per transformed row
	rowFwd *algofft.Plan[complex128]
	colFwd *algofft.Plan[complex128]
}

// IsPowerOfTwo reports whether n is a positive power of two.
func IsPowerOfTwo(n int) bool {
	return n > 0 && bits.OnesCount(uint(n)) == 1
}

// NewPlan2D builds a plan for an Nx-by-Ny grid. Both dimensions must be
// powers of two.
func NewPlan2D(nx, ny int) (*Plan2D, error) {
	if !IsPowerOfTwo(nx) || !IsPowerOfTwo(ny) {
		return nil, fmt.Errorf("fft: NewPlan2D: nx=%d, ny=%d must both be powers of two", nx, ny)
	}
	rowPlan, err := algofft.NewPlan64(nx)
	if err != nil {
		return nil, fmt.Errorf("fft: NewPlan2D: row plan: %w", err)
	}
	colPlan, err := algofft.NewPlan64(ny)
	if err != nil {
		return nil, fmt.Errorf("fft: NewPlan2D: column plan: %w", err)
	}
	return &Plan2D{
		nx:     nx,
		ny:     ny,
		nc:     nx/2 + 1,
		rowFwd: rowPlan,
		colFwd: colPlan,
	}, nil
}

// Stride is the number of floats per grid row (Nx+2).
func (p *Plan2D) Stride() int { return p.nx + 2 }

// Len is the total number of floats the grid buffer must hold.
func (p *Plan2D) Len() int { return p.Stride() * p.ny }

// Forward transforms data in place from a real Nx*Ny image (stored with row
// stride Nx+2, the trailing two floats per row unused) to a half-complex
// grid: each row becomes Nx/2+1 complex values (interleaved real/imag) held
// in the same Nx+2 floats.
func (p *Plan2D) Forward(data []float64) error {
	if len(data) != p.Len() {
		return fmt.Errorf("fft: Forward: data has %d floats, want %d", len(data), p.Len())
	}
	stride := p.Stride()
	row := make([]complex128, p.nx)
	for r := 0; r < p.ny; r++ {
		base := r * stride
		for i := 0; i < p.nx; i++ {
			row[i] = complex(data[base+i], 0)
		}
		if err := p.rowFwd.Forward(row, row); err != nil {
			return fmt.Errorf("fft: Forward: row %d: %w", r, err)
		}
		for k := 0; k < p.nc; k++ {
			data[base+2*k] = real(row[k])
			data[base+2*k+1] = imag(row[k])
		}
	}

	col := make([]complex128, p.ny)
	for k := 0; k < p.nc; k++ {
		for r := 0; r < p.ny; r++ {
			base := r*stride + 2*k
			col[r] = complex(data[base], data[base+1])
		}
		if err := p.colFwd.Forward(col, col); err != nil {
			return fmt.Errorf("fft: Forward: column %d: %w", k, err)
		}
		for r := 0; r < p.ny; r++ {
			base := r*stride + 2*k
			data[base] = real(col[r])
			data[base+1] = imag(col[r])
		}
	}
	return nil
}

// Inverse transforms data in place from a half-complex grid back to a real
// image. When rescale is true the output is normalized (divided by Nx*Ny, a
// true round-trip inverse); when false the raw, unnormalized transform is
// left in place, matching callers that apply their own normalization
// downstream (the gridder's map transform, which normalizes by the sum of
// weights instead).
func (p *Plan2D) Inverse(data []float64, rescale bool) error {
	if len(data) != p.Len() {
		return fmt.Errorf("fft: Inverse: data has %d floats, want %d", len(data), p.Len())
	}
	stride := p.Stride()

	col := make([]complex128, p.ny)
	for k := 0; k < p.nc; k++ {
		for r := 0; r < p.ny; r++ {
			base := r*stride + 2*k
			col[r] = complex(data[base], data[base+1])
		}
		if err := p.colFwd.Inverse(col, col); err != nil {
			return fmt.Errorf("fft: Inverse: column %d: %w", k, err)
		}
		for r := 0; r < p.ny; r++ {
			base := r*stride + 2*k
			data[base] = real(col[r])
			data[base+1] = imag(col[r])
		}
	}

	row := make([]complex128, p.nx)
	for r := 0; r < p.ny; r++ {
		base := r * stride
		for k := 0; k < p.nc; k++ {
			row[k] = complex(data[base+2*k], data[base+2*k+1])
		}
		for k := p.nc; k < p.nx; k++ {
			row[k] = cmplx.Conj(row[p.nx-k])
		}
		if err := p.rowFwd.Inverse(row, row); err != nil {
			return fmt.Errorf("fft: Inverse: row %d: %w", r, err)
		}
		for i := 0; i < p.nx; i++ {
			data[base+i] = real(row[i])
		}
	}

	if !rescale {
		// algofft's Inverse normalizes by the transform length on each axis;
		// the combined row+column pass already divided by Nx*Ny, so undo it
		// for callers that want the unnormalized transform.
		n := float64(p.nx * p.ny)
		for r := 0; r < p.ny; r++ {
			base := r * stride
			for i := 0; i < p.nx; i++ {
				data[base+i] *= n
			}
		}
	}
	return nil
}
