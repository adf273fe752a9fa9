package fft

// Shift applies the FFT shift theorem to a full-complex Nx-by-Ny array
// stored row-major: multiplying the spatial-domain grid by (-1)^(i+j) shifts
// its transform by (Nx/2, Ny/2). Applying Shift twice is the identity, since
// the sign factor squares to one.
func Shift(nx, ny int, data []complex128) {
	for j := 0; j < ny; j++ {
		base := j * nx
		for i := 0; i < nx; i++ {
			if (i+j)&1 == 1 {
				data[base+i] = -data[base+i]
			}
		}
	}
}

// ConjShift applies the same shift theorem to a half-complex grid in the
// Plan2D storage layout (Nx/2+1 complex values per row, stride Nx+2). Only
// the stored half of each row is flipped; the implicit conjugate-symmetric
// half follows automatically once the row is expanded. Applying ConjShift
// twice is the identity.
func ConjShift(nx, ny int, data []float64) {
	stride := nx + 2
	nc := nx/2 + 1
	for r := 0; r < ny; r++ {
		base := r * stride
		for k := 0; k < nc; k++ {
			if (r+k)&1 == 1 {
				data[base+2*k] = -data[base+2*k]
				data[base+2*k+1] = -data[base+2*k+1]
			}
		}
	}
}
