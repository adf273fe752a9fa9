package restore

// smoothMask is a fixed 3x3 binomial smoothing kernel.
var smoothMask = [3][3]float64{
	{0.0625, 0.125, 0.0625},
	{0.125, 0.25, 0.125},
	{0.0625, 0.125, 0.0625},
}

// smoothResidual applies smoothMask to the cleanable inner quarter of
// plane (stride elements per row), leaving a one-pixel margin at each
// edge of that region unsmoothed.
func smoothResidual(plane []float64, stride, ixMin, ixMax, iyMin, iyMax int) {
	src := make([]float64, len(plane))
	copy(src, plane)

	for iy := iyMin + 1; iy <= iyMax-1; iy++ {
		for ix := ixMin + 1; ix <= ixMax-1; ix++ {
			sum := 0.0
			for my := -1; my <= 1; my++ {
				row := (iy + my) * stride
				for mx := -1; mx <= 1; mx++ {
					sum += src[row+ix+mx] * smoothMask[my+1][mx+1]
				}
			}
			plane[iy*stride+ix] = sum
		}
	}
}
