package restore

import (
	"math"
	"sync"

	"github.com/meko-christian/algo-approx"
)

// expTableSize is the number of entries in the shared exponential lookup
// table used to evaluate the restoring-beam gaussian.
const expTableSize = 1024

// nsigma bounds how many standard deviations of the restoring-beam
// gaussian are sampled on each axis before a component's contribution is
// treated as zero.
const nsigma = 4.5

// fwhmToSigma converts a gaussian FWHM to a standard deviation.
const fwhmToSigma = 1 / 2.3548200450309493 // 1/sqrt(log(256))

var (
	expTableOnce sync.Once
	expTable     [expTableSize]float64
)

// expTableConv is the scale factor mapping a gaussian exponent argument to
// an expTable index; it depends only on expTableSize and nsigma so it is a
// package constant in all but name.
var expTableConv = float64(expTableSize) / (0.5 * nsigma * nsigma)

func initExpTable() {
	for i := 0; i < expTableSize; i++ {
		expTable[i] = approx.FastExp(-float64(i) / expTableConv)
	}
}

// tabulatedGaussian evaluates exp(-arg) via the shared lookup table,
// returning 0 once arg exceeds the table's range (beyond nsigma standard
// deviations).
func tabulatedGaussian(arg float64) float64 {
	expTableOnce.Do(initExpTable)
	idx := int(arg * expTableConv)
	if idx >= expTableSize {
		return 0
	}
	return expTable[idx]
}

// gaussianShape describes an elliptical gaussian by its FWHM axes and
// position angle (radians, measured from north through east).
type gaussianShape struct {
	Major, Minor, PA float64
}

// convolveGaussians returns the gaussian resulting from convolving a with
// b, via the closed form of Wild (1970), Aust. J. Phys. 23, 113-115.
func convolveGaussians(a, b gaussianShape) gaussianShape {
	majA, minA := a.Major*a.Major, a.Minor*a.Minor
	majB, minB := b.Major*b.Major, b.Minor*b.Minor

	sum7 := (majA-minA)*math.Sin(2*a.PA) + (majB-minB)*math.Sin(2*b.PA)
	sum8 := (majA + minA) + (majB + minB)
	sum9 := (majA-minA)*math.Cos(2*a.PA) + (majB-minB)*math.Cos(2*b.PA)

	var angle float64
	if sum7 != 0 || sum9 != 0 {
		angle = 0.5 * math.Atan2(sum7, sum9)
	}

	sumVar := math.Hypot(sum7, sum9)
	major := math.Sqrt(0.5 * (sum8 + sumVar))
	minor := math.Sqrt(math.Abs(0.5 * (sum8 - sumVar)))

	return gaussianShape{Major: major, Minor: minor, PA: angle}
}
