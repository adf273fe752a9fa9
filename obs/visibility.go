package obs

import "math"

// FlagBits marks per-visibility editing state.
type FlagBits uint8

const (
	// Flagged excludes a visibility from gridding, CLEAN peak search, and
	// self-calibration sums.
	Flagged FlagBits = 1 << iota
)

// Visibility is a single observed (and, once a model exists, predicted)
// complex sample on one baseline at one timestamp.
type Visibility struct {
	U, V, W float64

	Amp, Phs       float64 // observed amplitude/phase
	ModAmp, ModPhs float64 // model-predicted amplitude/phase

	Wt    float64 // non-negative statistical weight
	Flags FlagBits

	AntA, AntB int // antenna indices of the baseline this sample belongs to
}

// Usable reports whether v should participate in gridding or self-cal:
// unflagged, positively weighted, and (when uvmin, uvmax are not both zero)
// within [uvmin, uvmax] wavelengths of the origin.
func (v Visibility) Usable(uvmin, uvmax float64) bool {
	if v.Flags&Flagged != 0 {
		return false
	}
	if v.Wt <= 0 {
		return false
	}
	if uvmin == 0 && uvmax == 0 {
		return true
	}
	r := math.Hypot(v.U, v.V)
	return r >= uvmin && r <= uvmax
}

// Observed returns the observed visibility as a complex number.
func (v Visibility) Observed() complex128 {
	s, c := math.Sincos(v.Phs)
	return complex(v.Amp*c, v.Amp*s)
}

// Model returns the model-predicted visibility as a complex number.
func (v Visibility) Model() complex128 {
	s, c := math.Sincos(v.ModPhs)
	return complex(v.ModAmp*c, v.ModAmp*s)
}

// Residual returns the observed-minus-model complex visibility, the
// quantity the map gridder accumulates.
func (v Visibility) Residual() complex128 {
	return v.Observed() - v.Model()
}
