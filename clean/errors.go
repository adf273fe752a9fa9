package clean

import "errors"

// ErrBeamZero is returned when the beam's center pixel is zero, so no
// Jy/beam scale can be established.
var ErrBeamZero = errors.New("clean: beam center is zero")

// ErrInvalidGain is returned when the requested loop gain is not in (0,1].
var ErrInvalidGain = errors.New("clean: invalid gain")
