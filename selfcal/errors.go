package selfcal

import "errors"

// ErrNoUsableData is returned when a sub-array has no baseline with a
// usable, model-predicted visibility anywhere in its time range.
var ErrNoUsableData = errors.New("selfcal: no usable visibilities")

// ErrTooFewStations is returned when a sub-array has fewer than two
// stations, so no baseline gain can be solved.
var ErrTooFewStations = errors.New("selfcal: fewer than two stations")
