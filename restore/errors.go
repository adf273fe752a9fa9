package restore

import "errors"

// ErrUnsupportedComponent is returned when a model contains a component
// kind restoration cannot convolve (only obs.Delta and obs.Gaussian are
// supported).
var ErrUnsupportedComponent = errors.New("restore: unsupported component kind")
