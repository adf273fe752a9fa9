package gridder

import "errors"

// ErrNoData is returned when uv-range or Nyquist-limit filtering eliminates
// every visibility in the sample set.
var ErrNoData = errors.New("gridder: no data")
