package restore

// Options controls one Restore run.
type Options struct {
	// Bmaj, Bmin, PA describe the restoring beam: major and minor axis
	// FWHM in radians, and position angle in radians. Bmin is swapped
	// with Bmaj if given the larger of the two.
	Bmaj, Bmin, PA float64

	// Subtract, if true, subtracts the convolved model from the map
	// instead of adding it (producing a residual rather than a restored
	// map).
	Subtract bool

	// NoResidual, if true, zeroes the map before restoring, so the
	// output contains only the convolved model.
	NoResidual bool

	// Smooth, if true, pre-smooths the residual map with a fixed 3x3
	// kernel before restoring.
	Smooth bool

	// Freq is the frequency, in Hz, at which to evaluate spectral-index
	// adjusted component fluxes. Zero disables the adjustment even for
	// components that carry a spectral index.
	Freq float64
}

// Option mutates an Options.
type Option func(*Options)

// DefaultOptions returns an Options with no restoring beam set; callers
// must supply WithBeam.
func DefaultOptions() Options {
	return Options{}
}

// WithBeam sets the restoring beam's shape.
func WithBeam(bmaj, bmin, pa float64) Option {
	return func(o *Options) { o.Bmaj, o.Bmin, o.PA = bmaj, bmin, pa }
}

// WithSubtract toggles subtracting the model instead of adding it.
func WithSubtract(enabled bool) Option {
	return func(o *Options) { o.Subtract = enabled }
}

// WithNoResidual toggles zeroing the map before restoring.
func WithNoResidual(enabled bool) Option {
	return func(o *Options) { o.NoResidual = enabled }
}

// WithSmooth toggles pre-smoothing the residual map.
func WithSmooth(enabled bool) Option {
	return func(o *Options) { o.Smooth = enabled }
}

// WithFrequency sets the frequency used for spectral-index adjustment.
func WithFrequency(freq float64) Option {
	return func(o *Options) { o.Freq = freq }
}

// Apply builds an Options from zero or more Option values.
func Apply(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
