package gridder

// Options controls how visibilities are weighted and filtered while
// building a dirty map or dirty beam.
type Options struct {
	UVMin, UVMax float64 // wavelengths; both zero disables uv-range filtering

	TaperValue  float64 // Gaussian taper value at TaperRadius, (0,1); 0 disables
	TaperRadius float64 // wavelengths

	Radial bool // multiply weight by uv radius

	ErrPow float64 // weight *= |wt|^(-ErrPow/2) when ErrPow < -0.001

	UniformBinWidth float64 // UV-grid pixels; 0 selects natural weighting
}

// Option mutates an Options.
type Option func(*Options)

// DefaultOptions returns natural weighting with no taper, no uv-range
// restriction, and no error-power weighting.
func DefaultOptions() Options {
	return Options{}
}

// WithUVRange restricts gridding to visibilities between min and max
// wavelengths from the origin. A min=max=0 disables the restriction.
func WithUVRange(min, max float64) Option {
	return func(o *Options) {
		o.UVMin, o.UVMax = min, max
	}
}

// WithGaussianTaper enables a Gaussian taper of the given value at the given
// radius (wavelengths). Ignored unless 0 < value < 1 and radius > 0.
func WithGaussianTaper(value, radius float64) Option {
	return func(o *Options) {
		if value > 0 && value < 1 && radius > 0 {
			o.TaperValue, o.TaperRadius = value, radius
		}
	}
}

// WithRadialWeighting enables or disables radial (uv-distance) weighting.
func WithRadialWeighting(enabled bool) Option {
	return func(o *Options) {
		o.Radial = enabled
	}
}

// WithErrorPower sets the error-weighting exponent. Ignored unless
// errpow < -0.001.
func WithErrorPower(errpow float64) Option {
	return func(o *Options) {
		if errpow < -0.001 {
			o.ErrPow = errpow
		}
	}
}

// WithUniformBinWidth selects uniform weighting with the given bin width in
// UV-grid pixels. A width of zero (the default) selects natural weighting.
func WithUniformBinWidth(pixels float64) Option {
	return func(o *Options) {
		if pixels > 0 {
			o.UniformBinWidth = pixels
		}
	}
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
