package selfcal

// Options controls one self-calibration run against a sub-array.
type Options struct {
	// DoAmp, DoPhase select which parts of the solved complex gain are
	// applied; the other part is forced to unity/zero per station.
	DoAmp, DoPhase bool

	// SolutionInterval is the piecewise solution bin width, in seconds.
	// A value <= 0 requests a separate solution for every integration.
	SolutionInterval float64

	// SingleSolution requests one overall solution for the entire time
	// range, ignoring SolutionInterval.
	SingleSolution bool

	// GaussianTaperValue and GaussianTaperRadius define an optional
	// down-weighting of short baselines during the gain solve: each
	// weight is multiplied by one minus a gaussian in UV radius, a factor
	// that is 0 at the origin and equals GaussianTaperValue at UV radius
	// GaussianTaperRadius wavelengths. Zero value or radius disables the
	// taper.
	GaussianTaperValue  float64
	GaussianTaperRadius float64

	// MinStations is the minimum number of stations with usable data
	// required in a solution bin before a solution is attempted.
	MinStations int

	// Float disables the final cross-antenna amplitude renormalization,
	// letting the overall flux scale drift.
	Float bool

	// MaxAmpRatio and MaxPhase bound an acceptable solved correction:
	// an amplitude correction outside [1/MaxAmpRatio, MaxAmpRatio], or a
	// phase correction whose magnitude exceeds MaxPhase (radians), is
	// rejected and replaced with a neutral, zero-weight correction.
	// A zero value disables the corresponding check.
	MaxAmpRatio float64
	MaxPhase    float64

	// LoopGain damps each gain-solve iteration's update, (0,1].
	LoopGain float64

	// MaxIterations bounds the gain-solve iteration count per bin.
	MaxIterations int

	// ConvergenceTol is the fraction of the first iteration's residual
	// below which successive-iteration improvement is considered
	// converged.
	ConvergenceTol float64
}

// Option mutates an Options.
type Option func(*Options)

// DefaultOptions returns phase-only self-cal with a 0.5 loop gain, up to
// 100 iterations per bin, and a separate solution per integration.
func DefaultOptions() Options {
	return Options{
		DoPhase:       true,
		LoopGain:      0.5,
		MaxIterations: 100,
		ConvergenceTol: 1e-6,
		MinStations:   3,
	}
}

func WithAmplitude(enabled bool) Option { return func(o *Options) { o.DoAmp = enabled } }
func WithPhase(enabled bool) Option     { return func(o *Options) { o.DoPhase = enabled } }

func WithSolutionInterval(seconds float64) Option {
	return func(o *Options) { o.SolutionInterval = seconds }
}

func WithSingleSolution(enabled bool) Option {
	return func(o *Options) { o.SingleSolution = enabled }
}

func WithGaussianTaper(value, radius float64) Option {
	return func(o *Options) {
		if value > 0 && value < 1 && radius > 0 {
			o.GaussianTaperValue, o.GaussianTaperRadius = value, radius
		}
	}
}

func WithMinStations(n int) Option { return func(o *Options) { o.MinStations = n } }
func WithFloat(enabled bool) Option { return func(o *Options) { o.Float = enabled } }

func WithMaxAmpRatio(ratio float64) Option { return func(o *Options) { o.MaxAmpRatio = ratio } }
func WithMaxPhase(radians float64) Option  { return func(o *Options) { o.MaxPhase = radians } }

func WithLoopGain(gain float64) Option { return func(o *Options) { o.LoopGain = gain } }

func WithMaxIterations(n int) Option { return func(o *Options) { o.MaxIterations = n } }

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
