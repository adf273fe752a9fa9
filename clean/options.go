package clean

import "github.com/sabourke/difmap-sub005/internal/geom"

// Options controls one Clean run.
type Options struct {
	// MaxComponents bounds the number of components found. A negative
	// value requests that the search also stop at the first negative
	// component (|MaxComponents| is still the iteration limit).
	MaxComponents int

	Cutoff   float64 // Jy/beam; stop when the peak falls to or below this
	Gain     float64 // loop gain, (0,1]
	Compress bool    // merge delta components at equal positions

	// Windows restricts the search to these regions. An empty list
	// searches the whole cleanable inner quarter.
	Windows []geom.Window
}

// Option mutates an Options.
type Option func(*Options)

// DefaultOptions returns a conservative single-iteration-batch default.
func DefaultOptions() Options {
	return Options{
		MaxComponents: 100,
		Cutoff:        0,
		Gain:          0.1,
		Compress:      true,
	}
}

// WithMaxComponents sets the iteration limit (negative also requests
// stop-on-first-negative).
func WithMaxComponents(n int) Option {
	return func(o *Options) { o.MaxComponents = n }
}

// WithCutoff sets the Jy/beam stopping threshold.
func WithCutoff(cutoff float64) Option {
	return func(o *Options) { o.Cutoff = cutoff }
}

// WithGain sets the loop gain.
func WithGain(gain float64) Option {
	return func(o *Options) { o.Gain = gain }
}

// WithCompress enables or disables delta-component merging.
func WithCompress(enabled bool) Option {
	return func(o *Options) { o.Compress = enabled }
}

// WithWindows restricts the search to the given windows.
func WithWindows(windows ...geom.Window) Option {
	return func(o *Options) { o.Windows = windows }
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
