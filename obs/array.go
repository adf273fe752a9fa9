package obs

// Station is one antenna of a sub-array.
type Station struct {
	Name string

	// AntFix forces this antenna's self-cal gain to 1+0i rather than
	// solving for it.
	AntFix bool

	// AntWt is an extra per-antenna weighting multiplier folded into
	// self-cal's per-baseline weight term alongside the visibility weight.
	AntWt float64
}

// Baseline indexes the two stations (by position in Subarray.Stations) a
// visibility was measured on.
type Baseline struct {
	TelA, TelB int
}

// Integration is every visibility measured across all baselines at one
// timestamp.
type Integration struct {
	UT  float64
	Vis []Visibility
}

// Subarray groups the stations, baselines, and time-ordered integrations
// that self-calibration solves jointly; a multi-sub-array observation
// solves each Subarray independently before a final cross-sub-array
// amplitude renormalization.
type Subarray struct {
	Stations     []Station
	Baselines    []Baseline
	Integrations []Integration
}
