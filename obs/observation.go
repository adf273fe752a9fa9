package obs

import "fmt"

// ReadyState is the invariant guard an Observation checks before serving a
// request: each level implies the ones before it are already satisfied.
type ReadyState int

const (
	Index ReadyState = iota
	RawIF
	GetIFState
	Select
)

// ErrNotReady is returned when an Observation is asked for data it has not
// yet paged in to the required ReadyState.
var ErrNotReady = fmt.Errorf("obs: not ready")

// IFData is one paged-in IF: its frequency scale (for converting U,V,W from
// the stored units to wavelengths) and the per-sub-array visibility data.
type IFData struct {
	Freq      float64 // Hz, multiplies stored U,V,W to wavelengths
	Subarrays []Subarray
}

// Observation is the paged visibility-data collaborator the imaging and
// calibration packages call through. Implementations own IF paging, model
// storage, and antenna/baseline bookkeeping; the core never holds more than
// one IF resident at a time and never mutates an Observation concurrently.
type Observation interface {
	// ObReady reports whether the observation has been paged to at least
	// the given ReadyState.
	ObReady(state ReadyState) bool

	// NextIF advances to the next IF satisfying the given requirements,
	// returning its index and true, or false at end of selection.
	NextIF(requireSampled, requireSelected bool) (cif int, ok bool)

	// GetIF returns the paged visibility data for IF cif.
	GetIF(cif int) (IFData, error)

	// PutModel writes the tentative model for IF cif back to the
	// collaborator's storage.
	PutModel(cif int, m Model) error

	// GetModel returns the established model for IF cif.
	GetModel(cif int) (Model, error)

	// CIFState returns the currently active IF index, for save/restore
	// around an operation that must not disturb caller state.
	CIFState() int

	// SetCIFState restores a previously saved active IF index.
	SetCIFState(cif int)

	// FlagBaselineWeights declares IF cif's cached per-baseline weight
	// sums stale, forcing UpdateBaselineWeights to recompute them.
	FlagBaselineWeights(cif int)

	// MergeModel promotes the tentative model into the established model
	// list and applies it to model-visibility predictions across all IFs.
	// When establishTentative is false the tentative model is discarded
	// instead of merged.
	MergeModel(establishTentative bool) error

	// UpdateBaselineWeights recomputes per-baseline sums of weights for IF
	// cif, or for every IF when cif is negative.
	UpdateBaselineWeights(cif int) error

	// EditAntennaCor marks the per-antenna correction for sub-array sub, IF
	// cif, integration ut, antenna itel as flagged (or unflagged).
	EditAntennaCor(sub, cif int, ut float64, itel int, flag bool) error
}

// Projector converts map-plane offsets to absolute sky coordinates for the
// attached FITS writer. difmap's lmtora/lmtodec/Proj_name collaborator.
type Projector interface {
	// ToRA converts an (l, m) offset in radians to right ascension,
	// radians, under this projector's reference position and projection.
	ToRA(l, m float64) float64

	// ToDec converts an (l, m) offset in radians to declination, radians.
	ToDec(l, m float64) float64

	// ProjName returns the projection's FITS axis code (e.g. "SIN", "NCP").
	ProjName() string
}
