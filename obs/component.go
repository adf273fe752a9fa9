package obs

// ComponentKind is a closed variant of clean-component shapes. CLEAN only
// ever produces Delta components; Gaussian and Other are recognized when
// reading an externally supplied model. Restoration convolves Gaussian
// components with the restoring beam and rejects Other.
type ComponentKind int

const (
	Delta ComponentKind = iota
	Gaussian
	Other
)

func (k ComponentKind) String() string {
	switch k {
	case Gaussian:
		return "gaussian"
	case Other:
		return "other"
	default:
		return "delta"
	}
}

// Component is one entry of a clean model: a flux at a position, optionally
// elongated, optionally spectrally indexed, optionally held fixed against
// further modification.
type Component struct {
	Kind ComponentKind

	X, Y float64 // position, radians
	Flux float64 // Jansky

	Major float64 // major-axis FWHM, radians (zero for Delta)
	Ratio float64 // minor/major axis ratio, [0,1]
	Phi   float64 // position angle, radians

	Freq0     float64 // reference frequency, Hz (zero if not spectrally indexed)
	SpecIndex float64

	Free bool // false once fixed against further CLEAN/self-cal adjustment
}

// SamePosition reports whether c and other sit at the same (X, Y), the
// criterion used to merge delta components when compression is enabled.
func (c Component) SamePosition(other Component) bool {
	return c.X == other.X && c.Y == other.Y
}

// Model is an ordered list of components, merged and consumed in insertion
// order by CLEAN, restoration, and self-calibration.
type Model struct {
	Components []Component
}

// Add appends c to the model.
func (m *Model) Add(c Component) {
	m.Components = append(m.Components, c)
}

// Compress merges delta components at equal positions, summing their flux.
// Only Delta components participate; all others pass through unchanged.
func (m *Model) Compress() {
	merged := make([]Component, 0, len(m.Components))
	for _, c := range m.Components {
		if c.Kind != Delta {
			merged = append(merged, c)
			continue
		}
		found := false
		for i := range merged {
			if merged[i].Kind == Delta && merged[i].SamePosition(c) {
				merged[i].Flux += c.Flux
				found = true
				break
			}
		}
		if !found {
			merged = append(merged, c)
		}
	}
	m.Components = merged
}

// TotalFlux returns the sum of flux over all components.
func (m Model) TotalFlux() float64 {
	total := 0.0
	for _, c := range m.Components {
		total += c.Flux
	}
	return total
}
