package selfcal

import (
	"math"
	"math/cmplx"

	"github.com/sabourke/difmap-sub005/obs"
)

// stationWeight sums the ratio weight incoming to station a, the signal
// used both to decide whether a was solved for at all (get_usable's
// role) and to report a zero-weight correction for stations that
// weren't.
func stationWeight(m ratioMatrix, a int) float64 {
	sum := 0.0
	for b := range m[a] {
		sum += m[a][b].weight
	}
	return sum
}

// buildCorrections converts a solved gain vector into per-station
// corrections, rejecting (replacing with a neutral, zero-weight
// correction) any station whose amplitude or phase correction exceeds
// opts.MaxAmpRatio/opts.MaxPhase, per get_cors.
func buildCorrections(m ratioMatrix, gain []complex128, opts Options) []obs.AntennaCorrection {
	cors := make([]obs.AntennaCorrection, len(gain))
	for a := range gain {
		weight := stationWeight(m, a)
		if weight <= 0 {
			cors[a] = obs.AntennaCorrection{AmpCor: 1, PhsCor: 0, State: obs.Uncalibrated}
			continue
		}

		amp := cmplx.Abs(gain[a])
		phs := cmplx.Phase(gain[a])

		bad := false
		if opts.DoAmp && opts.MaxAmpRatio > 1 && (amp > opts.MaxAmpRatio || amp < 1/opts.MaxAmpRatio) {
			bad = true
		}
		if opts.DoPhase && opts.MaxPhase > 0 && math.Abs(phs) > opts.MaxPhase {
			bad = true
		}

		if bad {
			cors[a] = obs.AntennaCorrection{AmpCor: 1, PhsCor: 0, State: obs.Flagged}
		} else {
			cors[a] = obs.AntennaCorrection{AmpCor: amp, PhsCor: phs, State: obs.Calibrated}
		}
	}
	return cors
}

// normalizeCorrections rescales every calibrated station's amplitude
// correction by the geometric mean amplitude correction across cors, so
// applying the corrections leaves the sub-array's overall flux scale
// unchanged. It reports the geometric mean it divided out.
func normalizeCorrections(cors []obs.AntennaCorrection) float64 {
	sumLog, n := 0.0, 0
	for _, c := range cors {
		if c.State == obs.Calibrated && c.AmpCor > 0 {
			sumLog += math.Log(c.AmpCor)
			n++
		}
	}
	if n == 0 {
		return 1
	}
	mean := math.Exp(sumLog / float64(n))
	if mean == 0 {
		return 1
	}
	for i := range cors {
		if cors[i].State == obs.Calibrated {
			cors[i].AmpCor /= mean
		}
	}
	return mean
}

// applyCorrections corrects every usable visibility of integ in place,
// dividing out the amplitude and phase scaling a pair of antenna
// corrections imply: CorrectedVis = Vis / (gain_a * conj(gain_b)), where
// gain_a = AmpCor_a * e^(i PhsCor_a).
func applyCorrections(sub *obs.Subarray, integ *obs.Integration, cors []obs.AntennaCorrection, doAmp, doPhase bool) {
	for i := range integ.Vis {
		v := &integ.Vis[i]
		if i >= len(sub.Baselines) {
			break
		}
		bl := sub.Baselines[i]
		ca, cb := cors[bl.TelA], cors[bl.TelB]
		if ca.State == obs.Uncalibrated || cb.State == obs.Uncalibrated {
			continue
		}

		if doAmp {
			denom := ca.AmpCor * cb.AmpCor
			if denom > 0 {
				v.Amp /= denom
			}
		}
		if doPhase {
			v.Phs -= ca.PhsCor - cb.PhsCor
		}
	}
}
