package selfcal

import "github.com/sabourke/difmap-sub005/obs"

// bin is one solution interval: the inclusive range of integration indices
// [first,last] it covers, and its UT center (seconds), used both to label
// the solution and as the center of the smoothing kernel applied later.
type bin struct {
	first, last int
	center      float64
}

// buildBins partitions sub's time-ordered integrations into solution
// bins. SingleSolution yields one bin spanning everything; otherwise a
// new bin starts whenever the elapsed time since the bin's first
// integration exceeds solutionInterval seconds (zero or negative requests
// one bin per integration).
func buildBins(sub *obs.Subarray, solutionInterval float64, single bool) []bin {
	n := len(sub.Integrations)
	if n == 0 {
		return nil
	}
	if single {
		return []bin{{first: 0, last: n - 1, center: binCenter(sub, 0, n-1)}}
	}

	var bins []bin
	first := 0
	for i := 1; i <= n; i++ {
		elapsed := 0.0
		if i < n {
			elapsed = sub.Integrations[i].UT - sub.Integrations[first].UT
		}
		if i == n || solutionInterval <= 0 || elapsed > solutionInterval {
			last := i - 1
			bins = append(bins, bin{first: first, last: last, center: binCenter(sub, first, last)})
			first = i
		}
	}
	return bins
}

func binCenter(sub *obs.Subarray, first, last int) float64 {
	return (sub.Integrations[first].UT + sub.Integrations[last].UT) / 2
}
