// Command difmap-core images and deconvolves a synthetic interferometric
// UV dataset end to end: grid, invert, CLEAN, and restore, reporting map,
// beam, and CLEAN statistics.
//
// Usage:
//
//	difmap-core [flags]
//
// Examples:
//
//	difmap-core -size 256 -cellsize 0.5 -niter 200 -gain 0.1
//	difmap-core -size 512 -cellsize 0.25 -cutoff 0.002
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"text/tabwriter"

	"github.com/sabourke/difmap-sub005/clean"
	"github.com/sabourke/difmap-sub005/diagnostics"
	"github.com/sabourke/difmap-sub005/gridder"
	"github.com/sabourke/difmap-sub005/mapbeam"
	"github.com/sabourke/difmap-sub005/obs"
	"github.com/sabourke/difmap-sub005/restore"
)

const arcsecToRadians = math.Pi / (180 * 3600)

func main() {
	size := flag.Int("size", 256, "map and beam dimension in pixels (power of two, >32)")
	cellsize := flag.Float64("cellsize", 0.5, "pixel size in arcseconds")
	nvis := flag.Int("nvis", 400, "number of synthetic visibility pairs (sample plus conjugate) to simulate")
	maxUV := flag.Float64("maxuv", 8e4, "maximum UV radius of the synthetic data, wavelengths")
	niter := flag.Int("niter", 200, "maximum CLEAN components")
	gain := flag.Float64("gain", 0.1, "CLEAN loop gain")
	cutoff := flag.Float64("cutoff", 0, "CLEAN stopping flux, Jy/beam")
	restoreBeam := flag.Float64("beam", 0, "restoring beam FWHM, arcseconds (0 selects the fitted clean-beam size)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: difmap-core [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Images and deconvolves a synthetic UV dataset.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	sink := diagnostics.Default()

	if err := run(*size, *cellsize, *nvis, *maxUV, *niter, *gain, *cutoff, *restoreBeam, sink); err != nil {
		sink.Errorf("difmap-core: %v", err)
		os.Exit(1)
	}
}

func run(size int, cellsizeArcsec float64, nvis int, maxUV float64, niter int, gain, cutoff, restoreBeamArcsec float64, sink diagnostics.Sink) error {
	inc := cellsizeArcsec * arcsecToRadians

	grid, err := mapbeam.NewGrid(size, size, inc, inc)
	if err != nil {
		return fmt.Errorf("build grid: %w", err)
	}

	gr, err := gridder.New(grid, gridder.WithUniformBinWidth(2))
	if err != nil {
		return fmt.Errorf("build gridder: %w", err)
	}

	vis := syntheticVisibilities(nvis, maxUV)

	beamRep, err := gr.BuildBeam(vis)
	if err != nil {
		return fmt.Errorf("build beam: %w", err)
	}
	if err := gr.UVTrans(grid.Beam); err != nil {
		return fmt.Errorf("transform beam: %w", err)
	}

	if _, err := gr.BuildMap(vis); err != nil {
		return fmt.Errorf("build map: %w", err)
	}
	if err := gr.UVTrans(grid.Map); err != nil {
		return fmt.Errorf("transform map: %w", err)
	}

	model := &obs.Model{}
	cleanOpts := clean.Apply(clean.WithMaxComponents(niter), clean.WithGain(gain), clean.WithCutoff(cutoff))
	cleanRep, err := clean.Clean(grid, model, cleanOpts, sink)
	if err != nil {
		return fmt.Errorf("clean: %w", err)
	}

	bmaj, bmin, bpa := beamRep.EstBeamMaj, beamRep.EstBeamMin, beamRep.EstBeamPA
	if restoreBeamArcsec > 0 {
		bmaj = restoreBeamArcsec * arcsecToRadians
		bmin = bmaj
		bpa = 0
	}
	restoreOpts := restore.Apply(restore.WithBeam(bmaj, bmin, bpa))
	restoreRep, err := restore.Restore(grid, *model, restoreOpts)
	if err != nil {
		return fmt.Errorf("restore: %w", err)
	}

	printReport(beamRep, cleanRep, restoreRep, bmaj, bmin, bpa)
	return nil
}

func printReport(beamRep gridder.Report, cleanRep clean.Report, restoreRep restore.Report, bmaj, bmin, bpa float64) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Metric\tValue\n")
	fmt.Fprintf(tw, "------\t-----\n")
	fmt.Fprintf(tw, "Visibilities gridded\t%d\n", beamRep.Total)
	fmt.Fprintf(tw, "Estimated noise (Jy/beam)\t%.4g\n", beamRep.EstNoise)
	fmt.Fprintf(tw, "Restoring beam (maj,min,pa rad)\t%.4g, %.4g, %.4g\n", bmaj, bmin, bpa)
	fmt.Fprintf(tw, "CLEAN components\t%d\n", cleanRep.Components)
	fmt.Fprintf(tw, "CLEAN total flux (Jy)\t%.4g\n", cleanRep.TotalFlux)
	fmt.Fprintf(tw, "CLEAN stop reason\t%s\n", cleanRep.Stop)
	fmt.Fprintf(tw, "Residual RMS (Jy/beam)\t%.4g\n", cleanRep.ResidualRMS)
	fmt.Fprintf(tw, "Restored map peak (Jy/beam)\t%.4g\n", restoreRep.Peak)
	fmt.Fprintf(tw, "Restored map RMS (Jy/beam)\t%.4g\n", restoreRep.RMS)
	tw.Flush()
}

// syntheticVisibilities stands in for a real UV-data reader: it places n
// unit-weight visibilities of a single unresolved point source, each
// followed by its conjugate at (-u,-v) (2n in all), on a set of
// concentric, rotated UV rings within maxUV wavelengths.
func syntheticVisibilities(n int, maxUV float64) []obs.Visibility {
	vis := make([]obs.Visibility, 0, n)
	for i := 0; i < n; i++ {
		theta := 2 * math.Pi * float64(i) / float64(n)
		r := maxUV * (0.05 + 0.9*float64(i%7)/7)
		u := r * math.Cos(theta)
		v := r * math.Sin(theta)
		vis = append(vis, obs.Visibility{U: u, V: v, Wt: 1, Amp: 1, Phs: 0, ModAmp: 0, ModPhs: 0})
		vis = append(vis, obs.Visibility{U: -u, V: -v, Wt: 1, Amp: 1, Phs: 0, ModAmp: 0, ModPhs: 0})
	}
	return vis
}
