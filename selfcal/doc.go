// Package selfcal solves for per-antenna complex gain corrections that
// minimize the weighted residual between observed and model visibilities
// within a sub-array, following the self-calibration formulation of
// Cornwell & Fomalont (in "Synthesis Imaging in Radio Astronomy", 1989).
package selfcal
