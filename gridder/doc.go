// Package gridder turns selected-IF visibility data into the dirty map and
// dirty beam held by a mapbeam.Grid: uniform-weighting bin counts (uvbin),
// the gridding convolution function and its reciprocal transform (uvgcf),
// the weighted convolution onto the UV grid (uvgrid), and the inverse
// transform back to the image plane (uvtrans).
package gridder
