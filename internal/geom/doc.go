// Package geom implements the two shared geometric predicates used to
// describe clean-component shapes and clean-window regions: an elliptical
// locus with bounding-rectangle containment tests, and a rectangular window
// list with pixel-range conversion.
package geom
