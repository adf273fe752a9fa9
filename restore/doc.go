// Package restore convolves a clean model with a restoring beam and adds
// it to a residual map, producing the final restored image CLEAN is
// judged by.
package restore
