// Package mapbeam holds the map/beam grid container: the paired dirty
// map/dirty beam pixel arrays, the gridding-function reciprocal transforms,
// the uniform-weighting bin matrix, cell geometry, and the running image
// statistics used by CLEAN to set its search threshold.
package mapbeam
