package mapbeam

import "errors"

// ErrInvalidGrid is returned when a requested grid size or cell size
// violates the invariants: Nx and Ny must be powers of two strictly
// greater than 32, and cell sizes must be positive and finite.
var ErrInvalidGrid = errors.New("mapbeam: invalid grid")
