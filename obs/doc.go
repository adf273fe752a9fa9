// Package obs holds the data model shared by the imaging and calibration
// packages (visibilities, antenna/baseline corrections, clean components,
// array geometry) and the external-interface contracts those packages call
// through: the paged observation collaborator and coordinate projector.
// FITS I/O, plotting, and the command interpreter remain outside this
// package; obs models only the boundary the core calls across.
package obs
