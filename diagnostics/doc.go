// Package diagnostics provides the leveled, human-readable operational
// logging sink every package reports progress and failures through,
// standing in for difmap's lprintf diagnostic sink.
package diagnostics
