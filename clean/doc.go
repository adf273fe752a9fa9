// Package clean implements the Högbom CLEAN deconvolver: repeated windowed
// peak search, beam subtraction, and delta-component accumulation into a
// model, run against a mapbeam.Grid until a flux or iteration limit is
// reached.
package clean
