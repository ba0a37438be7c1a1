// Package app wires the command-line surface to the convolution engine.
//
// It owns everything the engine treats as external: argument and
// flag parsing, kernel-name lookup, image load and save, optional
// pre-resize, metadata reporting and wall-clock timing. The pipeline
// is: load -> (resize) -> convolve -> save.
//
// # Exit codes
//
//   - 0: success
//   - 1: load, convolve or save failure
//   - 2: usage error (bad flags or wrong argument count)
//
// An unknown kernel name is not an error: the lookup falls back to the
// identity kernel and the input passes through unfiltered.
package app
