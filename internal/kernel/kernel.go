// Package kernel provides the fixed table of named 3x3 convolution kernels.
//
// Kernels are plain value types with no behavior: a kernel is copied by
// assignment, so callers and workers never share a matrix.
package kernel

import "sort"

// Kernel is a 3x3 matrix of convolution weights in row-major order.
// Kernel[0][0] is the top-left weight, Kernel[1][1] the center weight.
type Kernel [3][3]float64

// Identity is the pass-through kernel: convolving with it leaves every
// pixel unchanged.
var Identity = Kernel{
	{0, 0, 0},
	{0, 1, 0},
	{0, 0, 0},
}

// table maps kernel names to their weight matrices. The weights are the
// standard image-processing kernels; see
// https://en.wikipedia.org/wiki/Kernel_(image_processing).
var table = map[string]Kernel{
	"edge": {
		{0, -1, 0},
		{-1, 4, -1},
		{0, -1, 0},
	},
	"sharpen": {
		{0, -1, 0},
		{-1, 5, -1},
		{0, -1, 0},
	},
	"blur": {
		{1.0 / 9, 1.0 / 9, 1.0 / 9},
		{1.0 / 9, 1.0 / 9, 1.0 / 9},
		{1.0 / 9, 1.0 / 9, 1.0 / 9},
	},
	"gaussian-blur": {
		{1.0 / 16, 1.0 / 8, 1.0 / 16},
		{1.0 / 8, 1.0 / 4, 1.0 / 8},
		{1.0 / 16, 1.0 / 8, 1.0 / 16},
	},
	"emboss": {
		{-2, -1, 0},
		{-1, 1, 1},
		{0, 1, 2},
	},
	"identity": Identity,
}

// aliases are alternate spellings accepted by Lookup.
var aliases = map[string]string{
	"gauss": "gaussian-blur",
}

// Lookup returns the kernel registered under name.
//
// Unrecognized names resolve to the identity kernel rather than an
// error, so an unknown name produces an unfiltered copy of the input.
// This lenient default is kept deliberately for compatibility with the
// tool's historical behavior.
func Lookup(name string) Kernel {
	if canonical, ok := aliases[name]; ok {
		name = canonical
	}
	if k, ok := table[name]; ok {
		return k
	}
	return Identity
}

// Names returns the canonical kernel names in sorted order, for usage
// messages and completion.
func Names() []string {
	names := make([]string, 0, len(table))
	for name := range table {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
