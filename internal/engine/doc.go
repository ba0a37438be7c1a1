// Package engine applies a 3x3 convolution kernel to a raster in
// parallel.
//
// # Partitioning
//
// Convolve splits the image's rows into one contiguous band per worker.
// With base = height/workers and extra = height%workers, the first
// extra bands get base+1 rows and the rest get base; bands never
// overlap and together cover every row exactly once. When workers
// exceeds the row count, the surplus workers receive empty bands and do
// nothing.
//
// # Concurrency
//
// One goroutine runs per band. Workers share the source raster
// read-only, each receives its own copy of the kernel, and each writes
// only the destination bytes inside its own band, so no byte has more
// than one writer and no locking is needed. Convolve blocks on a join
// barrier and returns only after every worker has finished, at which
// point the whole destination is safe to read.
//
// # Boundary handling
//
// Neighbor coordinates outside the image are clamped to the nearest
// valid edge (edge replication). The convolution sum is narrowed to a
// byte by truncating toward zero and wrapping modulo 256, matching the
// historical behavior of this filter; sums outside [0, 255] wrap rather
// than saturate.
package engine
