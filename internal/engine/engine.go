package engine

import (
	"fmt"
	"sync"

	"github.com/parallelimg/convolve/internal/kernel"
	"github.com/parallelimg/convolve/internal/raster"
)

// DefaultWorkers is the worker count used when the caller does not
// choose one.
const DefaultWorkers = 4

// band is one worker's contiguous range of rows: [start, end).
type band struct {
	start, end int
}

// bands splits [0, height) into workers contiguous ranges whose sizes
// differ by at most one row. The first height%workers bands carry the
// extra row. Bands may be empty when workers > height.
func bands(height, workers int) []band {
	base := height / workers
	extra := height % workers

	out := make([]band, workers)
	start := 0
	for i := range out {
		size := base
		if i < extra {
			size++
		}
		out[i] = band{start: start, end: start + size}
		start += size
	}
	return out
}

// clamp constrains v to the range [min, max]. Used for edge-replication
// boundary handling.
func clamp(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// convolvePixel computes the convolved value of channel c of pixel
// (x, y): the weighted sum of the 3x3 neighborhood, with out-of-bounds
// neighbors clamped to the nearest edge.
//
// The caller guarantees (x, y, c) is in range. The float sum narrows
// through int32 so that out-of-range results wrap modulo 256
// deterministically (a direct float-to-uint8 conversion is
// implementation-defined when the value does not fit).
func convolvePixel(src *raster.Raster, x, y, c int, k kernel.Kernel) uint8 {
	var sum float64
	for ky := -1; ky <= 1; ky++ {
		sy := clamp(y+ky, 0, src.Height-1)
		for kx := -1; kx <= 1; kx++ {
			sx := clamp(x+kx, 0, src.Width-1)
			sum += k[ky+1][kx+1] * float64(src.Pix[src.PixOffset(sx, sy, c)])
		}
	}
	return uint8(int32(sum))
}

// convolveBand fills the destination rows [b.start, b.end) from the
// source. The kernel is passed by value, so every worker operates on
// its own copy.
func convolveBand(dst, src *raster.Raster, k kernel.Kernel, b band) {
	for y := b.start; y < b.end; y++ {
		for x := 0; x < src.Width; x++ {
			for c := 0; c < src.Channels; c++ {
				dst.Pix[dst.PixOffset(x, y, c)] = convolvePixel(src, x, y, c, k)
			}
		}
	}
}

// Convolve populates dst with the result of convolving src with k,
// splitting the rows across workers goroutines.
//
// dst must be a separate raster with the same width, height and channel
// count as src; its prior contents are ignored and fully overwritten.
// Convolve returns once every worker has completed, after which dst is
// safe to read. The result is byte-identical for any workers >= 1.
func Convolve(dst, src *raster.Raster, k kernel.Kernel, workers int) error {
	if err := src.Validate(); err != nil {
		return fmt.Errorf("invalid source: %w", err)
	}
	if err := dst.Validate(); err != nil {
		return fmt.Errorf("invalid destination: %w", err)
	}
	if dst.Width != src.Width || dst.Height != src.Height || dst.Channels != src.Channels {
		return fmt.Errorf("destination shape %dx%dx%d does not match source %dx%dx%d",
			dst.Width, dst.Height, dst.Channels, src.Width, src.Height, src.Channels)
	}
	if dst == src {
		return fmt.Errorf("destination must not alias the source raster")
	}
	if workers < 1 {
		return fmt.Errorf("worker count must be at least 1, got %d", workers)
	}

	var wg sync.WaitGroup
	for _, b := range bands(src.Height, workers) {
		wg.Add(1)
		go func(b band) {
			defer wg.Done()
			convolveBand(dst, src, k, b)
		}(b)
	}
	wg.Wait()

	return nil
}
