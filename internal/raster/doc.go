// Package raster provides the byte-buffer image representation used by
// the convolution engine, plus the decode/encode bridge to image files
// on disk.
//
// # Layout
//
// A Raster stores pixels in row-major, pixel-major, channel-minor order:
// the byte for pixel (x, y), channel c, sits at ((y*Width+x)*Channels)+c.
// Coordinates are 0-based with the origin at the top-left corner, X
// increasing rightward and Y increasing downward.
//
// # Channels
//
// The channel count is carried explicitly rather than fixed: grayscale
// images decode to 1 channel, everything else to 4 (NRGBA). The engine
// is channel-count agnostic; it only requires source and destination to
// agree.
//
// # File formats
//
// Load decodes PNG, JPEG and GIF via the standard library, and BMP,
// TIFF and WebP via golang.org/x/image. Save encodes by file extension
// (PNG, JPEG, BMP), defaulting to PNG.
package raster
