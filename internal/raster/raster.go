package raster

import (
	"fmt"
	"image"
	"image/draw"
)

// Raster is a decoded image: a Width x Height grid of pixels with a
// fixed number of channels, stored as a flat byte buffer.
//
// The buffer length is always exactly Width*Height*Channels. A Raster
// used as a convolution source is never written; a destination Raster
// is allocated with New and populated by the engine.
type Raster struct {
	// Width is the image width in pixels.
	Width int

	// Height is the image height in pixels.
	Height int

	// Channels is the number of bytes per pixel (1 for grayscale,
	// 4 for NRGBA).
	Channels int

	// Pix holds the pixel data in row-major, channel-minor order.
	Pix []byte
}

// New allocates a zeroed raster with the given shape.
//
// All three dimensions must be positive; the buffer is sized exactly
// width*height*channels.
func New(width, height, channels int) (*Raster, error) {
	if width <= 0 || height <= 0 || channels <= 0 {
		return nil, fmt.Errorf("invalid raster shape %dx%dx%d: all dimensions must be positive", width, height, channels)
	}
	return &Raster{
		Width:    width,
		Height:   height,
		Channels: channels,
		Pix:      make([]byte, width*height*channels),
	}, nil
}

// PixOffset returns the index of the byte for pixel (x, y), channel c.
// It performs no bounds checking; callers keep coordinates in range.
func (r *Raster) PixOffset(x, y, c int) int {
	return (y*r.Width+x)*r.Channels + c
}

// Validate reports whether the raster's shape and buffer agree.
func (r *Raster) Validate() error {
	if r == nil {
		return fmt.Errorf("nil raster")
	}
	if r.Width <= 0 || r.Height <= 0 || r.Channels <= 0 {
		return fmt.Errorf("invalid raster shape %dx%dx%d: all dimensions must be positive", r.Width, r.Height, r.Channels)
	}
	if want := r.Width * r.Height * r.Channels; len(r.Pix) != want {
		return fmt.Errorf("raster buffer length %d does not match shape %dx%dx%d (want %d)", len(r.Pix), r.Width, r.Height, r.Channels, want)
	}
	return nil
}

// FromImage converts a decoded image into a Raster.
//
// Grayscale images become 1-channel rasters; every other color model is
// drawn into an NRGBA buffer and becomes a 4-channel raster. The pixel
// data is copied, so the returned raster does not alias the source
// image's storage.
func FromImage(img image.Image) *Raster {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	if gray, ok := img.(*image.Gray); ok {
		r := &Raster{Width: width, Height: height, Channels: 1, Pix: make([]byte, width*height)}
		for y := 0; y < height; y++ {
			row := gray.Pix[y*gray.Stride : y*gray.Stride+width]
			copy(r.Pix[y*width:], row)
		}
		return r
	}

	nrgba := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.Draw(nrgba, nrgba.Bounds(), img, bounds.Min, draw.Src)

	r := &Raster{Width: width, Height: height, Channels: 4, Pix: make([]byte, width*height*4)}
	for y := 0; y < height; y++ {
		row := nrgba.Pix[y*nrgba.Stride : y*nrgba.Stride+width*4]
		copy(r.Pix[y*width*4:], row)
	}
	return r
}

// Image converts the raster back to a standard image for encoding.
//
// 1-channel rasters become *image.Gray, 4-channel rasters *image.NRGBA.
// 3-channel rasters are expanded to NRGBA with opaque alpha.
func (r *Raster) Image() (image.Image, error) {
	switch r.Channels {
	case 1:
		img := image.NewGray(image.Rect(0, 0, r.Width, r.Height))
		for y := 0; y < r.Height; y++ {
			copy(img.Pix[y*img.Stride:], r.Pix[y*r.Width:(y+1)*r.Width])
		}
		return img, nil
	case 3:
		img := image.NewNRGBA(image.Rect(0, 0, r.Width, r.Height))
		for y := 0; y < r.Height; y++ {
			for x := 0; x < r.Width; x++ {
				src := r.PixOffset(x, y, 0)
				dst := img.PixOffset(x, y)
				img.Pix[dst+0] = r.Pix[src+0]
				img.Pix[dst+1] = r.Pix[src+1]
				img.Pix[dst+2] = r.Pix[src+2]
				img.Pix[dst+3] = 0xff
			}
		}
		return img, nil
	case 4:
		img := image.NewNRGBA(image.Rect(0, 0, r.Width, r.Height))
		for y := 0; y < r.Height; y++ {
			copy(img.Pix[y*img.Stride:], r.Pix[y*r.Width*4:(y+1)*r.Width*4])
		}
		return img, nil
	default:
		return nil, fmt.Errorf("cannot encode %d-channel raster as an image", r.Channels)
	}
}
