package raster

import (
	"fmt"
	"os"
	"path/filepath"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Info contains metadata about an image file and a short color summary
// of its contents.
type Info struct {
	// Width is the image width in pixels.
	Width int

	// Height is the image height in pixels.
	Height int

	// Channels is the per-pixel byte count after decoding (see FromImage).
	Channels int

	// Format is the detected image format, by file extension:
	// "png", "jpeg", "gif", "bmp", "tiff", "webp" or "unknown".
	Format string

	// FileSizeBytes is the size of the file on disk in bytes.
	FileSizeBytes int64

	// AverageHex is the mean color of all pixels in "#rrggbb" form.
	AverageHex string

	// AverageHue is the hue of the mean color in degrees (0-360).
	AverageHue float64

	// AverageLightness is the HSL lightness of the mean color (0-1).
	AverageLightness float64
}

// LoadInfo loads the image at path and returns its metadata together
// with an average-color summary.
func LoadInfo(path string) (*Info, error) {
	r, err := Load(path)
	if err != nil {
		return nil, err
	}

	stat, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	format := "unknown"
	switch filepath.Ext(path) {
	case ".png":
		format = "png"
	case ".jpg", ".jpeg":
		format = "jpeg"
	case ".gif":
		format = "gif"
	case ".bmp":
		format = "bmp"
	case ".tif", ".tiff":
		format = "tiff"
	case ".webp":
		format = "webp"
	}

	avg := r.averageColor()
	hue, _, lightness := avg.Hsl()

	return &Info{
		Width:            r.Width,
		Height:           r.Height,
		Channels:         r.Channels,
		Format:           format,
		FileSizeBytes:    stat.Size(),
		AverageHex:       avg.Hex(),
		AverageHue:       hue,
		AverageLightness: lightness,
	}, nil
}

// averageColor computes the mean color across all pixels. Grayscale
// rasters average the single channel into all three components; alpha
// is ignored for 4-channel rasters.
func (r *Raster) averageColor() colorful.Color {
	var sumR, sumG, sumB float64
	pixels := float64(r.Width * r.Height)

	for y := 0; y < r.Height; y++ {
		for x := 0; x < r.Width; x++ {
			off := r.PixOffset(x, y, 0)
			switch r.Channels {
			case 1:
				v := float64(r.Pix[off])
				sumR += v
				sumG += v
				sumB += v
			default:
				sumR += float64(r.Pix[off+0])
				sumG += float64(r.Pix[off+1])
				sumB += float64(r.Pix[off+2])
			}
		}
	}

	return colorful.Color{
		R: sumR / pixels / 255,
		G: sumG / pixels / 255,
		B: sumB / pixels / 255,
	}
}
