package raster

import (
	"bytes"
	"image"
	"image/color"
	"testing"
)

func TestNew(t *testing.T) {
	r, err := New(5, 3, 4)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if r.Width != 5 || r.Height != 3 || r.Channels != 4 {
		t.Errorf("shape: got %dx%dx%d, want 5x3x4", r.Width, r.Height, r.Channels)
	}
	if len(r.Pix) != 5*3*4 {
		t.Errorf("buffer length: got %d, want %d", len(r.Pix), 5*3*4)
	}
	if err := r.Validate(); err != nil {
		t.Errorf("Validate on fresh raster: %v", err)
	}
}

func TestNew_InvalidShape(t *testing.T) {
	tests := []struct {
		name    string
		w, h, c int
	}{
		{"zero width", 0, 3, 4},
		{"zero height", 5, 0, 4},
		{"zero channels", 5, 3, 0},
		{"negative width", -1, 3, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.w, tt.h, tt.c); err == nil {
				t.Errorf("New(%d, %d, %d): expected error", tt.w, tt.h, tt.c)
			}
		})
	}
}

func TestPixOffset(t *testing.T) {
	r := &Raster{Width: 4, Height: 3, Channels: 3}

	tests := []struct {
		x, y, c int
		want    int
	}{
		{0, 0, 0, 0},
		{0, 0, 2, 2},
		{1, 0, 0, 3},
		{0, 1, 0, 12},
		{3, 2, 2, (2*4+3)*3 + 2},
	}

	for _, tt := range tests {
		if got := r.PixOffset(tt.x, tt.y, tt.c); got != tt.want {
			t.Errorf("PixOffset(%d, %d, %d): got %d, want %d", tt.x, tt.y, tt.c, got, tt.want)
		}
	}
}

func TestValidate(t *testing.T) {
	var nilRaster *Raster
	if err := nilRaster.Validate(); err == nil {
		t.Error("Validate on nil raster: expected error")
	}

	short := &Raster{Width: 2, Height: 2, Channels: 1, Pix: make([]byte, 3)}
	if err := short.Validate(); err == nil {
		t.Error("Validate with short buffer: expected error")
	}
}

func TestFromImage_Gray(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 3, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			img.SetGray(x, y, color.Gray{Y: uint8(10*y + x)})
		}
	}

	r := FromImage(img)

	if r.Channels != 1 {
		t.Fatalf("channels: got %d, want 1", r.Channels)
	}
	want := []byte{0, 1, 2, 10, 11, 12}
	if !bytes.Equal(r.Pix, want) {
		t.Errorf("pixels: got %v, want %v", r.Pix, want)
	}
}

func TestFromImage_Color(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.SetNRGBA(0, 0, color.NRGBA{R: 1, G: 2, B: 3, A: 255})
	img.SetNRGBA(1, 0, color.NRGBA{R: 4, G: 5, B: 6, A: 128})

	r := FromImage(img)

	if r.Channels != 4 {
		t.Fatalf("channels: got %d, want 4", r.Channels)
	}
	want := []byte{1, 2, 3, 255, 4, 5, 6, 128}
	if !bytes.Equal(r.Pix, want) {
		t.Errorf("pixels: got %v, want %v", r.Pix, want)
	}
}

func TestFromImage_NonZeroOrigin(t *testing.T) {
	base := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	base.SetNRGBA(2, 2, color.NRGBA{R: 200, G: 100, B: 50, A: 255})
	sub := base.SubImage(image.Rect(2, 2, 4, 4)).(*image.NRGBA)

	r := FromImage(sub)

	if r.Width != 2 || r.Height != 2 {
		t.Fatalf("shape: got %dx%d, want 2x2", r.Width, r.Height)
	}
	if r.Pix[0] != 200 || r.Pix[1] != 100 || r.Pix[2] != 50 {
		t.Errorf("pixel (0,0): got %v, want [200 100 50 ...]", r.Pix[:4])
	}
}

func TestImage_RoundTrip(t *testing.T) {
	tests := []struct {
		name     string
		channels int
	}{
		{"grayscale", 1},
		{"nrgba", 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := New(3, 3, tt.channels)
			if err != nil {
				t.Fatalf("New failed: %v", err)
			}
			for i := range r.Pix {
				r.Pix[i] = byte(i * 7)
			}
			if tt.channels == 4 {
				// Keep alpha opaque so the NRGBA round trip is lossless.
				for i := 3; i < len(r.Pix); i += 4 {
					r.Pix[i] = 255
				}
			}

			img, err := r.Image()
			if err != nil {
				t.Fatalf("Image failed: %v", err)
			}

			back := FromImage(img)
			if back.Width != r.Width || back.Height != r.Height || back.Channels != r.Channels {
				t.Fatalf("shape changed: got %dx%dx%d", back.Width, back.Height, back.Channels)
			}
			if !bytes.Equal(back.Pix, r.Pix) {
				t.Errorf("pixels changed on round trip:\n got %v\nwant %v", back.Pix, r.Pix)
			}
		})
	}
}

func TestImage_ThreeChannels(t *testing.T) {
	r := &Raster{Width: 1, Height: 1, Channels: 3, Pix: []byte{9, 8, 7}}

	img, err := r.Image()
	if err != nil {
		t.Fatalf("Image failed: %v", err)
	}

	nrgba, ok := img.(*image.NRGBA)
	if !ok {
		t.Fatalf("expected *image.NRGBA, got %T", img)
	}
	if got := nrgba.NRGBAAt(0, 0); got != (color.NRGBA{R: 9, G: 8, B: 7, A: 255}) {
		t.Errorf("pixel: got %v", got)
	}
}

func TestImage_UnsupportedChannels(t *testing.T) {
	r := &Raster{Width: 1, Height: 1, Channels: 2, Pix: []byte{0, 0}}
	if _, err := r.Image(); err == nil {
		t.Error("expected error for 2-channel raster")
	}
}
