package app

import (
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/disintegration/imaging"

	"github.com/parallelimg/convolve/internal/engine"
	"github.com/parallelimg/convolve/internal/kernel"
	"github.com/parallelimg/convolve/internal/raster"
)

// defaultOutput is where the filtered image lands unless -o overrides it.
const defaultOutput = "output.png"

// config holds the fully parsed invocation.
type config struct {
	input      string
	output     string
	kernelName string
	workers    int
	scale      float64
	showInfo   bool
}

// Run parses args, executes the convolution pipeline and returns the
// process exit code.
func Run(args []string) int {
	fs := flag.NewFlagSet("convolve", flag.ContinueOnError)
	output := fs.String("o", defaultOutput, "output image `path`")
	workers := fs.Int("workers", engine.DefaultWorkers, "number of concurrent workers")
	scale := fs.Float64("scale", 1.0, "resize `factor` applied before filtering")
	showInfo := fs.Bool("info", false, "log source image metadata before filtering")
	fs.Usage = func() {
		out := fs.Output()
		fmt.Fprintf(out, "Usage: convolve [flags] <input-path> <kernel-name>\n\n")
		fmt.Fprintf(out, "Kernels: %s\n", strings.Join(kernel.Names(), ", "))
		fmt.Fprintf(out, "An unrecognized kernel name applies the identity kernel.\n\nFlags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 2 {
		fs.Usage()
		return 2
	}

	cfg := config{
		input:      fs.Arg(0),
		output:     *output,
		kernelName: fs.Arg(1),
		workers:    *workers,
		scale:      *scale,
		showInfo:   *showInfo,
	}
	if err := run(cfg); err != nil {
		log.Printf("convolve: %v", err)
		return 1
	}
	return 0
}

// run executes the load -> resize -> convolve -> save pipeline.
func run(cfg config) error {
	start := time.Now()

	if cfg.showInfo {
		info, err := raster.LoadInfo(cfg.input)
		if err != nil {
			return err
		}
		log.Printf("%s: %dx%d %s, %d channels, %d bytes, avg color %s (hue %.0f, lightness %.2f)",
			cfg.input, info.Width, info.Height, info.Format, info.Channels,
			info.FileSizeBytes, info.AverageHex, info.AverageHue, info.AverageLightness)
	}

	src, err := raster.Load(cfg.input)
	if err != nil {
		return err
	}

	if cfg.scale != 1.0 {
		src, err = rescale(src, cfg.scale)
		if err != nil {
			return err
		}
	}

	dst, err := raster.New(src.Width, src.Height, src.Channels)
	if err != nil {
		return err
	}

	k := kernel.Lookup(cfg.kernelName)
	if err := engine.Convolve(dst, src, k, cfg.workers); err != nil {
		return err
	}

	if err := raster.Save(cfg.output, dst); err != nil {
		return err
	}

	log.Printf("wrote %s (%s kernel, %d workers) in %v",
		cfg.output, cfg.kernelName, cfg.workers, time.Since(start).Round(time.Millisecond))
	return nil
}

// rescale resizes the raster by the given factor using Lanczos
// resampling before the convolution pass.
func rescale(src *raster.Raster, scale float64) (*raster.Raster, error) {
	if scale <= 0 {
		return nil, fmt.Errorf("scale factor must be positive, got %v", scale)
	}

	width := int(float64(src.Width) * scale)
	height := int(float64(src.Height) * scale)
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("scale factor %v collapses the image to zero size", scale)
	}

	img, err := src.Image()
	if err != nil {
		return nil, err
	}
	return raster.FromImage(imaging.Resize(img, width, height, imaging.Lanczos)), nil
}
