package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"os"

	"github.com/BikS2013/mandelbrot/engine/palette"
	"github.com/BikS2013/mandelbrot/engine/render"
	"github.com/BikS2013/mandelbrot/engine/viewport"
)

var (
	centerX = flag.Float64("cx", -0.5, "complex-plane center, real part")
	centerY = flag.Float64("cy", 0, "complex-plane center, imaginary part")
	zoom    = flag.Float64("zoom", 1, "zoom factor, must be positive")
	width   = flag.Int("width", 1920, "image width in pixels")
	height  = flag.Int("height", 1080, "image height in pixels")
	iter    = flag.Int("iter", 200, "maximum iterations per pixel")
	scheme  = flag.String("scheme", "classic", "palette scheme name")
	out     = flag.String("out", "mandel.png", "output PNG path")
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		log.Fatalf("run: %+v", err)
	}
}

func run() error {
	if *zoom <= 0 {
		return fmt.Errorf("zoom must be positive, got %v", *zoom)
	}
	if *width < 1 || *height < 1 {
		return fmt.Errorf("image size must be at least 1x1, got %dx%d", *width, *height)
	}

	s := render.Settings{
		View:    viewport.Viewport{CenterX: *centerX, CenterY: *centerY, Zoom: *zoom},
		MaxIter: *iter,
		Scheme:  palette.ParseScheme(*scheme),
	}
	log.Printf("rendering %dx%d at (%v, %v) zoom %v, %d iterations, scheme %s",
		*width, *height, *centerX, *centerY, *zoom, *iter, s.Scheme)

	frame := render.Render(s, *width, *height)

	img := &image.RGBA{
		Pix:    frame.Pixels,
		Stride: 4 * frame.Width,
		Rect:   image.Rect(0, 0, frame.Width, frame.Height),
	}
	f, err := os.Create(*out)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("png encode: %w", err)
	}

	log.Printf("rendered frame saved to %q", *out)
	return nil
}
