package render

import (
	"github.com/BikS2013/mandelbrot/engine/fractal"
	"github.com/BikS2013/mandelbrot/engine/palette"
	"github.com/BikS2013/mandelbrot/engine/viewport"
)

// Settings carries everything one render needs besides the canvas size.
type Settings struct {
	View    viewport.Viewport
	MaxIter int
	Scheme  palette.Scheme
}

// Frame is one fully rendered 2D image plus the iteration field it was
// computed from, kept so the 3D pass can reuse it.
type Frame struct {
	Width  int
	Height int
	Pixels []byte // RGBA, row-major
	Field  *fractal.Field
}

// Render computes the escape count of every canvas pixel under the view,
// then colors the counts through the palette into an RGBA buffer with
// alpha 255. Everything is recomputed per call.
func Render(s Settings, width, height int) *Frame {
	field := fractal.Compute(s.View, width, height, s.MaxIter)
	return Colorize(field, s.Scheme)
}

// Colorize maps an iteration field through the palette into a frame.
func Colorize(field *fractal.Field, scheme palette.Scheme) *Frame {
	table := palette.Table(field.MaxIter, scheme)
	pixels := make([]byte, 4*field.Width*field.Height)
	for i, n := range field.Counts {
		if n < 0 {
			n = 0
		} else if n > field.MaxIter {
			n = field.MaxIter
		}
		c := table[n]
		pixels[i*4+0] = byte(c.R)
		pixels[i*4+1] = byte(c.G)
		pixels[i*4+2] = byte(c.B)
		pixels[i*4+3] = 255
	}
	return &Frame{
		Width:  field.Width,
		Height: field.Height,
		Pixels: pixels,
		Field:  field,
	}
}
