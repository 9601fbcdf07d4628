package render3d

import (
	"image"
	"math"

	xdraw "golang.org/x/image/draw"

	"github.com/BikS2013/mandelbrot/engine/fractal"
)

// HeightMap is a row-major grid of normalized surface heights in [0, 1].
type HeightMap struct {
	Width  int
	Height int
	Values []float64
}

// NewHeightMap allocates a flat height map.
func NewHeightMap(width, height int) *HeightMap {
	return &HeightMap{
		Width:  width,
		Height: height,
		Values: make([]float64, width*height),
	}
}

// At returns the height at (x, y), clamping out-of-range indices to the
// nearest edge cell. An empty map reads as zero.
func (m *HeightMap) At(x, y int) float64 {
	if m.Width == 0 || m.Height == 0 {
		return 0
	}
	if x < 0 {
		x = 0
	} else if x >= m.Width {
		x = m.Width - 1
	}
	if y < 0 {
		y = 0
	} else if y >= m.Height {
		y = m.Height - 1
	}
	return m.Values[y*m.Width+x]
}

// HeightFromIterations maps an escape count to a normalized height.
// Fast-escaping points sit high, points near the set fall toward sea
// level, and the in-set sentinel is exactly zero. The shape blends an
// exponential rise, a log term and a sine ease, weighted 0.4/0.3/0.3.
func HeightFromIterations(n, maxIter int) float64 {
	if maxIter <= 0 || n >= maxIter {
		return 0
	}
	u := 1 - float64(n)/float64(maxIter)
	return 0.4*(1-math.Exp(-3*u)) + 0.3*math.Log10(1+9*u) + 0.3*math.Sin(u*math.Pi/2)
}

// FieldHeights samples an iteration field every step pixels into a
// height map, plus the matching per-cell escape counts for coloring.
func FieldHeights(f *fractal.Field, step int) (*HeightMap, []int) {
	if step < 1 {
		step = 1
	}
	gw := f.Width/step + 1
	gh := f.Height/step + 1
	if f.Width == 0 || f.Height == 0 {
		return NewHeightMap(0, 0), nil
	}
	m := NewHeightMap(gw, gh)
	iters := make([]int, gw*gh)
	for gy := 0; gy < gh; gy++ {
		for gx := 0; gx < gw; gx++ {
			n := f.At(gx*step, gy*step)
			iters[gy*gw+gx] = n
			m.Values[gy*gw+gx] = HeightFromIterations(n, f.MaxIter)
		}
	}
	return m, iters
}

// ImageHeights scales a captured region down to gw x gh cells and
// converts inverted grayscale luminance to heights, so dark pixels
// become peaks.
func ImageHeights(img image.Image, gw, gh int) *HeightMap {
	m := NewHeightMap(gw, gh)
	if gw < 1 || gh < 1 {
		return m
	}
	scaled := image.NewRGBA(image.Rect(0, 0, gw, gh))
	xdraw.CatmullRom.Scale(scaled, scaled.Bounds(), img, img.Bounds(), xdraw.Over, nil)
	for y := 0; y < gh; y++ {
		for x := 0; x < gw; x++ {
			i := scaled.PixOffset(x, y)
			r := float64(scaled.Pix[i])
			g := float64(scaled.Pix[i+1])
			b := float64(scaled.Pix[i+2])
			lum := 0.299*r + 0.587*g + 0.114*b
			m.Values[y*gw+x] = (255 - lum) / 255
		}
	}
	return m
}
