package fractal

import (
	"runtime"
	"sync"

	"github.com/BikS2013/mandelbrot/engine/viewport"
)

// Escape iterates z <- z^2 + c from z = 0 and returns the step at which
// the squared magnitude first exceeds 4, or maxIterations if it never
// does. The squared test avoids a square root and is exactly equivalent
// to the radius-2 escape test.
func Escape(cr, ci float64, maxIterations int) int {
	zr, zi := 0.0, 0.0
	for n := 0; n < maxIterations; n++ {
		zr2 := zr * zr
		zi2 := zi * zi
		if zr2+zi2 > 4 {
			return n
		}
		zi = 2*zr*zi + ci
		zr = zr2 - zi2 + cr
	}
	return maxIterations
}

// Field is a row-major grid of escape counts. Cells holding MaxIter mark
// points inside the set.
type Field struct {
	Width   int
	Height  int
	MaxIter int
	Counts  []int
}

// NewField allocates a zeroed field.
func NewField(width, height, maxIter int) *Field {
	return &Field{
		Width:   width,
		Height:  height,
		MaxIter: maxIter,
		Counts:  make([]int, width*height),
	}
}

// InBounds reports whether (x, y) addresses a real cell.
func (f *Field) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < f.Width && y < f.Height
}

// At returns the count at (x, y), clamping out-of-range indices to the
// nearest edge cell. An empty field reads as zero.
func (f *Field) At(x, y int) int {
	if f.Width == 0 || f.Height == 0 {
		return 0
	}
	if x < 0 {
		x = 0
	} else if x >= f.Width {
		x = f.Width - 1
	}
	if y < 0 {
		y = 0
	} else if y >= f.Height {
		y = f.Height - 1
	}
	return f.Counts[y*f.Width+x]
}

// Compute fills a width x height field with the escape count of every
// pixel under the given view. Rows are split across CPUs; each cell is
// independent, so the result is identical to a sequential row-major scan.
func Compute(view viewport.Viewport, width, height, maxIterations int) *Field {
	f := NewField(width, height, maxIterations)
	workers := runtime.NumCPU()
	if workers > height {
		workers = height
	}
	if workers < 1 {
		workers = 1
	}
	rowsPer := (height + workers - 1) / workers
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		y0 := w * rowsPer
		y1 := y0 + rowsPer
		if y1 > height {
			y1 = height
		}
		if y0 >= y1 {
			continue
		}
		wg.Add(1)
		go func(y0, y1 int) {
			defer wg.Done()
			f.computeRows(view, y0, y1)
		}(y0, y1)
	}
	wg.Wait()
	return f
}

func (f *Field) computeRows(view viewport.Viewport, y0, y1 int) {
	s := view.Scale(f.Width, f.Height)
	for y := y0; y < y1; y++ {
		ci := view.CenterY + (float64(y)-float64(f.Height)/2)*s
		row := f.Counts[y*f.Width : (y+1)*f.Width]
		for x := range row {
			cr := view.CenterX + (float64(x)-float64(f.Width)/2)*s
			row[x] = Escape(cr, ci, f.MaxIter)
		}
	}
}
