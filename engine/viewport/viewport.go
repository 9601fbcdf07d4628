package viewport

import "math"

// PlaneSpan is the width of the complex plane mapped across the shorter
// canvas dimension at zoom 1. All zoom math is anchored to it.
const PlaneSpan = 4.0

// Wheel zoom factors per scroll notch.
const (
	WheelZoomIn  = 1.1
	WheelZoomOut = 0.9
)

// Viewport is the complex-plane region shown on the canvas: the point
// mapped to the canvas center plus a positive zoom factor.
type Viewport struct {
	CenterX float64
	CenterY float64
	Zoom    float64
}

// Default returns the home view over the whole set.
func Default() Viewport {
	return Viewport{CenterX: -0.5, CenterY: 0, Zoom: 1}
}

// Reset restores the home view.
func (v *Viewport) Reset() {
	*v = Default()
}

// Scale returns complex-plane units per pixel for the given canvas size.
func (v Viewport) Scale(width, height int) float64 {
	m := math.Min(float64(width), float64(height))
	return PlaneSpan / (v.Zoom * m)
}

// PixelToComplex maps a canvas pixel to its complex-plane coordinate.
func (v Viewport) PixelToComplex(px, py float64, width, height int) (float64, float64) {
	s := v.Scale(width, height)
	re := v.CenterX + (px-float64(width)/2)*s
	im := v.CenterY + (py-float64(height)/2)*s
	return re, im
}

// ComplexToPixel is the inverse of PixelToComplex.
func (v Viewport) ComplexToPixel(re, im float64, width, height int) (float64, float64) {
	s := v.Scale(width, height)
	px := (re-v.CenterX)/s + float64(width)/2
	py := (im-v.CenterY)/s + float64(height)/2
	return px, py
}

// Pan shifts the center by a pixel delta so the plane follows the cursor
// during a drag.
func (v *Viewport) Pan(dxPx, dyPx float64, width, height int) {
	s := v.Scale(width, height)
	v.CenterX -= dxPx * s
	v.CenterY -= dyPx * s
}

// ZoomAt multiplies zoom by factor while keeping the complex point under
// the cursor pixel fixed.
func (v *Viewport) ZoomAt(factor, cursorX, cursorY float64, width, height int) {
	if factor <= 0 {
		return
	}
	// Cursor offset from center before the zoom
	s := v.Scale(width, height)
	dx := (cursorX - float64(width)/2) * s
	dy := (cursorY - float64(height)/2) * s
	v.Zoom *= factor
	// Same offset after, adjust center by the difference
	s = v.Scale(width, height)
	v.CenterX += dx - (cursorX-float64(width)/2)*s
	v.CenterY += dy - (cursorY-float64(height)/2)*s
}

// ZoomToRect centers on a dragged rectangle and divides zoom by the
// rectangle's larger relative dimension, so the whole rectangle remains
// visible at the same aspect ratio. Degenerate rectangles are ignored.
func (v *Viewport) ZoomToRect(x0, y0, x1, y1 float64, width, height int) {
	rw := math.Abs(x1 - x0)
	rh := math.Abs(y1 - y0)
	if rw == 0 || rh == 0 {
		return
	}
	// Midpoint must be mapped through the pre-drag view
	cx, cy := v.PixelToComplex((x0+x1)/2, (y0+y1)/2, width, height)
	frac := math.Max(rw/float64(width), rh/float64(height))
	v.CenterX = cx
	v.CenterY = cy
	v.Zoom /= frac
}
