package render3d

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/BikS2013/mandelbrot/engine/fractal"
	"github.com/BikS2013/mandelbrot/engine/palette"
)

// Config is the user-facing surface state: rotation angles in degrees,
// height exaggeration, smoothing radius and grid sampling step.
type Config struct {
	PitchDeg     float64
	RollDeg      float64
	YawDeg       float64
	HeightScale  float64
	SmoothRadius int
	Step         int // field pixels per grid cell
}

// DefaultConfig returns the view the surface opens with.
func DefaultConfig() Config {
	return Config{
		PitchDeg:     55,
		RollDeg:      0,
		YawDeg:       -20,
		HeightScale:  140,
		SmoothRadius: 2,
		Step:         8,
	}
}

// Renderer3D draws iteration fields as shaded heightmap surfaces.
type Renderer3D struct {
	Lighting LightingSetup

	// Internal
	whiteImg *ebiten.Image
	vertices []ebiten.Vertex
	indices  []uint16
}

// NewRenderer3D creates the surface renderer.
func NewRenderer3D() *Renderer3D {
	r := &Renderer3D{Lighting: DefaultLighting()}

	// 4x4 white source image; vertices sample its interior texel
	r.whiteImg = ebiten.NewImage(4, 4)
	r.whiteImg.Fill(color.White)

	return r
}

// DrawField renders an iteration field as a rotated, lit surface.
func (r *Renderer3D) DrawField(screen *ebiten.Image, f *fractal.Field, cfg Config, scheme palette.Scheme) {
	hm, iters := FieldHeights(f, cfg.Step)
	hm.Smooth(cfg.SmoothRadius)
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	tris := BuildSurface(hm, iters, f.MaxIter, cfg, w, h)
	r.drawTriangles(screen, tris, f.MaxIter, scheme)
}

// DrawHeightMap renders an externally supplied height map, used for
// surfaces built from a captured screen region.
func (r *Renderer3D) DrawHeightMap(screen *ebiten.Image, hm *HeightMap, maxIter int, cfg Config, scheme palette.Scheme) {
	smoothed := &HeightMap{
		Width:  hm.Width,
		Height: hm.Height,
		Values: append([]float64(nil), hm.Values...),
	}
	smoothed.Smooth(cfg.SmoothRadius)
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	tris := BuildSurface(smoothed, nil, maxIter, cfg, w, h)
	r.drawTriangles(screen, tris, maxIter, scheme)
}

// strokeHalfWidth widens each seam stroke to one pixel total.
const strokeHalfWidth = 0.5

// drawTriangles paints sorted triangles back-to-front. Each triangle's
// edge strokes ride in the batch directly behind its fill, so a far
// triangle's seam cover can never land on top of a nearer face.
func (r *Renderer3D) drawTriangles(screen *ebiten.Image, tris []Triangle, maxIter int, scheme palette.Scheme) {
	if len(tris) == 0 {
		return
	}

	table := palette.Table(maxIter, scheme)
	r.vertices = r.vertices[:0]
	r.indices = r.indices[:0]
	for _, t := range tris {
		n := t.Iterations
		if n < 0 {
			n = 0
		} else if n > maxIter {
			n = maxIter
		}
		lit := Shade(table[n], r.Lighting.Intensity(FaceNormal(t)))
		c := color.RGBA{uint8(lit.R), uint8(lit.G), uint8(lit.B), 255}

		r.appendFill(t, c)
		r.appendEdges(t, c)

		// Flush before the uint16 index space overflows; a triangle
		// plus its three edge quads needs 15 vertices
		if len(r.vertices) >= 65520-15 {
			r.flush(screen)
		}
	}
	r.flush(screen)
}

func (r *Renderer3D) appendFill(t Triangle, c color.RGBA) {
	base := uint16(len(r.vertices))
	for k := 0; k < 3; k++ {
		r.vertices = append(r.vertices, batchVertex(float32(t.P[k].X), float32(t.P[k].Y), c))
	}
	r.indices = append(r.indices, base, base+1, base+2)
}

// appendEdges closes the sub-pixel seams between adjacent triangles by
// widening each edge into a same-color quad.
func (r *Renderer3D) appendEdges(t Triangle, c color.RGBA) {
	for k := 0; k < 3; k++ {
		a, b := t.P[k], t.P[(k+1)%3]
		quad, ok := edgeQuad(float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), strokeHalfWidth)
		if !ok {
			continue
		}
		base := uint16(len(r.vertices))
		for _, p := range quad {
			r.vertices = append(r.vertices, batchVertex(p[0], p[1], c))
		}
		r.indices = append(r.indices, base, base+1, base+2, base, base+2, base+3)
	}
}

// edgeQuad widens the segment into a halfW-thick quad by offsetting
// both endpoints along the perpendicular. Zero-length edges report
// ok = false.
func edgeQuad(x0, y0, x1, y1, halfW float32) ([4][2]float32, bool) {
	dx, dy := x1-x0, y1-y0
	l := float32(math.Sqrt(float64(dx*dx + dy*dy)))
	if l == 0 {
		return [4][2]float32{}, false
	}
	nx, ny := -dy/l*halfW, dx/l*halfW
	return [4][2]float32{
		{x0 + nx, y0 + ny},
		{x1 + nx, y1 + ny},
		{x1 - nx, y1 - ny},
		{x0 - nx, y0 - ny},
	}, true
}

func batchVertex(x, y float32, c color.RGBA) ebiten.Vertex {
	return ebiten.Vertex{
		DstX:   x,
		DstY:   y,
		SrcX:   1,
		SrcY:   1,
		ColorR: float32(c.R) / 255,
		ColorG: float32(c.G) / 255,
		ColorB: float32(c.B) / 255,
		ColorA: 1,
	}
}

func (r *Renderer3D) flush(screen *ebiten.Image) {
	if len(r.vertices) == 0 {
		return
	}
	screen.DrawTriangles(r.vertices, r.indices, r.whiteImg, nil)
	r.vertices = r.vertices[:0]
	r.indices = r.indices[:0]
}
