package render3d

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/BikS2013/mandelbrot/engine/palette"
)

// DirectionalLight is a fixed-direction light with a weight.
type DirectionalLight struct {
	Direction mgl64.Vec3 // normalized direction TO the light (from surface)
	Intensity float64
}

// LightingSetup drives the flat shading of surface triangles: a
// dominant key light, a weaker fill, a faint back light and an ambient
// base.
type LightingSetup struct {
	Key     DirectionalLight
	Fill    DirectionalLight
	Back    DirectionalLight
	Ambient float64
	Floor   float64 // minimum intensity so no face goes fully black
}

// DefaultLighting returns the fixed terrain setup: key from the upper
// left front, cool fill from the right, faint rim from behind.
func DefaultLighting() LightingSetup {
	return LightingSetup{
		Key: DirectionalLight{
			Direction: mgl64.Vec3{-0.45, -0.6, -0.66}.Normalize(),
			Intensity: 0.75,
		},
		Fill: DirectionalLight{
			Direction: mgl64.Vec3{0.7, -0.2, -0.69}.Normalize(),
			Intensity: 0.25,
		},
		Back: DirectionalLight{
			Direction: mgl64.Vec3{0.2, 0.75, 0.63}.Normalize(),
			Intensity: 0.10,
		},
		Ambient: 0.18,
		Floor:   0.22,
	}
}

// Intensity computes the shading weight in [Floor, 1] for a face
// normal: ambient plus the Lambert term of each light.
func (ls *LightingSetup) Intensity(normal mgl64.Vec3) float64 {
	i := ls.Ambient
	i += ls.Key.Intensity * math.Max(0, normal.Dot(ls.Key.Direction))
	i += ls.Fill.Intensity * math.Max(0, normal.Dot(ls.Fill.Direction))
	i += ls.Back.Intensity * math.Max(0, normal.Dot(ls.Back.Direction))
	if i < ls.Floor {
		i = ls.Floor
	}
	if i > 1 {
		i = 1
	}
	return i
}

// FaceNormal returns the unit normal of a projected triangle via the
// cross product of two edges, flipped toward the viewer. Degenerate
// triangles yield the zero vector.
func FaceNormal(t Triangle) mgl64.Vec3 {
	e1 := mgl64.Vec3{t.P[1].X - t.P[0].X, t.P[1].Y - t.P[0].Y, t.P[1].Z - t.P[0].Z}
	e2 := mgl64.Vec3{t.P[2].X - t.P[0].X, t.P[2].Y - t.P[0].Y, t.P[2].Z - t.P[0].Z}
	n := e1.Cross(e2)
	if n.Len() == 0 {
		return mgl64.Vec3{}
	}
	n = n.Normalize()
	if n.Z() > 0 {
		n = n.Mul(-1)
	}
	return n
}

// Shade scales a base color by a lighting intensity with gamma 2.2
// correction, keeping shading perceptually linear.
func Shade(c palette.RGB, intensity float64) palette.RGB {
	return palette.RGB{
		R: gammaChannel(c.R, intensity),
		G: gammaChannel(c.G, intensity),
		B: gammaChannel(c.B, intensity),
	}
}

func gammaChannel(ch int, intensity float64) int {
	v := int(255 * math.Pow(float64(ch)/255*intensity, 1/2.2))
	if v < 0 {
		v = 0
	} else if v > 255 {
		v = 255
	}
	return v
}
