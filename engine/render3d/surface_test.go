package render3d

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/BikS2013/mandelbrot/engine/fractal"
	"github.com/BikS2013/mandelbrot/engine/palette"
)

func TestProjectIdentityAtZeroAngles(t *testing.T) {
	rot := RotationMatrix(0, 0, 0)
	p := Point3D{X: 100, Y: -50, Z: 0, Iterations: 7, GridX: 3, GridY: 4}
	got := Project(p, rot, 800, 600)
	if !almostEqual(got.X, 500) || !almostEqual(got.Y, 250) {
		t.Errorf("expected screen point (500, 250), got (%v, %v)", got.X, got.Y)
	}
	if !almostEqual(got.Scale, 1) {
		t.Errorf("expected perspective scale 1 at z=0, got %v", got.Scale)
	}
	if got.Iterations != 7 || got.GridX != 3 || got.GridY != 4 {
		t.Errorf("expected source cell data to survive projection, got %+v", got)
	}
}

func TestProjectPerspectiveForeshortening(t *testing.T) {
	rot := RotationMatrix(0, 0, 0)
	far := Project(Point3D{X: 100, Z: 400}, rot, 800, 600)
	near := Project(Point3D{X: 100, Z: -400}, rot, 800, 600)
	if want := CameraDistance / (CameraDistance + 400); !almostEqual(far.Scale, want) {
		t.Errorf("expected far scale %v, got %v", want, far.Scale)
	}
	if far.Scale >= 1 || near.Scale <= 1 {
		t.Errorf("expected far points to shrink and near points to grow, got %v and %v",
			far.Scale, near.Scale)
	}
}

func TestRotationAppliesPitchBeforeYaw(t *testing.T) {
	// pitch 90 sends +Y to +Z; a following yaw about Z must then leave
	// the point alone
	rot := RotationMatrix(90, 0, 90)
	v := rot.Mul4x1(mgl64.Vec4{0, 1, 0, 1})
	if !almostEqual(v.X(), 0) || !almostEqual(v.Y(), 0) || !almostEqual(v.Z(), 1) {
		t.Errorf("expected (0, 0, 1), got (%v, %v, %v)", v.X(), v.Y(), v.Z())
	}
}

func buildTestSurface(t *testing.T) []Triangle {
	t.Helper()
	view := fractal.NewField(32, 24, 60)
	for i := range view.Counts {
		view.Counts[i] = (i * 13) % 61
	}
	hm, iters := FieldHeights(view, 4)
	cfg := DefaultConfig()
	cfg.PitchDeg, cfg.YawDeg = 55, -20
	return BuildSurface(hm, iters, 60, cfg, 320, 240)
}

func TestBuildSurfaceTriangleCount(t *testing.T) {
	tris := buildTestSurface(t)
	// 9x7 grid -> 8*6 quads, two triangles each
	if want := 8 * 6 * 2; len(tris) != want {
		t.Fatalf("expected %d triangles, got %d", want, len(tris))
	}
}

func TestBuildSurfaceDepthOrderIsNonIncreasing(t *testing.T) {
	tris := buildTestSurface(t)
	for i := 1; i < len(tris); i++ {
		if tris[i-1].AvgZ < tris[i].AvgZ {
			t.Fatalf("triangle %d: expected non-increasing depth, got %v before %v",
				i, tris[i-1].AvgZ, tris[i].AvgZ)
		}
	}
}

func TestBuildSurfaceInSetStaysAtSeaLevel(t *testing.T) {
	f := fractal.NewField(16, 16, 30)
	for i := range f.Counts {
		f.Counts[i] = 30 // everything inside the set
	}
	hm, iters := FieldHeights(f, 4)
	cfg := DefaultConfig()
	cfg.PitchDeg, cfg.RollDeg, cfg.YawDeg = 0, 0, 0
	tris := BuildSurface(hm, iters, 30, cfg, 160, 160)
	for _, tri := range tris {
		for _, p := range tri.P {
			if !almostEqual(p.Z, 0) {
				t.Fatalf("expected flat sea-level surface, got z=%v", p.Z)
			}
		}
		if tri.Iterations != 30 {
			t.Fatalf("expected sentinel iteration count, got %d", tri.Iterations)
		}
	}
}

func TestBuildSurfaceRejectsTinyGrids(t *testing.T) {
	if tris := BuildSurface(NewHeightMap(1, 5), nil, 10, DefaultConfig(), 100, 100); tris != nil {
		t.Errorf("expected no triangles from a 1-wide grid, got %d", len(tris))
	}
	if tris := BuildSurface(NewHeightMap(0, 0), nil, 10, DefaultConfig(), 100, 100); tris != nil {
		t.Errorf("expected no triangles from an empty grid, got %d", len(tris))
	}
}

func TestBuildSurfaceDerivesCountsWithoutField(t *testing.T) {
	m := NewHeightMap(3, 3)
	// flat zero map reads as fully in-set
	tris := BuildSurface(m, nil, 100, DefaultConfig(), 90, 90)
	for _, tri := range tris {
		if tri.Iterations != 100 {
			t.Errorf("expected derived sentinel count for zero height, got %d", tri.Iterations)
		}
	}
}

func TestLightingIntensityBounds(t *testing.T) {
	ls := DefaultLighting()
	normals := []mgl64.Vec3{
		{0, 0, -1},
		{0, 0, 1},
		{0.7, -0.7, 0},
		mgl64.Vec3{1, 2, -3}.Normalize(),
		{},
	}
	for _, n := range normals {
		got := ls.Intensity(n)
		if got < ls.Floor || got > 1 {
			t.Errorf("normal %v: expected intensity in [%v, 1], got %v", n, ls.Floor, got)
		}
	}
}

func TestFaceNormalFacesViewer(t *testing.T) {
	tri := Triangle{P: [3]ProjectedPoint{
		{X: 0, Y: 0, Z: 0},
		{X: 10, Y: 0, Z: 0},
		{X: 0, Y: 10, Z: 0},
	}}
	n := FaceNormal(tri)
	if !almostEqual(n.Len(), 1) {
		t.Fatalf("expected unit normal, got length %v", n.Len())
	}
	if n.Z() > 0 {
		t.Errorf("expected normal flipped toward the viewer, got z=%v", n.Z())
	}
}

func TestFaceNormalDegenerateTriangle(t *testing.T) {
	tri := Triangle{P: [3]ProjectedPoint{
		{X: 5, Y: 5, Z: 1},
		{X: 5, Y: 5, Z: 1},
		{X: 5, Y: 5, Z: 1},
	}}
	if n := FaceNormal(tri); n != (mgl64.Vec3{}) {
		t.Errorf("expected zero normal for degenerate triangle, got %v", n)
	}
}

func TestShadeAppliesGammaCorrection(t *testing.T) {
	testCases := []struct {
		name      string
		in        palette.RGB
		intensity float64
		want      palette.RGB
	}{
		{"full white at full light", palette.RGB{R: 255, G: 255, B: 255}, 1, palette.RGB{R: 255, G: 255, B: 255}},
		{"black stays black", palette.RGB{R: 0, G: 0, B: 0}, 1, palette.RGB{R: 0, G: 0, B: 0}},
		{"half light lifts above linear", palette.RGB{R: 255, G: 0, B: 0}, 0.5, palette.RGB{R: 186, G: 0, B: 0}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Shade(tc.in, tc.intensity); got != tc.want {
				t.Errorf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestShadeNeverExceedsChannelRange(t *testing.T) {
	for _, c := range []palette.RGB{{R: 255, G: 255, B: 255}, {R: 1, G: 128, B: 254}, {R: 0, G: 0, B: 0}} {
		for _, intensity := range []float64{0, 0.22, 0.5, 1} {
			got := Shade(c, intensity)
			for _, ch := range []int{got.R, got.G, got.B} {
				if ch < 0 || ch > 255 {
					t.Fatalf("color %v at intensity %v: channel %d out of range", c, intensity, ch)
				}
			}
		}
	}
}

func TestShadeMidGamma(t *testing.T) {
	// 255 * (0.5)^(1/2.2) = 186.08 -> truncates to 186
	got := gammaChannel(255, 0.5)
	if got != 186 {
		t.Errorf("expected 186, got %d", got)
	}
	want := int(255 * math.Pow(0.5, 1/2.2))
	if got != want {
		t.Errorf("expected %d, got %d", want, got)
	}
}
