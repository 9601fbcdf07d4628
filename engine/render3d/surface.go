package render3d

import "sort"

// Triangle is one half of a grid quad after projection, carrying its
// corners, its average depth for sorting and a representative escape
// count for coloring.
type Triangle struct {
	P          [3]ProjectedPoint
	AvgZ       float64
	Iterations int
}

// BuildSurface turns a height map into a projected, tessellated,
// depth-sorted triangle list spanning the canvas. iters supplies the
// per-cell escape counts when the map came from an iteration field;
// when nil (captured sources) counts are derived from the heights.
// Grids smaller than 2x2 produce no triangles.
func BuildSurface(m *HeightMap, iters []int, maxIter int, cfg Config, canvasW, canvasH int) []Triangle {
	gw, gh := m.Width, m.Height
	if gw < 2 || gh < 2 {
		return nil
	}
	cellX := float64(canvasW) / float64(gw-1)
	cellY := float64(canvasH) / float64(gh-1)
	rot := RotationMatrix(cfg.PitchDeg, cfg.RollDeg, cfg.YawDeg)

	// 1. Project every grid vertex, centered on the canvas midpoint
	points := make([]ProjectedPoint, gw*gh)
	for gy := 0; gy < gh; gy++ {
		for gx := 0; gx < gw; gx++ {
			h := m.At(gx, gy)
			n := maxIter
			if iters == nil {
				n = int((1 - h) * float64(maxIter))
			} else if idx := gy*gw + gx; idx < len(iters) {
				n = iters[idx]
			}
			p := Point3D{
				X:          float64(gx)*cellX - float64(canvasW)/2,
				Y:          float64(gy)*cellY - float64(canvasH)/2,
				Z:          -h * cfg.HeightScale,
				Iterations: n,
				GridX:      gx,
				GridY:      gy,
			}
			points[gy*gw+gx] = Project(p, rot, canvasW, canvasH)
		}
	}

	// 2. Tessellate: two triangles per quad, same diagonal everywhere
	tris := make([]Triangle, 0, (gw-1)*(gh-1)*2)
	for gy := 0; gy < gh-1; gy++ {
		for gx := 0; gx < gw-1; gx++ {
			p00 := points[gy*gw+gx]
			p10 := points[gy*gw+gx+1]
			p01 := points[(gy+1)*gw+gx]
			p11 := points[(gy+1)*gw+gx+1]
			tris = append(tris,
				makeTriangle(p00, p10, p11),
				makeTriangle(p00, p11, p01),
			)
		}
	}

	// 3. Painter's order: farthest triangles first
	sort.Slice(tris, func(i, j int) bool {
		return tris[i].AvgZ > tris[j].AvgZ
	})
	return tris
}

func makeTriangle(a, b, c ProjectedPoint) Triangle {
	return Triangle{
		P:          [3]ProjectedPoint{a, b, c},
		AvgZ:       (a.Z + b.Z + c.Z) / 3,
		Iterations: a.Iterations,
	}
}
