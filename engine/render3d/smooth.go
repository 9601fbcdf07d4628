package render3d

import "math"

// GaussianKernel returns normalized 1D blur weights for the given
// radius, with sigma = radius/3. The weights sum to 1.
func GaussianKernel(radius int) []float64 {
	if radius < 1 {
		return []float64{1}
	}
	sigma := float64(radius) / 3
	weights := make([]float64, 2*radius+1)
	sum := 0.0
	for i := -radius; i <= radius; i++ {
		w := math.Exp(-float64(i*i) / (2 * sigma * sigma))
		weights[i+radius] = w
		sum += w
	}
	for i := range weights {
		weights[i] /= sum
	}
	return weights
}

// Smooth applies a separable Gaussian blur in place to remove the
// banding that discrete escape counts leave in the surface. Edge cells
// renormalize over their in-bounds taps, so the overall height scale is
// preserved.
func (m *HeightMap) Smooth(radius int) {
	if radius < 1 || len(m.Values) == 0 {
		return
	}
	kernel := GaussianKernel(radius)
	tmp := make([]float64, len(m.Values))

	// Horizontal pass
	for y := 0; y < m.Height; y++ {
		row := m.Values[y*m.Width : (y+1)*m.Width]
		out := tmp[y*m.Width : (y+1)*m.Width]
		for x := range row {
			sum, wsum := 0.0, 0.0
			for i := -radius; i <= radius; i++ {
				xi := x + i
				if xi < 0 || xi >= m.Width {
					continue
				}
				w := kernel[i+radius]
				sum += row[xi] * w
				wsum += w
			}
			out[x] = sum / wsum
		}
	}

	// Vertical pass
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			sum, wsum := 0.0, 0.0
			for i := -radius; i <= radius; i++ {
				yi := y + i
				if yi < 0 || yi >= m.Height {
					continue
				}
				w := kernel[i+radius]
				sum += tmp[yi*m.Width+x] * w
				wsum += w
			}
			m.Values[y*m.Width+x] = sum / wsum
		}
	}
}
