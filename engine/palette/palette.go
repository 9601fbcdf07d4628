package palette

import "math"

// RGB is a display color with integer channels in [0, 255].
type RGB struct {
	R, G, B int
}

// Scheme selects one of the built-in color mappings.
type Scheme int

const (
	Classic Scheme = iota
	Fire
	Rainbow
	Sunset
	Forest
	Cosmic
	Ice
	Volcanic
	Neon
	Ocean
	Copper
	Grayscale
)

var schemeNames = map[Scheme]string{
	Classic:   "classic",
	Fire:      "fire",
	Rainbow:   "rainbow",
	Sunset:    "sunset",
	Forest:    "forest",
	Cosmic:    "cosmic",
	Ice:       "ice",
	Volcanic:  "volcanic",
	Neon:      "neon",
	Ocean:     "ocean",
	Copper:    "copper",
	Grayscale: "grayscale",
}

// String returns the scheme's lowercase name.
func (s Scheme) String() string {
	if name, ok := schemeNames[s]; ok {
		return name
	}
	return "classic"
}

// ParseScheme maps a name to its Scheme. Unknown names fall back to Classic.
func ParseScheme(name string) Scheme {
	for s, n := range schemeNames {
		if n == name {
			return s
		}
	}
	return Classic
}

// Schemes returns all schemes in display order.
func Schemes() []Scheme {
	return []Scheme{
		Classic, Fire, Rainbow, Sunset, Forest, Cosmic,
		Ice, Volcanic, Neon, Ocean, Copper, Grayscale,
	}
}

// GetColor maps an escape count to a color. Points that never escaped
// (iterations == maxIterations) are always black regardless of scheme.
func GetColor(iterations, maxIterations int, scheme Scheme) RGB {
	if iterations >= maxIterations {
		return RGB{0, 0, 0}
	}
	ratio := float64(iterations) / float64(maxIterations)
	switch scheme {
	case Fire:
		return fireColor(ratio)
	case Rainbow:
		return rainbowColor(ratio)
	case Sunset:
		return rampColor(sunsetStops, ratio)
	case Forest:
		return rampColor(forestStops, ratio)
	case Cosmic:
		return rampColor(cosmicStops, ratio)
	case Ice:
		return rampColor(iceStops, ratio)
	case Volcanic:
		return rampColor(volcanicStops, ratio)
	case Neon:
		return neonColor(ratio)
	case Ocean:
		return oceanColor(ratio)
	case Copper:
		return copperColor(ratio)
	case Grayscale:
		return grayscaleColor(ratio)
	case Classic:
		return classicColor(ratio)
	default:
		return classicColor(ratio)
	}
}

// Table precomputes the color of every count in [0, maxIterations].
// The last entry is the in-set black.
func Table(maxIterations int, scheme Scheme) []RGB {
	table := make([]RGB, maxIterations+1)
	for i := range table {
		table[i] = GetColor(i, maxIterations, scheme)
	}
	return table
}

// classicColor sweeps the full hue circle at fixed saturation/lightness.
func classicColor(ratio float64) RGB {
	return hslToRGB(ratio, 1.0, 0.5)
}

// fireColor ramps red on the first half, then green on the second,
// giving black -> red -> yellow.
func fireColor(ratio float64) RGB {
	if ratio < 0.5 {
		return RGB{int(ratio * 2 * 255), 0, 0}
	}
	return RGB{255, int((ratio - 0.5) * 2 * 255), 0}
}

// rainbowColor walks the six-segment hue wheel R-Y-G-C-B-M.
func rainbowColor(ratio float64) RGB {
	h := ratio * 6
	seg := int(h)
	t := int((h - float64(seg)) * 255)
	switch seg {
	case 0:
		return RGB{255, t, 0}
	case 1:
		return RGB{255 - t, 255, 0}
	case 2:
		return RGB{0, 255, t}
	case 3:
		return RGB{0, 255 - t, 255}
	case 4:
		return RGB{t, 0, 255}
	default:
		return RGB{255, 0, 255 - t}
	}
}

// neonColor drives each channel with a phase-shifted sinusoid.
func neonColor(ratio float64) RGB {
	phase := 2 * math.Pi * ratio * 3
	r := 0.5 + 0.5*math.Sin(phase)
	g := 0.5 + 0.5*math.Sin(phase+2*math.Pi/3)
	b := 0.5 + 0.5*math.Sin(phase+4*math.Pi/3)
	return RGB{int(r * 255), int(g * 255), int(b * 255)}
}

// oceanColor scales channels linearly from deep blue toward cyan.
func oceanColor(ratio float64) RGB {
	return RGB{int(ratio * 80), int(ratio * 180), 120 + int(ratio*135)}
}

// copperColor scales channels linearly, red saturating early.
func copperColor(ratio float64) RGB {
	r := int(ratio * 1.25 * 255)
	if r > 255 {
		r = 255
	}
	return RGB{r, int(ratio * 0.78 * 255), int(ratio * 0.5 * 255)}
}

func grayscaleColor(ratio float64) RGB {
	v := int(ratio * 255)
	return RGB{v, v, v}
}

// stop is a gradient breakpoint at position pos in [0, 1].
type stop struct {
	pos float64
	c   RGB
}

var sunsetStops = []stop{
	{0.0, RGB{30, 8, 60}},    // dusk purple
	{0.35, RGB{180, 40, 90}}, // magenta
	{0.65, RGB{255, 110, 40}},
	{0.85, RGB{255, 200, 80}},
	{1.0, RGB{255, 245, 200}},
}

var forestStops = []stop{
	{0.0, RGB{10, 25, 10}}, // undergrowth
	{0.3, RGB{25, 80, 30}},
	{0.6, RGB{60, 140, 50}},
	{0.8, RGB{140, 190, 90}},
	{1.0, RGB{230, 240, 180}},
}

var cosmicStops = []stop{
	{0.0, RGB{5, 0, 25}}, // void
	{0.3, RGB{60, 20, 120}},
	{0.55, RGB{140, 60, 200}},
	{0.8, RGB{80, 160, 255}},
	{1.0, RGB{235, 245, 255}},
}

var iceStops = []stop{
	{0.0, RGB{0, 15, 45}}, // deep water
	{0.4, RGB{40, 90, 160}},
	{0.7, RGB{120, 180, 220}},
	{1.0, RGB{235, 250, 255}},
}

var volcanicStops = []stop{
	{0.0, RGB{20, 5, 5}}, // basalt
	{0.35, RGB{120, 20, 10}},
	{0.6, RGB{230, 70, 10}},
	{0.8, RGB{255, 170, 30}},
	{1.0, RGB{255, 250, 210}},
}

// rampColor interpolates linearly between the enclosing pair of stops.
func rampColor(stops []stop, ratio float64) RGB {
	if ratio <= stops[0].pos {
		return stops[0].c
	}
	for i := 1; i < len(stops); i++ {
		if ratio <= stops[i].pos {
			a, b := stops[i-1], stops[i]
			t := (ratio - a.pos) / (b.pos - a.pos)
			return RGB{
				a.c.R + int(t*float64(b.c.R-a.c.R)),
				a.c.G + int(t*float64(b.c.G-a.c.G)),
				a.c.B + int(t*float64(b.c.B-a.c.B)),
			}
		}
	}
	return stops[len(stops)-1].c
}

// hslToRGB converts HSL in [0,1] to integer RGB.
func hslToRGB(h, s, l float64) RGB {
	if s == 0 {
		v := int(l * 255)
		return RGB{v, v, v} // achromatic
	}
	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q
	r := hue2rgb(p, q, h+1.0/3)
	g := hue2rgb(p, q, h)
	b := hue2rgb(p, q, h-1.0/3)
	return RGB{int(r * 255), int(g * 255), int(b * 255)}
}

func hue2rgb(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 1.0/2:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	}
	return p
}
