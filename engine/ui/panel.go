package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/BikS2013/mandelbrot/engine/palette"
)

// Action is a one-shot command fired by a panel button.
type Action int

const (
	ActionNone Action = iota
	ActionReset
	ActionExport
)

// Controls is the user-editable render state the panel operates on. The
// viewer owns the value; the panel mutates it in place.
type Controls struct {
	MaxIter int
	Scheme  palette.Scheme

	Mode3D        bool
	CaptureSource bool // 3D heights from the rendered frame instead of the field
	PitchDeg      float64
	RollDeg       float64
	YawDeg        float64
	HeightScale   float64
	SmoothRadius  int
}

// DefaultControls returns the state the viewer opens with.
func DefaultControls() Controls {
	return Controls{
		MaxIter:      100,
		Scheme:       palette.Classic,
		PitchDeg:     55,
		RollDeg:      0,
		YawDeg:       -20,
		HeightScale:  140,
		SmoothRadius: 2,
	}
}

// Slider bounds
const (
	minIter, maxIter     = 10, 1000
	minHeight, maxHeight = 20.0, 300.0
	minAngle, maxAngle   = -180.0, 180.0
	minSmooth, maxSmooth = 0, 5
)

var (
	panelBG     = color.RGBA{15, 15, 30, 230}
	panelBorder = color.RGBA{0, 140, 200, 255}
	panelAccent = color.RGBA{0, 200, 255, 255}
	panelTrack  = color.RGBA{30, 35, 50, 240}
	btnNorm     = color.RGBA{25, 35, 55, 240}
	btnBorder   = color.RGBA{100, 100, 160, 255}
	knobOff     = color.RGBA{100, 100, 120, 255}
)

// Panel is the collapsible control sidebar: sliders for iterations,
// surface shape and rotation, the palette selector, mode toggles and
// the reset/export buttons.
type Panel struct {
	ScreenW, ScreenH int
	Width            int
	Visible          bool

	dragSlider int // index of the slider being dragged, -1 when idle
}

func NewPanel(screenW, screenH int) *Panel {
	return &Panel{
		ScreenW:    screenW,
		ScreenH:    screenH,
		Width:      230,
		Visible:    true,
		dragSlider: -1,
	}
}

// Contains reports whether the point lies on the visible panel, so the
// viewer can keep panel clicks away from the canvas.
func (p *Panel) Contains(mx, my int) bool {
	return p.Visible && mx >= p.ScreenW-p.Width
}

// slider describes one labeled slider row: a value in [min, max] plus
// how to read and write it on the Controls.
type slider struct {
	label   string
	min     float64
	max     float64
	integer bool
	get     func(*Controls) float64
	set     func(*Controls, float64)
}

var sliders = []slider{
	{
		label: "Iterations", min: minIter, max: maxIter, integer: true,
		get: func(c *Controls) float64 { return float64(c.MaxIter) },
		set: func(c *Controls, v float64) { c.MaxIter = int(v) },
	},
	{
		label: "Height", min: minHeight, max: maxHeight,
		get: func(c *Controls) float64 { return c.HeightScale },
		set: func(c *Controls, v float64) { c.HeightScale = v },
	},
	{
		label: "Smoothing", min: minSmooth, max: maxSmooth, integer: true,
		get: func(c *Controls) float64 { return float64(c.SmoothRadius) },
		set: func(c *Controls, v float64) { c.SmoothRadius = int(v) },
	},
	{
		label: "Pitch", min: minAngle, max: maxAngle,
		get: func(c *Controls) float64 { return c.PitchDeg },
		set: func(c *Controls, v float64) { c.PitchDeg = v },
	},
	{
		label: "Roll", min: minAngle, max: maxAngle,
		get: func(c *Controls) float64 { return c.RollDeg },
		set: func(c *Controls, v float64) { c.RollDeg = v },
	},
	{
		label: "Yaw", min: minAngle, max: maxAngle,
		get: func(c *Controls) float64 { return c.YawDeg },
		set: func(c *Controls, v float64) { c.YawDeg = v },
	},
}

// Row layout, from the panel top
const (
	rowSchemeY  = 40
	rowSliderY0 = 90
	rowSliderH  = 44
)

var (
	rowToggleY = rowSliderY0 + len(sliders)*rowSliderH + 10
	rowButtonY = rowToggleY + 70
)

func (p *Panel) left() int { return p.ScreenW - p.Width }

func (p *Panel) sliderRect(i int) (x, y, w, h int) {
	return p.left() + 12, rowSliderY0 + i*rowSliderH + 18, p.Width - 70, 16
}

// Update processes mouse interaction. It reports whether any control
// value changed and which button, if any, was clicked. justPressed and
// pressed are the left button's edge and held state for this frame.
func (p *Panel) Update(c *Controls, mx, my int, justPressed, pressed bool) (changed bool, action Action) {
	if !p.Visible {
		return false, ActionNone
	}
	if !pressed {
		p.dragSlider = -1
	}

	// Slider drag: grab on press, follow the cursor while held
	if justPressed {
		for i := range sliders {
			x, y, w, h := p.sliderRect(i)
			if mx >= x-4 && mx <= x+w+4 && my >= y-6 && my <= y+h+6 {
				p.dragSlider = i
				break
			}
		}
	}
	if p.dragSlider >= 0 && pressed {
		s := sliders[p.dragSlider]
		x, _, w, _ := p.sliderRect(p.dragSlider)
		t := float64(mx-x) / float64(w)
		if t < 0 {
			t = 0
		} else if t > 1 {
			t = 1
		}
		v := s.min + t*(s.max-s.min)
		if s.integer {
			v = float64(int(v + 0.5))
		}
		if v != s.get(c) {
			s.set(c, v)
			changed = true
		}
	}

	if !justPressed {
		return changed, ActionNone
	}

	// Scheme arrows
	lx := p.left()
	if clickInRect(mx, my, lx+12, rowSchemeY, 24, 20) {
		c.Scheme = cycleScheme(c.Scheme, -1)
		changed = true
	}
	if clickInRect(mx, my, lx+p.Width-36, rowSchemeY, 24, 20) {
		c.Scheme = cycleScheme(c.Scheme, 1)
		changed = true
	}

	// Toggles
	if clickInRect(mx, my, lx+12, rowToggleY, 50, 24) {
		c.Mode3D = !c.Mode3D
		changed = true
	}
	if clickInRect(mx, my, lx+12, rowToggleY+30, 50, 24) {
		c.CaptureSource = !c.CaptureSource
		changed = true
	}

	// Buttons
	if clickInRect(mx, my, lx+12, rowButtonY, p.Width-24, 24) {
		return changed, ActionReset
	}
	if clickInRect(mx, my, lx+12, rowButtonY+30, p.Width-24, 24) {
		return changed, ActionExport
	}
	return changed, ActionNone
}

// Draw renders the panel over the right edge of the screen.
func (p *Panel) Draw(screen *ebiten.Image, c *Controls) {
	if !p.Visible {
		return
	}
	lx := p.left()
	fx := float32(lx)
	vector.DrawFilledRect(screen, fx, 0, float32(p.Width), float32(p.ScreenH), panelBG, false)
	vector.StrokeLine(screen, fx, 0, fx, float32(p.ScreenH), 1, panelBorder, false)

	ebitenutil.DebugPrintAt(screen, "=== MANDELBROT ===", lx+12, 10)

	// Scheme selector
	p.drawArrow(screen, lx+12, rowSchemeY, false)
	p.drawArrow(screen, lx+p.Width-36, rowSchemeY, true)
	ebitenutil.DebugPrintAt(screen, c.Scheme.String(), lx+44, rowSchemeY+3)

	// Sliders
	for i, s := range sliders {
		x, y, w, _ := p.sliderRect(i)
		v := s.get(c)
		t := (v - s.min) / (s.max - s.min)

		ebitenutil.DebugPrintAt(screen, s.label, x, y-16)
		trackY := float32(y + 6)
		vector.DrawFilledRect(screen, float32(x), trackY, float32(w), 4, panelTrack, false)
		fillW := float32(float64(w) * t)
		vector.DrawFilledRect(screen, float32(x), trackY, fillW, 4, panelAccent, false)
		vector.DrawFilledCircle(screen, float32(x)+fillW, trackY+2, 7, panelAccent, false)

		val := fmt.Sprintf("%.0f", v)
		ebitenutil.DebugPrintAt(screen, val, x+w+8, y)
	}

	// Toggles
	p.drawToggle(screen, lx+12, rowToggleY, c.Mode3D, "3D surface")
	p.drawToggle(screen, lx+12, rowToggleY+30, c.CaptureSource, "Frame heights")

	// Buttons
	p.drawButton(screen, lx+12, rowButtonY, p.Width-24, "Reset view")
	p.drawButton(screen, lx+12, rowButtonY+30, p.Width-24, "Export PNG")

	ebitenutil.DebugPrintAt(screen,
		"[Tab] Panel [1-5] Jump [0] Home\n[Drag] Zoom rect [RDrag/Arrows] Pan\n[Scroll] Zoom [E] Export",
		lx+12, p.ScreenH-54)
}

func (p *Panel) drawArrow(screen *ebiten.Image, x, y int, right bool) {
	vector.DrawFilledRect(screen, float32(x), float32(y), 24, 20, btnNorm, false)
	vector.StrokeRect(screen, float32(x), float32(y), 24, 20, 1, btnBorder, false)
	label := "<"
	if right {
		label = ">"
	}
	ebitenutil.DebugPrintAt(screen, label, x+9, y+3)
}

func (p *Panel) drawToggle(screen *ebiten.Image, x, y int, on bool, label string) {
	vector.DrawFilledRect(screen, float32(x), float32(y), 50, 24, panelTrack, false)
	knobX := x + 12
	clr := knobOff
	if on {
		knobX = x + 38
		clr = panelAccent
	}
	vector.DrawFilledCircle(screen, float32(knobX), float32(y+12), 8, clr, false)
	ebitenutil.DebugPrintAt(screen, label, x+58, y+5)
}

func (p *Panel) drawButton(screen *ebiten.Image, x, y, w int, label string) {
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), 24, btnNorm, false)
	vector.StrokeRect(screen, float32(x), float32(y), float32(w), 24, 1, btnBorder, false)
	ebitenutil.DebugPrintAt(screen, label, x+10, y+5)
}

func cycleScheme(s palette.Scheme, dir int) palette.Scheme {
	all := palette.Schemes()
	for i, cur := range all {
		if cur == s {
			return all[(i+dir+len(all))%len(all)]
		}
	}
	return all[0]
}

func clickInRect(mx, my, x, y, w, h int) bool {
	return mx >= x && mx <= x+w && my >= y && my <= y+h
}
