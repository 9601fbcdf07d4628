package main

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/BikS2013/mandelbrot/engine/fractal"
	"github.com/BikS2013/mandelbrot/engine/input"
	"github.com/BikS2013/mandelbrot/engine/render"
	"github.com/BikS2013/mandelbrot/engine/render3d"
	"github.com/BikS2013/mandelbrot/engine/ui"
	"github.com/BikS2013/mandelbrot/engine/viewport"
)

const (
	ScreenWidth  = 1280
	ScreenHeight = 800
	ExportDir    = "frames"
)

// Game implements ebiten.Game interface
type Game struct {
	input    *input.InputState
	panel    *ui.Panel
	controls ui.Controls
	view     viewport.Viewport
	surface  *render3d.Renderer3D

	job   render.Job
	frame *render.Frame // last finished 2D render

	canvas   *ebiten.Image // composed scene, also the export source
	frameImg *ebiten.Image // uploaded 2D pixels

	exportSeq int
}

func NewGame() *Game {
	g := &Game{
		input:    input.NewInputState(),
		panel:    ui.NewPanel(ScreenWidth, ScreenHeight),
		controls: ui.DefaultControls(),
		view:     viewport.Default(),
		surface:  render3d.NewRenderer3D(),
		canvas:   ebiten.NewImage(ScreenWidth, ScreenHeight),
		frameImg: ebiten.NewImage(ScreenWidth, ScreenHeight),
	}
	g.requestRender()
	return g
}

// requestRender starts a background render of the current view. A newer
// request supersedes any frame still in flight.
func (g *Game) requestRender() {
	g.job.Begin(render.Settings{
		View:    g.view,
		MaxIter: g.controls.MaxIter,
		Scheme:  g.controls.Scheme,
	}, ScreenWidth, ScreenHeight)
}

func (g *Game) Update() error {
	g.input.Update()

	prev := g.controls
	changed, action := g.panel.Update(&g.controls,
		g.input.MouseX, g.input.MouseY,
		g.input.LeftJustPressed, g.input.LeftPressed)

	switch action {
	case ui.ActionReset:
		g.view.Reset()
		g.requestRender()
	case ui.ActionExport:
		g.exportFrame()
	}

	if changed {
		switch {
		case prev.MaxIter != g.controls.MaxIter:
			g.requestRender()
		case prev.Scheme != g.controls.Scheme && g.frame != nil:
			// Counts are still valid, only the colors change
			g.frame = render.Colorize(g.frame.Field, g.controls.Scheme)
			g.frameImg.WritePixels(g.frame.Pixels)
		}
		// Surface-only controls are picked up on the next Draw
	}

	if !g.panel.Contains(g.input.MouseX, g.input.MouseY) {
		g.handleNavigation()
	}
	g.handleKeys()

	// Swap in a finished render
	if f := g.job.Take(); f != nil {
		g.frame = f
		g.frameImg.WritePixels(f.Pixels)
	}

	return nil
}

func (g *Game) handleNavigation() {
	// Wheel zoom keeps the point under the cursor fixed
	if g.input.ScrollY != 0 {
		factor := viewport.WheelZoomIn
		if g.input.ScrollY < 0 {
			factor = viewport.WheelZoomOut
		}
		g.view.ZoomAt(factor,
			float64(g.input.MouseX), float64(g.input.MouseY),
			ScreenWidth, ScreenHeight)
		g.requestRender()
	}

	// Right drag pans the plane under the cursor
	if g.input.RightPressed && (g.input.MouseDX != 0 || g.input.MouseDY != 0) {
		g.view.Pan(float64(g.input.MouseDX), float64(g.input.MouseDY),
			ScreenWidth, ScreenHeight)
		g.requestRender()
	}

	// Left drag zooms to the released rectangle
	if x1, y1, x2, y2, ok := g.input.ReleasedRect(); ok {
		g.view.ZoomToRect(float64(x1), float64(y1), float64(x2), float64(y2),
			ScreenWidth, ScreenHeight)
		g.requestRender()
	}
}

const keyPanStep = 8.0 // pixels per frame while an arrow/WASD key is held

func (g *Game) handleKeys() {
	if dx, dy := g.input.PanVector(keyPanStep); dx != 0 || dy != 0 {
		g.view.Pan(dx, dy, ScreenWidth, ScreenHeight)
		g.requestRender()
	}

	if g.input.IsKeyJustPressed(ebiten.KeyTab) {
		g.panel.Visible = !g.panel.Visible
	}
	if g.input.IsKeyJustPressed(ebiten.KeyE) {
		g.exportFrame()
	}
	if g.input.IsKeyJustPressed(ebiten.Key3) && ebiten.IsKeyPressed(ebiten.KeyShift) {
		g.controls.Mode3D = !g.controls.Mode3D
	}
	if g.input.IsKeyJustPressed(ebiten.Key0) || g.input.IsKeyJustPressed(ebiten.KeyHome) {
		g.view.Reset()
		g.requestRender()
	}

	// Quick-jump landmarks on 1-5
	jumpKeys := []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5}
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		return
	}
	for i, key := range jumpKeys {
		if g.input.IsKeyJustPressed(key) {
			g.view = fractal.Locations()[i].View
			g.requestRender()
			return
		}
	}
}

// exportFrame writes the composed canvas to frames/frame_NNNN.png.
func (g *Game) exportFrame() {
	if err := os.MkdirAll(ExportDir, 0o755); err != nil {
		log.Printf("export: %v", err)
		return
	}
	img := image.NewRGBA(image.Rect(0, 0, ScreenWidth, ScreenHeight))
	g.canvas.ReadPixels(img.Pix)

	g.exportSeq++
	path := filepath.Join(ExportDir, fmt.Sprintf("frame_%04d.png", g.exportSeq))
	f, err := os.Create(path)
	if err != nil {
		log.Printf("export: %v", err)
		return
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		log.Printf("export: %v", err)
		return
	}
	log.Printf("exported %s", path)
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.drawScene(g.canvas)
	screen.DrawImage(g.canvas, nil)

	// Zoom rectangle in progress
	if x1, y1, x2, y2, active := g.input.DragRect(); active {
		x, y := float32(min(x1, x2)), float32(min(y1, y2))
		w, h := float32(abs(x2-x1)), float32(abs(y2-y1))
		vector.StrokeRect(screen, x, y, w, h, 1, color.RGBA{255, 255, 0, 200}, false)
	}

	if g.job.Busy() {
		ebitenutil.DebugPrintAt(screen, "Calculating...", ScreenWidth/2-40, 10)
	}

	g.drawHUD(screen)
	g.panel.Draw(screen, &g.controls)
}

func (g *Game) drawScene(dst *ebiten.Image) {
	dst.Fill(color.RGBA{10, 10, 18, 255})
	if g.frame == nil {
		return
	}
	if !g.controls.Mode3D {
		dst.DrawImage(g.frameImg, nil)
		return
	}

	cfg := render3d.Config{
		PitchDeg:     g.controls.PitchDeg,
		RollDeg:      g.controls.RollDeg,
		YawDeg:       g.controls.YawDeg,
		HeightScale:  g.controls.HeightScale,
		SmoothRadius: g.controls.SmoothRadius,
		Step:         render3d.DefaultConfig().Step,
	}
	if g.controls.CaptureSource {
		// Heights from the rendered frame's inverted luminance
		src := &image.RGBA{
			Pix:    g.frame.Pixels,
			Stride: 4 * g.frame.Width,
			Rect:   image.Rect(0, 0, g.frame.Width, g.frame.Height),
		}
		gw := g.frame.Width/cfg.Step + 1
		gh := g.frame.Height/cfg.Step + 1
		hm := render3d.ImageHeights(src, gw, gh)
		g.surface.DrawHeightMap(dst, hm, g.controls.MaxIter, cfg, g.controls.Scheme)
		return
	}
	g.surface.DrawField(dst, g.frame.Field, cfg, g.controls.Scheme)
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	info := fmt.Sprintf(
		"Mandelbrot | FPS: %.0f\nCenter: %.9f %+.9fi\nZoom: %.3g | Iter: %d | %s",
		ebiten.ActualFPS(),
		g.view.CenterX, g.view.CenterY,
		g.view.Zoom, g.controls.MaxIter, g.controls.Scheme,
	)
	ebitenutil.DebugPrint(screen, info)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ScreenWidth, ScreenHeight
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func main() {
	ebiten.SetWindowSize(ScreenWidth, ScreenHeight)
	ebiten.SetWindowTitle("Mandelbrot Explorer")
	ebiten.SetVsyncEnabled(true)

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}
