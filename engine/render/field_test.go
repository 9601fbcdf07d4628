package render

import (
	"testing"
	"time"

	"github.com/BikS2013/mandelbrot/engine/fractal"
	"github.com/BikS2013/mandelbrot/engine/palette"
	"github.com/BikS2013/mandelbrot/engine/viewport"
)

func TestRenderMatchesPerPixelPipeline(t *testing.T) {
	s := Settings{
		View:    viewport.Viewport{CenterX: -0.5, CenterY: 0, Zoom: 2},
		MaxIter: 90,
		Scheme:  palette.Rainbow,
	}
	const w, h = 40, 30
	frame := Render(s, w, h)

	if frame.Width != w || frame.Height != h {
		t.Fatalf("expected %dx%d frame, got %dx%d", w, h, frame.Width, frame.Height)
	}
	if len(frame.Pixels) != 4*w*h {
		t.Fatalf("expected %d bytes, got %d", 4*w*h, len(frame.Pixels))
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			re, im := s.View.PixelToComplex(float64(x), float64(y), w, h)
			n := fractal.Escape(re, im, s.MaxIter)
			want := palette.GetColor(n, s.MaxIter, s.Scheme)
			i := 4 * (y*w + x)
			got := palette.RGB{
				R: int(frame.Pixels[i]),
				G: int(frame.Pixels[i+1]),
				B: int(frame.Pixels[i+2]),
			}
			if got != want {
				t.Fatalf("pixel (%d, %d): expected %v, got %v", x, y, want, got)
			}
			if frame.Pixels[i+3] != 255 {
				t.Fatalf("pixel (%d, %d): expected alpha 255, got %d", x, y, frame.Pixels[i+3])
			}
		}
	}
}

func TestColorizeClampsForeignCounts(t *testing.T) {
	f := fractal.NewField(2, 1, 10)
	f.Counts = []int{-3, 99}
	frame := Colorize(f, palette.Grayscale)
	if frame.Pixels[0] != 0 || frame.Pixels[1] != 0 || frame.Pixels[2] != 0 {
		t.Errorf("expected negative count to clamp to iteration 0")
	}
	// counts above the bound read as in-set black
	if frame.Pixels[4] != 0 || frame.Pixels[5] != 0 || frame.Pixels[6] != 0 {
		t.Errorf("expected oversized count to clamp to the in-set color")
	}
}

func waitForFrame(t *testing.T, j *Job) *Frame {
	t.Helper()
	deadline := time.Now().Add(10 * time.Second)
	for {
		if f := j.Take(); f != nil {
			return f
		}
		if time.Now().After(deadline) {
			t.Fatal("timed out waiting for render job")
		}
		time.Sleep(time.Millisecond)
	}
}

func TestJobDeliversFrameOnce(t *testing.T) {
	j := &Job{}
	j.Begin(Settings{View: viewport.Default(), MaxIter: 50, Scheme: palette.Fire}, 64, 48)
	frame := waitForFrame(t, j)
	if frame.Width != 64 || frame.Height != 48 {
		t.Errorf("expected 64x48 frame, got %dx%d", frame.Width, frame.Height)
	}
	if j.Take() != nil {
		t.Errorf("expected second Take to return nil")
	}
	if j.Busy() {
		t.Errorf("expected job idle after delivery")
	}
}

func TestJobShowsBusyWhileRendering(t *testing.T) {
	j := &Job{}
	// a deep in-set view keeps the render in flight long enough to observe
	j.Begin(Settings{View: viewport.Default(), MaxIter: 2000, Scheme: palette.Classic}, 400, 300)
	if !j.Busy() {
		t.Errorf("expected job busy right after Begin")
	}
	waitForFrame(t, j)
}

func TestJobNewerRenderSupersedesOlder(t *testing.T) {
	j := &Job{}
	j.Begin(Settings{View: viewport.Default(), MaxIter: 2000, Scheme: palette.Classic}, 400, 300)
	j.Begin(Settings{View: viewport.Default(), MaxIter: 25, Scheme: palette.Classic}, 32, 24)
	frame := waitForFrame(t, j)
	if frame.Field.MaxIter != 25 {
		t.Errorf("expected the later render's frame, got maxIter %d", frame.Field.MaxIter)
	}
	// the superseded frame must never surface
	time.Sleep(50 * time.Millisecond)
	if f := j.Take(); f != nil {
		t.Errorf("expected no further frames, got one with maxIter %d", f.Field.MaxIter)
	}
}
