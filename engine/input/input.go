package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputState tracks mouse and keyboard state per frame
type InputState struct {
	// Mouse
	MouseX, MouseY    int
	MouseDX, MouseDY  int // delta since last frame
	prevMouseX        int
	prevMouseY        int
	LeftPressed      bool
	RightPressed     bool
	LeftJustPressed  bool
	LeftJustReleased bool
	ScrollY          float64

	// Zoom-rectangle drag (left button)
	DragStartX, DragStartY int
	DragEndX, DragEndY     int
	Dragging               bool
	DragReleased           bool // a drag ended this frame; start/end hold the rectangle
	DragThreshold          int

	// Keyboard (held keys; edges go through IsKeyJustPressed)
	KeysPressed map[ebiten.Key]bool
}

func NewInputState() *InputState {
	return &InputState{
		DragThreshold: 5,
		KeysPressed:   make(map[ebiten.Key]bool),
	}
}

// Update should be called every frame
func (s *InputState) Update() {
	// Mouse position
	s.prevMouseX = s.MouseX
	s.prevMouseY = s.MouseY
	s.MouseX, s.MouseY = ebiten.CursorPosition()
	s.MouseDX = s.MouseX - s.prevMouseX
	s.MouseDY = s.MouseY - s.prevMouseY

	// Mouse buttons
	leftDown := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	rightDown := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)

	s.LeftJustPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	s.LeftJustReleased = inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
	s.LeftPressed = leftDown
	s.RightPressed = rightDown

	// Scroll
	_, scrollY := ebiten.Wheel()
	s.ScrollY = scrollY

	// Drag tracking: a press only becomes a drag past the threshold, so
	// plain clicks stay clicks
	s.DragReleased = false
	if s.LeftJustPressed {
		s.DragStartX = s.MouseX
		s.DragStartY = s.MouseY
		s.Dragging = false
	}
	if leftDown && !s.Dragging {
		dx := s.MouseX - s.DragStartX
		dy := s.MouseY - s.DragStartY
		if dx*dx+dy*dy > s.DragThreshold*s.DragThreshold {
			s.Dragging = true
		}
	}
	if !leftDown {
		if s.Dragging && s.LeftJustReleased {
			s.DragEndX = s.MouseX
			s.DragEndY = s.MouseY
			s.DragReleased = true
		}
		s.Dragging = false
	}

	// Held pan keys, read back through PanVector
	heldKeys := []ebiten.Key{
		ebiten.KeyUp, ebiten.KeyDown, ebiten.KeyLeft, ebiten.KeyRight,
		ebiten.KeyW, ebiten.KeyA, ebiten.KeyS, ebiten.KeyD,
	}
	for _, k := range heldKeys {
		s.KeysPressed[k] = ebiten.IsKeyPressed(k)
	}
}

// PanVector converts the held arrow/WASD keys into a pixel delta of
// step per frame, in the sign convention Viewport.Pan expects: left
// keys move the view left, up keys move it up.
func (s *InputState) PanVector(step float64) (dx, dy float64) {
	if s.KeysPressed[ebiten.KeyLeft] || s.KeysPressed[ebiten.KeyA] {
		dx += step
	}
	if s.KeysPressed[ebiten.KeyRight] || s.KeysPressed[ebiten.KeyD] {
		dx -= step
	}
	if s.KeysPressed[ebiten.KeyUp] || s.KeysPressed[ebiten.KeyW] {
		dy += step
	}
	if s.KeysPressed[ebiten.KeyDown] || s.KeysPressed[ebiten.KeyS] {
		dy -= step
	}
	return dx, dy
}

// IsKeyJustPressed returns true if key was just pressed this frame
func (s *InputState) IsKeyJustPressed(key ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(key)
}

// DragRect returns the zoom rectangle while a drag is in progress
func (s *InputState) DragRect() (x1, y1, x2, y2 int, active bool) {
	if !s.Dragging {
		return 0, 0, 0, 0, false
	}
	return s.DragStartX, s.DragStartY, s.MouseX, s.MouseY, true
}

// ReleasedRect returns the final zoom rectangle on the frame a drag
// ended
func (s *InputState) ReleasedRect() (x1, y1, x2, y2 int, ok bool) {
	if !s.DragReleased {
		return 0, 0, 0, 0, false
	}
	return s.DragStartX, s.DragStartY, s.DragEndX, s.DragEndY, true
}
