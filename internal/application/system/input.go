package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputSystem reads pointer and keyboard input once per tick
type InputSystem struct {
	touchIDs []ebiten.TouchID
}

// NewInputSystem creates a new input system
func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

// InputState holds the current input state
type InputState struct {
	MouseX     int
	MouseY     int
	MouseClick bool // Left button or a touch went down this tick
	Escape     bool
	Save       bool // F5: save the recording now
}

// GetInput reads the current input state.
// A new touch counts as a click at the touch position.
func (s *InputSystem) GetInput() InputState {
	mx, my := ebiten.CursorPosition()
	in := InputState{
		MouseX:     mx,
		MouseY:     my,
		MouseClick: inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		Escape:     inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		Save:       inpututil.IsKeyJustPressed(ebiten.KeyF5),
	}

	s.touchIDs = inpututil.AppendJustPressedTouchIDs(s.touchIDs[:0])
	if !in.MouseClick && len(s.touchIDs) > 0 {
		in.MouseX, in.MouseY = ebiten.TouchPosition(s.touchIDs[0])
		in.MouseClick = true
	}

	return in
}

// Intents converts keyboard input into navigation intents.
// Pointer clicks are routed by the host's hit-testing instead.
func (s *InputSystem) Intents(in InputState) []Intent {
	var out []Intent
	if in.Escape {
		out = append(out, ReturnIntent{})
	}
	return out
}
