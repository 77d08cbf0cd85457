// Package game provides the main game loop manager that handles Scene
// transitions and window resizes.
package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/starmap/internal/application/scene"
	"github.com/younwookim/starmap/internal/domain/entity"
)

// Game implements ebiten.Game and manages Scene transitions.
// The logical screen always matches the window, so every window size
// change becomes a viewport resize for the current scene.
type Game struct {
	current scene.Scene
	screenW int
	screenH int
	dt      float64
}

// New creates a new Game with the given initial scene and window size.
// The initial scene's OnEnter is called immediately.
func New(initialScene scene.Scene, screenW, screenH int) *Game {
	g := &Game{
		current: initialScene,
		screenW: screenW,
		screenH: screenH,
		dt:      1.0 / 60.0, // Default to 60 FPS
	}
	g.current.OnEnter()
	return g
}

// Update updates the current scene and handles scene transitions.
// Implements ebiten.Game interface.
func (g *Game) Update() error {
	next, err := g.current.Update(g.dt)
	if err != nil {
		return err
	}

	// Handle scene transition
	if next != nil {
		g.current.OnExit()
		g.current = next
		g.current.OnEnter()
		g.resize(g.screenW, g.screenH)
	}

	return nil
}

// Draw renders the current scene.
// Implements ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

// Layout reports the outside size as the logical size and forwards changes
// to the current scene. A zero size (minimized window) keeps the last one.
// Implements ebiten.Game interface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	vp := entity.Viewport{Width: outsideWidth, Height: outsideHeight}
	if !vp.IsZero() && (outsideWidth != g.screenW || outsideHeight != g.screenH) {
		g.screenW, g.screenH = outsideWidth, outsideHeight
		g.resize(outsideWidth, outsideHeight)
	}
	return g.screenW, g.screenH
}

// Close notifies the current scene that the game is shutting down
func (g *Game) Close() {
	g.current.OnExit()
}

// SetDT sets the delta time used for updates.
// Useful for testing or custom frame rates.
func (g *Game) SetDT(dt float64) {
	g.dt = dt
}

func (g *Game) resize(w, h int) {
	if r, ok := g.current.(scene.Resizer); ok {
		r.Resize(w, h)
	}
}
