// Package scene defines the Scene interface for game screens.
//
// The starmap navigation screen implements Scene; the game loop delegates
// Update and Draw to it and forwards window size changes to scenes that
// implement Resizer.
package scene

import "github.com/hajimehoshi/ebiten/v2"

// Scene represents a game screen
//
// The game loop delegates Update and Draw calls to the current scene.
// Scene transitions are handled by returning a new Scene from Update.
type Scene interface {
	// Update updates the scene state.
	// dt is the delta time in seconds (typically 1/60).
	// Returns the next scene if a transition is needed, nil to stay on current scene.
	// Returns an error to terminate the game.
	Update(dt float64) (next Scene, err error)

	// Draw renders the scene to the screen.
	Draw(screen *ebiten.Image)

	// OnEnter is called when entering this scene.
	OnEnter()

	// OnExit is called when leaving this scene, and when the game shuts down.
	OnExit()
}

// Resizer is implemented by scenes whose layout follows the window size.
// Resize is called from the game loop whenever the outside size changes.
type Resizer interface {
	Resize(width, height int)
}
