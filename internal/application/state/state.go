package state

import "github.com/younwookim/starmap/internal/domain/entity"

// TransitionState represents the phase of the warp effect
type TransitionState int

const (
	StateIdle TransitionState = iota
	StateFlashingIn
	StateFlashingOut
)

// String returns the string representation of the transition state
func (s TransitionState) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateFlashingIn:
		return "FlashingIn"
	case StateFlashingOut:
		return "FlashingOut"
	default:
		return "Unknown"
	}
}

// Busy reports whether a warp is in flight
func (s TransitionState) Busy() bool {
	return s != StateIdle
}

// Navigation is where the user currently is.
// It is mutated only when a warp's flash-in completes.
type Navigation struct {
	Current entity.WorldID
	// ReturnVisible is true iff Current is not the starmap
	ReturnVisible bool
}

// NewNavigation starts on the starmap with the return button hidden
func NewNavigation(starmap entity.WorldID) Navigation {
	return Navigation{Current: starmap}
}
