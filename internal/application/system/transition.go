package system

import (
	"fmt"
	"log"
	"time"

	"github.com/younwookim/starmap/internal/application/host"
	"github.com/younwookim/starmap/internal/application/state"
	"github.com/younwookim/starmap/internal/domain/entity"
)

// DefaultFlashDuration is the length of each half of the warp flash
const DefaultFlashDuration = 500 * time.Millisecond

// Committer switches the current world while the screen is blanked
type Committer interface {
	Commit(target entity.WorldID) error
	AtStarmap() bool
}

// TransitionEngine drives the two-phase warp flash:
//
//	Idle -> FlashingIn(target) -> FlashingOut -> Idle
//
// The world switch is committed from the flash-in completion, while the
// overlay is fully opaque, and strictly before flash-out starts.
type TransitionEngine struct {
	host      host.Host
	overlay   host.Rect
	regions   *RegionController
	layout    *LayoutManager
	committer Committer
	duration  time.Duration
	logger    *log.Logger

	state  state.TransitionState
	target entity.WorldID // valid only while FlashingIn
}

// NewTransitionEngine creates an idle engine. A non-positive duration
// falls back to DefaultFlashDuration.
func NewTransitionEngine(h host.Host, overlay host.Rect, regions *RegionController, layout *LayoutManager, committer Committer, duration time.Duration, logger *log.Logger) *TransitionEngine {
	if duration <= 0 {
		duration = DefaultFlashDuration
	}
	return &TransitionEngine{
		host:      h,
		overlay:   overlay,
		regions:   regions,
		layout:    layout,
		committer: committer,
		duration:  duration,
		logger:    orDefault(logger),
		state:     state.StateIdle,
	}
}

// RequestTransition starts a warp to target and returns immediately.
// While another warp is in flight the request is dropped and an error
// wrapping entity.ErrTransitionInProgress is returned.
func (e *TransitionEngine) RequestTransition(target entity.WorldID) error {
	if e.state.Busy() {
		err := fmt.Errorf("%w: warp to %q dropped while %s", entity.ErrTransitionInProgress, target, e.state)
		e.logger.Print(err)
		return err
	}

	e.logger.Printf("Initiating warp jump to %s...", target)

	e.regions.SetVisible(false)
	e.layout.Apply(e.host.ViewportSize())

	e.state = state.StateFlashingIn
	e.target = target
	e.host.Animate(e.overlay, 0, 1, e.duration, e.onFlashInComplete)

	return nil
}

// State returns the current transition phase
func (e *TransitionEngine) State() state.TransitionState {
	return e.state
}

// Target returns the pending destination while flashing in
func (e *TransitionEngine) Target() (entity.WorldID, bool) {
	if e.state != state.StateFlashingIn {
		return "", false
	}
	return e.target, true
}

// Duration returns the length of each flash phase
func (e *TransitionEngine) Duration() time.Duration {
	return e.duration
}

func (e *TransitionEngine) onFlashInComplete() {
	if e.state != state.StateFlashingIn {
		e.logger.Printf("Ignoring flash-in completion in state %s", e.state)
		return
	}

	target := e.target
	if err := e.committer.Commit(target); err != nil {
		// Still fade back so the screen is not left blanked, and put the
		// regions back the way the unchanged world wants them
		e.logger.Printf("Error: warp to %s failed: %v", target, err)
		e.regions.SetVisible(e.committer.AtStarmap())
	}

	e.state = state.StateFlashingOut
	e.target = ""
	e.host.Animate(e.overlay, 1, 0, e.duration, e.onFlashOutComplete)
}

func (e *TransitionEngine) onFlashOutComplete() {
	if e.state != state.StateFlashingOut {
		e.logger.Printf("Ignoring flash-out completion in state %s", e.state)
		return
	}

	e.state = state.StateIdle
}
