package system

import (
	"fmt"
	"log"

	"github.com/younwookim/starmap/internal/application/host"
	"github.com/younwookim/starmap/internal/application/state"
	"github.com/younwookim/starmap/internal/domain/entity"
)

// TransitionRequester starts warps
type TransitionRequester interface {
	RequestTransition(target entity.WorldID) error
}

// WorldStateMachine holds the navigation state and is the only place it
// changes. Commit is called by the TransitionEngine at the peak of the flash.
type WorldStateMachine struct {
	registry     *entity.Registry
	host         host.Host
	background   host.Image
	returnButton host.Text
	regions      *RegionController
	layout       *LayoutManager
	logger       *log.Logger

	nav       state.Navigation
	requester TransitionRequester
}

// NewWorldStateMachine starts on the starmap with the return button hidden
func NewWorldStateMachine(registry *entity.Registry, h host.Host, background host.Image, returnButton host.Text, regions *RegionController, layout *LayoutManager, logger *log.Logger) *WorldStateMachine {
	m := &WorldStateMachine{
		registry:     registry,
		host:         h,
		background:   background,
		returnButton: returnButton,
		regions:      regions,
		layout:       layout,
		logger:       orDefault(logger),
		nav:          state.NewNavigation(registry.Starmap()),
	}
	m.returnButton.SetVisible(m.nav.ReturnVisible)
	return m
}

// Bind sets the engine used by RequestReturn
func (m *WorldStateMachine) Bind(r TransitionRequester) {
	m.requester = r
}

// Commit makes target the current world. An unknown target leaves every
// piece of state untouched and returns an error wrapping entity.ErrUnknownWorld.
func (m *WorldStateMachine) Commit(target entity.WorldID) error {
	if _, err := m.registry.Resolve(target); err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	m.logger.Printf("Switching world to: %s", target)

	m.background.SetTexture(string(target))

	m.nav.Current = target
	m.nav.ReturnVisible = !m.registry.IsStarmap(target)
	m.returnButton.SetVisible(m.nav.ReturnVisible)

	if m.registry.IsStarmap(target) {
		m.regions.SetVisible(true)
	}

	m.layout.Apply(m.host.ViewportSize())
	return nil
}

// RequestReturn starts a warp back to the starmap
func (m *WorldStateMachine) RequestReturn() error {
	if m.requester == nil {
		return fmt.Errorf("world state machine has no transition engine bound")
	}
	return m.requester.RequestTransition(m.registry.Starmap())
}

// Navigation returns a copy of the navigation state
func (m *WorldStateMachine) Navigation() state.Navigation {
	return m.nav
}

// Current returns the current world
func (m *WorldStateMachine) Current() entity.WorldID {
	return m.nav.Current
}

// AtStarmap reports whether the current world is the starmap
func (m *WorldStateMachine) AtStarmap() bool {
	return m.registry.IsStarmap(m.nav.Current)
}
