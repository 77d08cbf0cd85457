// Package starmap provides the navigation scene: the starmap with its
// clickable regions, the destination worlds and the warp between them.
package starmap

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/starmap/internal/application/host"
	"github.com/younwookim/starmap/internal/application/replay"
	"github.com/younwookim/starmap/internal/application/scene"
	"github.com/younwookim/starmap/internal/application/state"
	"github.com/younwookim/starmap/internal/application/system"
	"github.com/younwookim/starmap/internal/domain/entity"
	"github.com/younwookim/starmap/internal/infrastructure/config"
)

// Colors used when a configured color is unusable
var (
	colorWhite  = color.RGBA{255, 255, 255, 255}
	colorButton = color.RGBA{34, 34, 34, 255}
)

// Surface is a host the scene can also tick, click, draw and resize
type Surface interface {
	host.Host
	Update(dt float64)
	Click(x, y float64) bool
	Draw(screen *ebiten.Image)
	Resize(w, h int)
}

// Options configures optional scene behavior
type Options struct {
	Logger     *log.Logger
	RecordPath string             // Record input to this file when set
	ConfigName string             // Stored in recordings
	Replay     *replay.ReplayData // Play this recording before live input

	// Live input source; defaults to the ebiten input system
	Input  func() system.InputState
	Cursor func(ebiten.CursorShapeType)
}

// Starmap is the navigation scene
type Starmap struct {
	cfg     *config.NavConfig
	surface Surface
	logger  *log.Logger

	registry *entity.Registry
	regions  *system.RegionController
	layout   *system.LayoutManager
	machine  *system.WorldStateMachine
	engine   *system.TransitionEngine

	inputSystem *system.InputSystem
	liveInput   func() system.InputState
	cursor      func(ebiten.CursorShapeType)
	hovering    bool

	// Input recording and playback
	recorder       *Recorder
	recordFilename string
	replayer       *replay.Replayer
	liveSize       *entity.Viewport // window size seen while replaying
}

// New builds the scene on surface: loads every background, draws the
// background, overlay, return button and regions, and lays them out for the
// current viewport.
func New(cfg *config.NavConfig, surface Surface, opts Options) (*Starmap, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	registry, err := cfg.Registry()
	if err != nil {
		return nil, fmt.Errorf("failed to build world registry: %w", err)
	}
	styles, err := cfg.RegionStyles()
	if err != nil {
		return nil, fmt.Errorf("failed to build regions: %w", err)
	}

	s := &Starmap{
		cfg:            cfg,
		surface:        surface,
		logger:         logger,
		registry:       registry,
		inputSystem:    system.NewInputSystem(),
		liveInput:      opts.Input,
		cursor:         opts.Cursor,
		recordFilename: opts.RecordPath,
	}
	if s.liveInput == nil {
		s.liveInput = s.inputSystem.GetInput
	}
	if s.cursor == nil {
		s.cursor = ebiten.SetCursorShape
	}

	logger.Printf("Loading images...")
	for _, w := range registry.Worlds() {
		if err := surface.LoadImage(string(w.ID), w.Asset); err != nil {
			logger.Printf("Error: image for %s not found: %v", w.ID, err)
		}
	}

	logger.Printf("Creating scene...")
	vp := surface.ViewportSize()
	cx, cy := vp.Center()

	background := surface.DrawImage(string(registry.Starmap()))

	s.regions = system.NewRegionController(surface, registry, styles, logger)

	// Draw order is back to front: regions, return button, then the flash overlay
	if err := s.regions.BuildRegions(func(id entity.WorldID) {
		s.handle(system.WarpIntent{Target: id})
	}); err != nil {
		return nil, err
	}

	rb := cfg.ReturnButton
	button := surface.DrawText(cx, cy, rb.Label, host.TextStyle{
		FontSize:   rb.FontSize,
		Color:      config.ColorOr(rb.Color, colorWhite),
		Background: config.ColorOr(rb.Background, colorButton),
		PaddingX:   rb.PaddingX,
		PaddingY:   rb.PaddingY,
	})
	button.OnActivate(func() {
		s.handle(system.ReturnIntent{})
	})

	overlay := surface.DrawRectangle(0, 0, float64(vp.Width), float64(vp.Height),
		config.ColorOr(cfg.Transition.Color, colorWhite))
	overlay.SetAlpha(0)

	s.layout = system.NewLayoutManager(background, overlay, button, s.regions, rb.BottomOffset)
	s.machine = system.NewWorldStateMachine(registry, surface, background, button, s.regions, s.layout, logger)
	s.engine = system.NewTransitionEngine(surface, overlay, s.regions, s.layout, s.machine, cfg.FlashDuration(), logger)
	s.machine.Bind(s.engine)

	s.layout.Apply(vp)
	surface.OnViewportResize(s.layout.Apply)

	if opts.RecordPath != "" {
		s.recorder = NewRecorder(opts.ConfigName)
		logger.Printf("Recording enabled: %s (session: %s)", opts.RecordPath, s.recorder.Session())
	}
	if opts.Replay != nil {
		s.replayer = replay.NewReplayer(*opts.Replay)
		logger.Printf("Replaying session %s (%d frames)", s.replayer.Session(), s.replayer.TotalFrames())
	}

	return s, nil
}

// Update reads input, delivers resizes and tween completions, then routes
// clicks and keys (implements scene.Scene)
func (s *Starmap) Update(dt float64) (scene.Scene, error) {
	in := s.nextInput()

	s.surface.Update(dt)

	// Record the viewport this tick's click is routed against
	if s.recorder != nil {
		s.recorder.RecordFrame(in, s.surface.ViewportSize())
		if in.Save {
			s.saveRecording()
		}
	}

	if in.MouseClick {
		s.surface.Click(float64(in.MouseX), float64(in.MouseY))
	}
	for _, it := range s.inputSystem.Intents(in) {
		s.handle(it)
	}

	s.updateCursor(in)

	return nil, nil // nil = stay on this scene
}

// nextInput returns the replayed input while a recording lasts, then live input
func (s *Starmap) nextInput() system.InputState {
	if s.replayer != nil {
		ri, ok := s.replayer.GetInput()
		if ok {
			if ri.Width > 0 && ri.Height > 0 {
				s.surface.Resize(ri.Width, ri.Height)
			}
			return system.InputState{
				MouseX:     ri.MouseX,
				MouseY:     ri.MouseY,
				MouseClick: ri.MouseClick,
				Escape:     ri.Escape,
			}
		}

		s.logger.Printf("Replay finished after %d frames", s.replayer.TotalFrames())
		s.replayer = nil
		if s.liveSize != nil {
			s.surface.Resize(s.liveSize.Width, s.liveSize.Height)
			s.liveSize = nil
		}
	}
	return s.liveInput()
}

// handle routes a navigation intent. Rejections are logged by the engine and
// otherwise have no visible effect.
func (s *Starmap) handle(i system.Intent) {
	switch it := i.(type) {
	case system.WarpIntent:
		_ = s.engine.RequestTransition(it.Target)
	case system.ReturnIntent:
		if s.machine.AtStarmap() && !s.engine.State().Busy() {
			return
		}
		_ = s.machine.RequestReturn()
	}
}

func (s *Starmap) updateCursor(in system.InputState) {
	_, over := s.regions.RegionAt(float64(in.MouseX), float64(in.MouseY))
	if over == s.hovering {
		return
	}
	s.hovering = over
	if over {
		s.cursor(ebiten.CursorShapePointer)
	} else {
		s.cursor(ebiten.CursorShapeDefault)
	}
}

// Draw renders the scene (implements scene.Scene)
func (s *Starmap) Draw(screen *ebiten.Image) {
	s.surface.Draw(screen)
}

// Resize forwards a window size change to the surface (implements scene.Resizer).
// While a recording is replaying, its own sizes win and the live size is
// applied once it ends.
func (s *Starmap) Resize(w, h int) {
	if s.replayer != nil {
		s.liveSize = &entity.Viewport{Width: w, Height: h}
		return
	}
	s.surface.Resize(w, h)
}

// OnEnter is called when entering this scene
func (s *Starmap) OnEnter() {}

// OnExit saves the recording, if any
func (s *Starmap) OnExit() {
	if s.recorder != nil && s.recorder.IsRecording() {
		s.saveRecording()
		s.recorder.Stop()
	}
}

// saveRecording saves the current recording to file
func (s *Starmap) saveRecording() {
	if s.recorder == nil {
		return
	}

	filename := s.recordFilename
	if filename == "" {
		filename = GenerateFilename()
	}

	if err := s.recorder.Save(filename); err != nil {
		s.logger.Printf("Failed to save recording: %v", err)
	} else {
		s.logger.Printf("Recording saved: %s (%d frames)", filename, s.recorder.FrameCount())
	}
}

// Current returns the current world
func (s *Starmap) Current() entity.WorldID {
	return s.machine.Current()
}

// Navigation returns the navigation state
func (s *Starmap) Navigation() state.Navigation {
	return s.machine.Navigation()
}

// TransitionState returns the warp phase
func (s *Starmap) TransitionState() state.TransitionState {
	return s.engine.State()
}

// RegionsVisible reports whether every region is visible
func (s *Starmap) RegionsVisible() bool {
	return s.regions.AllVisible()
}

// AnyRegionVisible reports whether any region is visible
func (s *Starmap) AnyRegionVisible() bool {
	return s.regions.AnyVisible()
}
