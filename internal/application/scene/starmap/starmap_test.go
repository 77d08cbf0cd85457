package starmap

import (
	"bytes"
	"log"
	"path/filepath"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/starmap/internal/application/host/hosttest"
	"github.com/younwookim/starmap/internal/application/replay"
	"github.com/younwookim/starmap/internal/application/state"
	"github.com/younwookim/starmap/internal/application/system"
	"github.com/younwookim/starmap/internal/domain/entity"
	"github.com/younwookim/starmap/internal/infrastructure/config"
)

const (
	tick      = 1.0 / 60.0
	maxTicks  = 600
	jungleX   = 1100
	jungleY   = 300
	returnX   = 640
	returnY   = 750
	starmapID = entity.WorldID("starmap")
)

// script feeds queued input, then an idle pointer
type script struct {
	queue []system.InputState
}

func (s *script) push(in ...system.InputState) { s.queue = append(s.queue, in...) }

func (s *script) next() system.InputState {
	if len(s.queue) == 0 {
		return system.InputState{}
	}
	in := s.queue[0]
	s.queue = s.queue[1:]
	return in
}

type fixture struct {
	scene   *Starmap
	host    *hosttest.Host
	input   *script
	logs    *bytes.Buffer
	cursors []ebiten.CursorShapeType
}

func loadTestConfig(t *testing.T) *config.NavConfig {
	t.Helper()
	cfg, err := config.NewLoader("../../../../cmd/starmap/configs").LoadNav()
	require.NoError(t, err)
	return cfg
}

func newFixture(t *testing.T, h *hosttest.Host, opts Options) *fixture {
	t.Helper()

	f := &fixture{host: h, input: &script{}, logs: &bytes.Buffer{}}
	opts.Logger = log.New(f.logs, "", 0)
	opts.Input = f.input.next
	opts.Cursor = func(c ebiten.CursorShapeType) { f.cursors = append(f.cursors, c) }

	s, err := New(loadTestConfig(t), h, opts)
	require.NoError(t, err)
	f.scene = s
	return f
}

func (f *fixture) step(t *testing.T) {
	t.Helper()
	next, err := f.scene.Update(tick)
	require.NoError(t, err)
	require.Nil(t, next)
}

// settle ticks until the warp is back to Idle
func (f *fixture) settle(t *testing.T) {
	t.Helper()
	for i := 0; i < maxTicks; i++ {
		f.step(t)
		if f.scene.TransitionState() == state.StateIdle && f.host.Pending() == 0 {
			return
		}
	}
	t.Fatalf("warp did not settle within %d ticks", maxTicks)
}

func click(x, y int) system.InputState {
	return system.InputState{MouseX: x, MouseY: y, MouseClick: true}
}

func TestNew_BuildsStarmap(t *testing.T) {
	h := hosttest.New(1280, 800)
	f := newFixture(t, h, Options{})

	assert.Len(t, h.Images, 6)
	assert.Equal(t, "starmap.png", h.Images["starmap"])
	require.Len(t, h.Background, 1)
	assert.Equal(t, "starmap", h.Background[0].Texture())

	w, hh := h.Background[0].DisplaySize()
	assert.Equal(t, 1280.0, w)
	assert.Equal(t, 800.0, hh)

	assert.Len(t, h.Circles, 5)
	assert.True(t, f.scene.RegionsVisible())
	assert.Equal(t, starmapID, f.scene.Current())
	assert.False(t, f.scene.Navigation().ReturnVisible)

	require.Len(t, h.Texts, 1)
	assert.Equal(t, "Return to Starmap", h.Texts[0].Content)
	assert.False(t, h.Texts[0].Visible())

	require.Len(t, h.Rects, 1)
	assert.Equal(t, 0.0, h.Rects[0].Alpha())
}

func TestNew_MissingImageIsLogged(t *testing.T) {
	h := hosttest.New(1280, 800)
	h.FailLoads["neutral_zone"] = true
	f := newFixture(t, h, Options{})

	assert.Contains(t, f.logs.String(), "Error: image for neutral_zone not found")
	assert.True(t, f.scene.RegionsVisible())
}

func TestUpdate_WarpAndReturn(t *testing.T) {
	h := hosttest.New(1280, 800)
	f := newFixture(t, h, Options{})

	f.input.push(click(jungleX, jungleY))
	f.step(t)
	assert.Equal(t, state.StateFlashingIn, f.scene.TransitionState())
	assert.False(t, f.scene.AnyRegionVisible())

	f.settle(t)
	assert.Equal(t, entity.WorldID("jungle_world"), f.scene.Current())
	assert.Equal(t, "jungle_world", h.Background[0].Texture())
	assert.True(t, h.Texts[0].Visible())
	assert.False(t, f.scene.AnyRegionVisible())
	assert.Equal(t, 0.0, h.Rects[0].Alpha())

	f.input.push(click(returnX, returnY))
	f.settle(t)
	assert.Equal(t, starmapID, f.scene.Current())
	assert.Equal(t, "starmap", h.Background[0].Texture())
	assert.False(t, h.Texts[0].Visible())
	assert.True(t, f.scene.RegionsVisible())

	logs := f.logs.String()
	assert.Contains(t, logs, "Traveling to jungle_world...")
	assert.Contains(t, logs, "Switching world to: jungle_world")
	assert.Contains(t, logs, "Switching world to: starmap")
}

func TestUpdate_EscapeReturns(t *testing.T) {
	h := hosttest.New(1280, 800)
	f := newFixture(t, h, Options{})

	f.input.push(click(jungleX, jungleY))
	f.settle(t)
	require.Equal(t, entity.WorldID("jungle_world"), f.scene.Current())

	f.input.push(system.InputState{Escape: true})
	f.settle(t)
	assert.Equal(t, starmapID, f.scene.Current())
	assert.True(t, f.scene.RegionsVisible())
}

func TestUpdate_EscapeOnStarmapIsIgnored(t *testing.T) {
	h := hosttest.New(1280, 800)
	f := newFixture(t, h, Options{})

	f.input.push(system.InputState{Escape: true})
	f.step(t)

	assert.Equal(t, 0, h.Started())
	assert.Equal(t, state.StateIdle, f.scene.TransitionState())
	assert.True(t, f.scene.RegionsVisible())
}

func TestUpdate_ClickDuringWarpIsIgnored(t *testing.T) {
	h := hosttest.New(1280, 800)
	f := newFixture(t, h, Options{})

	f.input.push(click(jungleX, jungleY), click(600, 400))
	f.step(t)
	f.step(t)
	assert.Equal(t, 1, h.Started())

	f.settle(t)
	assert.Equal(t, entity.WorldID("jungle_world"), f.scene.Current())
}

func TestUpdate_ClickOnEmptySpace(t *testing.T) {
	h := hosttest.New(1280, 800)
	f := newFixture(t, h, Options{})

	f.input.push(click(10, 10))
	f.step(t)

	assert.Equal(t, 0, h.Started())
	assert.Equal(t, starmapID, f.scene.Current())
}

func TestUpdate_CursorFollowsRegions(t *testing.T) {
	h := hosttest.New(1280, 800)
	f := newFixture(t, h, Options{})

	f.input.push(
		system.InputState{MouseX: jungleX, MouseY: jungleY},
		system.InputState{MouseX: jungleX + 5, MouseY: jungleY},
		system.InputState{MouseX: 10, MouseY: 10},
	)
	f.step(t)
	f.step(t)
	f.step(t)

	assert.Equal(t, []ebiten.CursorShapeType{ebiten.CursorShapePointer, ebiten.CursorShapeDefault}, f.cursors)
}

func TestResize_ReappliesLayout(t *testing.T) {
	h := hosttest.New(1280, 800)
	f := newFixture(t, h, Options{})

	f.scene.Resize(1920, 1080)
	assert.Equal(t, entity.Viewport{Width: 1280, Height: 800}, h.ViewportSize())

	f.step(t)
	w, hh := h.Background[0].DisplaySize()
	assert.Equal(t, 1920.0, w)
	assert.Equal(t, 1080.0, hh)
	x, y := h.Texts[0].Position()
	assert.Equal(t, 960.0, x)
	assert.Equal(t, 1030.0, y)
}

func TestReplay_DrivesInputAndViewport(t *testing.T) {
	data := replay.CreateTestReplayData(3, 0, 0, 1280, 800)
	data.Frames[0] = replay.FrameInput{F: 0, MX: jungleX, MY: jungleY, MC: true, W: 1280, H: 800}
	data.Frames[2].W, data.Frames[2].H = 1024, 768

	h := hosttest.New(1280, 800)
	f := newFixture(t, h, Options{Replay: &data})

	f.step(t)
	assert.Equal(t, state.StateFlashingIn, f.scene.TransitionState())

	// Live resizes wait for the recording to end
	f.scene.Resize(1600, 900)
	assert.Equal(t, entity.Viewport{Width: 1280, Height: 800}, h.ViewportSize())

	f.step(t)
	f.step(t)
	assert.Equal(t, entity.Viewport{Width: 1024, Height: 768}, h.ViewportSize())

	f.settle(t)
	assert.Equal(t, entity.Viewport{Width: 1600, Height: 900}, h.ViewportSize())
	assert.Equal(t, entity.WorldID("jungle_world"), f.scene.Current())
	assert.Contains(t, f.logs.String(), "Replay finished after 3 frames")
}

func TestRecord_SavesFrames(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")

	h := hosttest.New(1280, 800)
	f := newFixture(t, h, Options{RecordPath: path, ConfigName: "worlds.json"})

	f.input.push(click(jungleX, jungleY), system.InputState{Save: true})
	f.step(t)
	f.step(t)
	assert.Contains(t, f.logs.String(), "Recording saved: "+path+" (2 frames)")

	f.step(t)
	f.scene.OnExit()

	data, err := replay.LoadReplay(path)
	require.NoError(t, err)
	assert.Equal(t, replay.Version, data.Version)
	assert.Equal(t, "worlds.json", data.Config)
	assert.NotEmpty(t, data.Session)
	require.Len(t, data.Frames, 3)
	assert.True(t, data.Frames[0].MC)
	assert.Equal(t, jungleX, data.Frames[0].MX)
	assert.Equal(t, 1280, data.Frames[0].W)
	assert.Equal(t, 800, data.Frames[0].H)
}

func TestRecord_ResizeAndClickOnSameTick(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resize.json")

	live := newFixture(t, hosttest.New(1280, 800), Options{RecordPath: path, ConfigName: "worlds.json"})
	live.input.push(click(jungleX, jungleY))
	live.settle(t)
	require.Equal(t, entity.WorldID("jungle_world"), live.scene.Current())

	// The button moves to (960, 1030) on the tick the resize lands
	live.scene.Resize(1920, 1080)
	live.input.push(click(960, 1030))
	live.step(t)
	require.Equal(t, state.StateFlashingIn, live.scene.TransitionState())
	live.settle(t)
	require.Equal(t, starmapID, live.scene.Current())
	live.scene.OnExit()

	data, err := replay.LoadReplay(path)
	require.NoError(t, err)

	var clicked []replay.FrameInput
	for _, fr := range data.Frames {
		if fr.MC {
			clicked = append(clicked, fr)
		}
	}
	require.Len(t, clicked, 2)
	assert.Equal(t, 1920, clicked[1].W)
	assert.Equal(t, 1080, clicked[1].H)

	h := hosttest.New(1280, 800)
	replayed := newFixture(t, h, Options{Replay: data})
	for range data.Frames {
		replayed.step(t)
	}
	replayed.settle(t)

	assert.Equal(t, starmapID, replayed.scene.Current())
	assert.True(t, replayed.scene.RegionsVisible())
	assert.Equal(t, entity.Viewport{Width: 1920, Height: 1080}, h.ViewportSize())
	assert.Contains(t, replayed.logs.String(), "Switching world to: jungle_world")
}
