package system

import (
	"bytes"
	"image/color"
	"log"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/younwookim/starmap/internal/application/host"
	"github.com/younwookim/starmap/internal/application/host/hosttest"
	"github.com/younwookim/starmap/internal/domain/entity"
)

const testStarmap = entity.WorldID("starmap")

// testRig wires every navigation component onto a fake host
type testRig struct {
	host     *hosttest.Host
	registry *entity.Registry
	regions  *RegionController
	layout   *LayoutManager
	machine  *WorldStateMachine
	engine   *TransitionEngine
	logs     *bytes.Buffer
}

func testWorlds() []entity.World {
	return []entity.World{
		{ID: "starmap", Asset: "starmap.png"},
		{ID: "firentis_space", Asset: "firentis_space.png"},
		{ID: "astor_region", Asset: "astor_region.png"},
		{ID: "neutral_zone", Asset: "neutral_zone.png"},
		{ID: "jungle_world", Asset: "jungle_world.png"},
		{ID: "asteroid_field", Asset: "asteroid_field.png"},
	}
}

func testStyles() map[entity.WorldID]entity.RegionStyle {
	return map[entity.WorldID]entity.RegionStyle{
		"firentis_space": {X: 600, Y: 400, Radius: 40, Color: color.RGBA{255, 0, 0, 255}, Alpha: 0.5},
		"astor_region":   {X: 1200, Y: 500, Radius: 40, Color: color.RGBA{0, 0, 255, 255}, Alpha: 0.5},
		"neutral_zone":   {X: 900, Y: 700, Radius: 40, Color: color.RGBA{0, 255, 0, 255}, Alpha: 0.5},
		"jungle_world":   {X: 1100, Y: 300, Radius: 40, Color: color.RGBA{255, 255, 0, 255}, Alpha: 0.5},
		"asteroid_field": {X: 700, Y: 600, Radius: 40, Color: color.RGBA{170, 170, 170, 255}, Alpha: 0.5},
	}
}

func newTestRig(t *testing.T) *testRig {
	t.Helper()

	logs := &bytes.Buffer{}
	logger := log.New(logs, "", 0)

	registry, err := entity.NewRegistry(testStarmap, testWorlds())
	require.NoError(t, err)

	h := hosttest.New(1280, 800)
	background := h.DrawImage(string(testStarmap))
	overlay := h.DrawRectangle(0, 0, 1280, 800, color.White)
	overlay.SetAlpha(0)
	button := h.DrawText(640, 750, "Return to Starmap", host.TextStyle{FontSize: 24})

	regions := NewRegionController(h, registry, testStyles(), logger)
	layout := NewLayoutManager(background, overlay, button, regions, DefaultReturnOffset)
	machine := NewWorldStateMachine(registry, h, background, button, regions, layout, logger)
	engine := NewTransitionEngine(h, overlay, regions, layout, machine, 500*time.Millisecond, logger)
	machine.Bind(engine)

	require.NoError(t, regions.BuildRegions(func(id entity.WorldID) {
		_ = engine.RequestTransition(id)
	}))
	layout.Apply(h.ViewportSize())
	h.OnViewportResize(layout.Apply)

	return &testRig{
		host:     h,
		registry: registry,
		regions:  regions,
		layout:   layout,
		machine:  machine,
		engine:   engine,
		logs:     logs,
	}
}

func (r *testRig) background() *hosttest.Image { return r.host.Background[0] }
func (r *testRig) overlay() *hosttest.Rect     { return r.host.Rects[0] }
func (r *testRig) button() *hosttest.Text      { return r.host.Texts[0] }

func (r *testRig) circle(id entity.WorldID) *hosttest.Circle {
	for i, reg := range r.regions.Regions() {
		if reg.ID == id {
			return r.host.Circles[i]
		}
	}
	return nil
}
