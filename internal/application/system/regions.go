package system

import (
	"fmt"
	"log"

	"github.com/younwookim/starmap/internal/application/host"
	"github.com/younwookim/starmap/internal/domain/entity"
)

// regionView pairs a region with the circle drawn for it
type regionView struct {
	region entity.Region
	circle host.Circle
}

// RegionController owns the clickable starmap regions: one per registered
// world except the starmap. The set is fixed once BuildRegions has run.
type RegionController struct {
	host     host.Host
	registry *entity.Registry
	styles   map[entity.WorldID]entity.RegionStyle
	logger   *log.Logger

	views []*regionView
	byID  map[entity.WorldID]*regionView
}

// NewRegionController creates a controller. styles must hold one entry per
// destination world.
func NewRegionController(h host.Host, registry *entity.Registry, styles map[entity.WorldID]entity.RegionStyle, logger *log.Logger) *RegionController {
	return &RegionController{
		host:     h,
		registry: registry,
		styles:   styles,
		logger:   orDefault(logger),
		byID:     make(map[entity.WorldID]*regionView),
	}
}

// BuildRegions draws a circle for every destination world and binds its
// activation to onActivate. Hidden regions ignore activation.
func (c *RegionController) BuildRegions(onActivate func(entity.WorldID)) error {
	if len(c.views) > 0 {
		return fmt.Errorf("regions already built")
	}

	dests := c.registry.Destinations()
	for _, w := range dests {
		if _, ok := c.styles[w.ID]; !ok {
			return fmt.Errorf("no region style for world %q", w.ID)
		}
	}

	c.logger.Printf("Adding starmap locations...")
	for _, w := range dests {
		style := c.styles[w.ID]
		v := &regionView{
			region: entity.Region{ID: w.ID, Style: style},
			circle: c.host.DrawCircle(style.X, style.Y, style.Radius, style.Color, style.Alpha),
		}

		id := w.ID
		v.circle.OnActivate(func() {
			if !v.circle.Visible() {
				c.logger.Printf("Ignoring click on hidden region %s", id)
				return
			}
			c.logger.Printf("Traveling to %s...", id)
			onActivate(id)
		})

		c.views = append(c.views, v)
		c.byID[id] = v
	}

	return nil
}

// SetVisible shows or hides every region at once
func (c *RegionController) SetVisible(visible bool) {
	for _, v := range c.views {
		v.circle.SetVisible(visible)
	}
}

// AllVisible reports whether every region is visible
func (c *RegionController) AllVisible() bool {
	for _, v := range c.views {
		if !v.circle.Visible() {
			return false
		}
	}
	return len(c.views) > 0
}

// AnyVisible reports whether at least one region is visible
func (c *RegionController) AnyVisible() bool {
	for _, v := range c.views {
		if v.circle.Visible() {
			return true
		}
	}
	return false
}

// Reposition puts every circle back at its design-space coordinates
func (c *RegionController) Reposition() {
	for _, v := range c.views {
		v.circle.SetPosition(v.region.Style.X, v.region.Style.Y)
	}
}

// Regions returns the regions in configuration order
func (c *RegionController) Regions() []entity.Region {
	out := make([]entity.Region, 0, len(c.views))
	for _, v := range c.views {
		out = append(out, v.region)
	}
	return out
}

// RegionAt returns the visible region under (x, y), if any
func (c *RegionController) RegionAt(x, y float64) (entity.Region, bool) {
	for i := len(c.views) - 1; i >= 0; i-- {
		v := c.views[i]
		if v.circle.Visible() && v.region.Contains(x, y) {
			return v.region, true
		}
	}
	return entity.Region{}, false
}

func orDefault(logger *log.Logger) *log.Logger {
	if logger == nil {
		return log.Default()
	}
	return logger
}
