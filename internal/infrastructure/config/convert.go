package config

import (
	"errors"
	"fmt"
	"image/color"
	"time"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/younwookim/starmap/internal/domain/entity"
)

// Validate checks the config for mistakes that would break navigation
func (c *NavConfig) Validate() error {
	var errs []error

	if c.Starmap == "" {
		errs = append(errs, errors.New("starmap is not set"))
	}
	if len(c.Worlds) == 0 {
		errs = append(errs, errors.New("no worlds configured"))
	}
	if c.Transition.FlashMs <= 0 {
		errs = append(errs, fmt.Errorf("transition.flashMs must be positive, got %d", c.Transition.FlashMs))
	}
	if c.Display.Width <= 0 || c.Display.Height <= 0 {
		errs = append(errs, fmt.Errorf("display size must be positive, got %dx%d", c.Display.Width, c.Display.Height))
	}
	if c.Display.TPS <= 0 {
		errs = append(errs, fmt.Errorf("display.tps must be positive, got %d", c.Display.TPS))
	}

	seen := make(map[string]bool, len(c.Worlds))
	foundStarmap := false
	for i, w := range c.Worlds {
		if w.ID == "" {
			errs = append(errs, fmt.Errorf("worlds[%d] has no id", i))
			continue
		}
		if seen[w.ID] {
			errs = append(errs, fmt.Errorf("world %q is listed twice", w.ID))
		}
		seen[w.ID] = true

		if w.ID == c.Starmap {
			foundStarmap = true
			continue
		}
		if w.Region == nil {
			errs = append(errs, fmt.Errorf("world %q has no region", w.ID))
			continue
		}
		if w.Region.Radius <= 0 {
			errs = append(errs, fmt.Errorf("world %q: region radius must be positive", w.ID))
		}
		if w.Region.Alpha < 0 || w.Region.Alpha > 1 {
			errs = append(errs, fmt.Errorf("world %q: region alpha %v outside [0,1]", w.ID, w.Region.Alpha))
		}
		if _, err := ParseColor(w.Region.Color); err != nil {
			errs = append(errs, fmt.Errorf("world %q: %w", w.ID, err))
		}
	}
	if c.Starmap != "" && len(c.Worlds) > 0 && !foundStarmap {
		errs = append(errs, fmt.Errorf("starmap %q is not among the worlds", c.Starmap))
	}

	return errors.Join(errs...)
}

// Registry builds the world registry
func (c *NavConfig) Registry() (*entity.Registry, error) {
	worlds := make([]entity.World, 0, len(c.Worlds))
	for _, w := range c.Worlds {
		worlds = append(worlds, entity.World{ID: entity.WorldID(w.ID), Asset: w.Asset})
	}
	return entity.NewRegistry(entity.WorldID(c.Starmap), worlds)
}

// RegionStyles returns the region style of every destination world
func (c *NavConfig) RegionStyles() (map[entity.WorldID]entity.RegionStyle, error) {
	styles := make(map[entity.WorldID]entity.RegionStyle, len(c.Worlds))
	for _, w := range c.Worlds {
		if w.ID == c.Starmap || w.Region == nil {
			continue
		}
		col, err := ParseColor(w.Region.Color)
		if err != nil {
			return nil, fmt.Errorf("world %q: %w", w.ID, err)
		}
		styles[entity.WorldID(w.ID)] = entity.RegionStyle{
			X:      w.Region.X,
			Y:      w.Region.Y,
			Radius: w.Region.Radius,
			Color:  col,
			Alpha:  w.Region.Alpha,
		}
	}
	return styles, nil
}

// FlashDuration returns the length of each half of the warp flash
func (c *NavConfig) FlashDuration() time.Duration {
	return time.Duration(c.Transition.FlashMs) * time.Millisecond
}

// ParseColor parses a hex color such as "#ff0000" or "#f00"
func ParseColor(s string) (color.RGBA, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("bad color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}

// ColorOr parses s, returning fallback when s is not a valid hex color
func ColorOr(s string, fallback color.RGBA) color.RGBA {
	c, err := ParseColor(s)
	if err != nil {
		return fallback
	}
	return c
}
