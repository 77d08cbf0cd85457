package entity

import "image/color"

// WorldID identifies a world (the starmap or a destination)
type WorldID string

// World is one visual location and the background asset shown while it is current
type World struct {
	ID    WorldID
	Asset string // Path of the background image, relative to the assets directory
}

// RegionStyle is the look and the design-space placement of a starmap hotspot
type RegionStyle struct {
	X      float64 // Design-space center X (not rescaled with the viewport)
	Y      float64 // Design-space center Y
	Radius float64
	Color  color.RGBA
	Alpha  float64 // 0 = transparent, 1 = opaque
}

// Region is a clickable hotspot on the starmap leading to a destination world
type Region struct {
	ID    WorldID
	Style RegionStyle
}

// Contains reports whether (x, y) lies inside or on the region's circle
func (r Region) Contains(x, y float64) bool {
	dx := x - r.Style.X
	dy := y - r.Style.Y
	return dx*dx+dy*dy <= r.Style.Radius*r.Style.Radius
}

// Viewport is the current size of the render surface in pixels
type Viewport struct {
	Width  int
	Height int
}

// Center returns the midpoint of the viewport
func (v Viewport) Center() (float64, float64) {
	return float64(v.Width) / 2, float64(v.Height) / 2
}

// IsZero reports whether the viewport has no area (e.g. a minimized window)
func (v Viewport) IsZero() bool {
	return v.Width <= 0 || v.Height <= 0
}
