package entity

import (
	"fmt"

	"github.com/agnivade/levenshtein"
)

// suggestDistance is the largest edit distance still reported as a likely typo
const suggestDistance = 3

// Registry is the immutable mapping from world identifier to background asset.
// Worlds keep their configured order so regions are built and drawn deterministically.
type Registry struct {
	starmap WorldID
	worlds  []World
	byID    map[WorldID]World
}

// NewRegistry creates a registry. The starmap must be one of the worlds and
// identifiers must be unique and non-empty.
func NewRegistry(starmap WorldID, worlds []World) (*Registry, error) {
	r := &Registry{
		starmap: starmap,
		worlds:  make([]World, 0, len(worlds)),
		byID:    make(map[WorldID]World, len(worlds)),
	}

	for _, w := range worlds {
		if w.ID == "" {
			return nil, fmt.Errorf("world with asset %q has no identifier", w.Asset)
		}
		if _, dup := r.byID[w.ID]; dup {
			return nil, fmt.Errorf("duplicate world %q", w.ID)
		}
		r.byID[w.ID] = w
		r.worlds = append(r.worlds, w)
	}

	if _, ok := r.byID[starmap]; !ok {
		return nil, fmt.Errorf("starmap %q is not a registered world: %w", starmap, ErrUnknownWorld)
	}

	return r, nil
}

// Resolve returns the world registered under id, or an error wrapping ErrUnknownWorld
func (r *Registry) Resolve(id WorldID) (World, error) {
	w, ok := r.byID[id]
	if !ok {
		if s, found := r.Suggest(id); found {
			return World{}, fmt.Errorf("%w: %q (did you mean %q?)", ErrUnknownWorld, id, s)
		}
		return World{}, fmt.Errorf("%w: %q", ErrUnknownWorld, id)
	}
	return w, nil
}

// Starmap returns the identifier of the starmap world
func (r *Registry) Starmap() WorldID {
	return r.starmap
}

// IsStarmap reports whether id is the starmap identifier
func (r *Registry) IsStarmap(id WorldID) bool {
	return id == r.starmap
}

// Worlds returns every registered world in configuration order
func (r *Registry) Worlds() []World {
	out := make([]World, len(r.worlds))
	copy(out, r.worlds)
	return out
}

// Destinations returns every world except the starmap, in configuration order
func (r *Registry) Destinations() []World {
	out := make([]World, 0, len(r.worlds))
	for _, w := range r.worlds {
		if w.ID != r.starmap {
			out = append(out, w)
		}
	}
	return out
}

// Suggest returns the registered identifier closest to id by edit distance,
// if one is close enough to be a plausible typo.
func (r *Registry) Suggest(id WorldID) (WorldID, bool) {
	best := WorldID("")
	bestDist := suggestDistance + 1
	for _, w := range r.worlds {
		d := levenshtein.ComputeDistance(string(id), string(w.ID))
		if d < bestDist {
			best, bestDist = w.ID, d
		}
	}
	return best, best != ""
}
