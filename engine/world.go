package engine

import (
	"fmt"

	"github.com/lixenwraith/rocks-and-bullets/component"
	"github.com/lixenwraith/rocks-and-bullets/core"
)

// World contains every simulated entity
// It is owned by one Simulation and only mutated from the loop goroutine
type World struct {
	Arena   Arena
	Ships   []component.Ship   // One per player, indexed by PlayerID
	Bullets []component.Bullet // Spawn order, which is also draw order
	Tick    uint64
}

// NewWorld creates a world for the given ships, ships must be ordered by player
func NewWorld(arena Arena, ships []component.Ship) (*World, error) {
	if err := arena.Validate(); err != nil {
		return nil, err
	}
	for i, s := range ships {
		if s.Player != core.PlayerID(i) {
			return nil, fmt.Errorf("ship %d belongs to %s, ships must be ordered by player", i, s.Player)
		}
	}

	return &World{
		Arena: arena,
		Ships: ships,
	}, nil
}

// Ship returns the ship of a player
func (w *World) Ship(p core.PlayerID) (*component.Ship, bool) {
	if int(p) >= len(w.Ships) {
		return nil, false
	}
	return &w.Ships[p], true
}

// Frame snapshots the world for the renderer
// Slices are shared, the renderer must treat them as read-only and not keep them past the draw
func (w *World) Frame() Frame {
	return Frame{
		Tick:    w.Tick,
		Arena:   w.Arena,
		Ships:   w.Ships,
		Bullets: w.Bullets,
	}
}
