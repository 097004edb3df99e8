package engine

import (
	"github.com/lixenwraith/rocks-and-bullets/component"
	"github.com/lixenwraith/rocks-and-bullets/core"
	"github.com/lixenwraith/rocks-and-bullets/input"
)

// InputSource is polled once per tick for logical key states
type InputSource interface {
	IsPressed(key input.Key) bool
	CloseRequested() bool
}

// Renderer draws one frame, nothing it does feeds back into the simulation
type Renderer interface {
	Render(frame Frame)
}

// Frame is the read-only view handed to the renderer after each step
type Frame struct {
	Tick    uint64
	Arena   Arena
	Ships   []component.Ship
	Bullets []component.Bullet
}

// PollCommand reads one player's command from the input source
func PollCommand(src InputSource, p core.PlayerID) component.Command {
	return component.Command{
		Thrust:    src.IsPressed(input.Key{Player: p, Action: input.ActionThrust}),
		TurnLeft:  src.IsPressed(input.Key{Player: p, Action: input.ActionTurnLeft}),
		TurnRight: src.IsPressed(input.Key{Player: p, Action: input.ActionTurnRight}),
		Fire:      src.IsPressed(input.Key{Player: p, Action: input.ActionFire}),
	}
}
