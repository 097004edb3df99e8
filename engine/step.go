package engine

import (
	"errors"
	"time"

	"github.com/lixenwraith/rocks-and-bullets/component"
	"github.com/lixenwraith/rocks-and-bullets/core"
	"github.com/lixenwraith/rocks-and-bullets/system"
)

// SimulationConfig holds the fixed parameters of a simulation
type SimulationConfig struct {
	DT       time.Duration // Fixed step, never measured from the wall clock
	Weapons  system.WeaponSystem
	Bullets  system.BulletSystem
	FullWrap bool // Modulo wrap instead of the single-step wrap
}

// StepStats reports what one step did to the bullet collection
type StepStats struct {
	Spawned int
	Removed int
}

// Simulation advances a World by fixed steps
type Simulation struct {
	world   *World
	cfg     SimulationConfig
	wrapper system.Wrapper
	cmds    []component.Command
}

// NewSimulation binds a world to a step configuration
func NewSimulation(w *World, cfg SimulationConfig) (*Simulation, error) {
	if w == nil {
		return nil, errors.New("simulation: nil world")
	}
	if cfg.DT <= 0 {
		return nil, errors.New("simulation: step must be positive")
	}
	if err := w.Arena.Validate(); err != nil {
		return nil, err
	}

	var wrapper system.Wrapper = w.Arena
	if cfg.FullWrap {
		wrapper = fullWrapper{w.Arena}
	}

	return &Simulation{
		world:   w,
		cfg:     cfg,
		wrapper: wrapper,
		cmds:    make([]component.Command, len(w.Ships)),
	}, nil
}

// World returns the simulated world
func (s *Simulation) World() *World { return s.world }

// DT returns the fixed step
func (s *Simulation) DT() time.Duration { return s.cfg.DT }

// Step polls every player's command from src and advances one tick
func (s *Simulation) Step(src InputSource) StepStats {
	for i := range s.world.Ships {
		s.cmds[i] = PollCommand(src, core.PlayerID(i))
	}
	return s.Advance(s.cmds)
}

// Advance runs one tick with explicit commands, cmds[i] drives ship i, missing entries are idle
//
// Order per tick:
//  1. each ship in player order: thrust and turn, then fire
//  2. bullets: move, expire, cap
//  3. each ship: move, wrap, refresh facing, decay cooldown
//
// Thrust and muzzle velocity therefore use the facing from the previous tick,
// while the gun offset is rotated with the rotation just updated
func (s *Simulation) Advance(cmds []component.Command) StepStats {
	var stats StepStats
	w := s.world
	dt := s.cfg.DT

	for i := range w.Ships {
		var cmd component.Command
		if i < len(cmds) {
			cmd = cmds[i]
		}

		ship := &w.Ships[i]
		system.SteerShip(ship, cmd, dt)

		if cmd.Fire {
			if b, ok := s.cfg.Weapons.Fire(ship); ok {
				w.Bullets = append(w.Bullets, b)
				stats.Spawned++
			}
		}
	}

	w.Bullets, stats.Removed = s.cfg.Bullets.Update(w.Bullets, dt)

	for i := range w.Ships {
		system.UpdateShip(&w.Ships[i], s.wrapper, dt)
	}

	w.Tick++
	return stats
}
