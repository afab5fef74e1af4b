// Package systems contains the ECS systems and per-body physics functions for the simulation.
package systems

import (
	"github.com/pthm-cable/gust/config"
	"github.com/pthm-cable/gust/vmath"
)

// Bounds represents the arena, centered at the origin.
type Bounds struct {
	Width, Height float64
}

// Floor returns the y coordinate of the arena floor.
func (b Bounds) Floor() float64 { return -b.Height / 2 }

// Right returns the x coordinate of the right wall.
func (b Bounds) Right() float64 { return b.Width / 2 }

// Left returns the x coordinate of the left wall.
func (b Bounds) Left() float64 { return -b.Width / 2 }

// Environment is the read-only force field shared by every system during a run.
type Environment struct {
	Gravity         vmath.Vec2
	Wind            vmath.Vec2
	Friction        float64
	Drag            float64
	MaxSpeed        float64
	GroundThreshold float64
	Arena           Bounds
}

// NewEnvironment builds the force field from configuration.
func NewEnvironment(cfg *config.Config) Environment {
	return Environment{
		Gravity:         cfg.Physics.Gravity.Vec2(),
		Wind:            cfg.Physics.Wind.Vec2(),
		Friction:        cfg.Physics.Friction,
		Drag:            cfg.Physics.Drag,
		MaxSpeed:        cfg.Physics.MaxSpeed,
		GroundThreshold: cfg.Physics.GroundThreshold,
		Arena:           Bounds{Width: cfg.Arena.Width, Height: cfg.Arena.Height},
	}
}
