package systems

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/gust/components"
)

// Integrate advances one body by one tick and clears its accumulator.
//
// The speed cap applies to velocity+acceleration before scaling by dt, and the
// dt-scaled result is what gets stored, so Velocity holds a per-tick displacement.
func Integrate(pos *components.Position, vel *components.Velocity, acc *components.Acceleration, maxSpeed, dt float64) {
	vel.Vec2 = vel.Add(acc.Vec2).ClampLength(maxSpeed).Scale(dt)
	pos.Vec2 = pos.Add(vel.Vec2)
	acc.Reset()
}

// PhysicsSystem integrates accumulated acceleration into velocity and position.
type PhysicsSystem struct {
	filter   *ecs.Filter3[components.Position, components.Velocity, components.Acceleration]
	maxSpeed float64
}

// NewPhysicsSystem creates a new physics system.
func NewPhysicsSystem(w *ecs.World, env Environment) *PhysicsSystem {
	return &PhysicsSystem{
		filter:   ecs.NewFilter3[components.Position, components.Velocity, components.Acceleration](w),
		maxSpeed: env.MaxSpeed,
	}
}

// Update runs the physics system for a tick of length dt seconds.
func (s *PhysicsSystem) Update(dt float64) {
	query := s.filter.Query()
	for query.Next() {
		pos, vel, acc := query.Get()
		Integrate(pos, vel, acc, s.maxSpeed, dt)
	}
}
