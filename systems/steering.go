package systems

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/gust/components"
	"github.com/pthm-cable/gust/vmath"
)

// SteeringAccel returns the seek contribution toward target:
// clamp(unit(target-pos)*seekSpeed - vel, maxForce) / mass.
func SteeringAccel(pos, vel, target vmath.Vec2, s components.Seeker, mass float64) vmath.Vec2 {
	desired := target.Sub(pos).NormalizeOrZero().Scale(s.SeekSpeed)
	steer := desired.Sub(vel).ClampLength(s.MaxForce)
	return steer.Scale(1 / mass)
}

// SteeringSystem steers seekers toward the player.
type SteeringSystem struct {
	filter *ecs.Filter5[components.Position, components.Velocity, components.Acceleration, components.Mass, components.Seeker]
}

// NewSteeringSystem creates a new steering system.
func NewSteeringSystem(w *ecs.World) *SteeringSystem {
	return &SteeringSystem{
		filter: ecs.NewFilter5[components.Position, components.Velocity, components.Acceleration, components.Mass, components.Seeker](w),
	}
}

// Update runs the steering system. Without a target seekers just drift.
func (s *SteeringSystem) Update(target vmath.Vec2, hasTarget bool) {
	if !hasTarget {
		return
	}
	query := s.filter.Query()
	for query.Next() {
		pos, vel, acc, mass, seeker := query.Get()
		acc.Add(SteeringAccel(pos.Vec2, vel.Vec2, target, *seeker, mass.Value))
	}
}
