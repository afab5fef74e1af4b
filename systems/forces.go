package systems

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/gust/components"
	"github.com/pthm-cable/gust/vmath"
)

// Force generators only ever add to the accumulator. None of them read or
// clear it, so their relative order within a tick does not matter.

// GravityAccel returns the gravity contribution. Gravity is an acceleration,
// independent of mass.
func GravityAccel(gravity vmath.Vec2) vmath.Vec2 {
	return gravity
}

// WindAccel returns wind/mass while the wind is active, zero otherwise.
func WindAccel(wind vmath.Vec2, mass float64, active bool) vmath.Vec2 {
	if !active {
		return vmath.Zero
	}
	return wind.Scale(1 / mass)
}

// OnGround reports whether a body's bottom edge is within threshold of the floor.
func OnGround(pos vmath.Vec2, halfHeight, arenaHeight, threshold float64) bool {
	return pos.Y-halfHeight+arenaHeight/2 < threshold
}

// FrictionAccel opposes the direction of motion with constant magnitude mu.
// A body at rest gets no contribution.
func FrictionAccel(vel vmath.Vec2, mu float64) vmath.Vec2 {
	return vel.NormalizeOrZero().Scale(-mu)
}

// DragAccel is quadratic in speed: -c * |v|^2 * unit(v) / mass.
func DragAccel(vel vmath.Vec2, c, mass float64) vmath.Vec2 {
	return vel.NormalizeOrZero().Scale(-c * vel.LengthSquared() / mass)
}

// GravitySystem adds gravity to every body.
type GravitySystem struct {
	filter  *ecs.Filter1[components.Acceleration]
	gravity vmath.Vec2
}

// NewGravitySystem creates a new gravity system.
func NewGravitySystem(w *ecs.World, env Environment) *GravitySystem {
	return &GravitySystem{
		filter:  ecs.NewFilter1[components.Acceleration](w),
		gravity: env.Gravity,
	}
}

// Update runs the gravity system.
func (s *GravitySystem) Update() {
	g := GravityAccel(s.gravity)
	query := s.filter.Query()
	for query.Next() {
		acc := query.Get()
		acc.Add(g)
	}
}

// WindSystem pushes every body with the wind force while the wind signal is held.
type WindSystem struct {
	filter *ecs.Filter2[components.Acceleration, components.Mass]
	wind   vmath.Vec2
}

// NewWindSystem creates a new wind system.
func NewWindSystem(w *ecs.World, env Environment) *WindSystem {
	return &WindSystem{
		filter: ecs.NewFilter2[components.Acceleration, components.Mass](w),
		wind:   env.Wind,
	}
}

// Update runs the wind system. It does nothing when active is false.
func (s *WindSystem) Update(active bool) {
	if !active {
		return
	}
	query := s.filter.Query()
	for query.Next() {
		acc, mass := query.Get()
		acc.Add(WindAccel(s.wind, mass.Value, true))
	}
}

// FrictionSystem applies ground friction to bodies touching the floor.
// It must run before integration so the contact test sees this tick's starting position.
type FrictionSystem struct {
	filter    *ecs.Filter4[components.Position, components.Velocity, components.Acceleration, components.Extents]
	mu        float64
	arenaH    float64
	threshold float64
}

// NewFrictionSystem creates a new friction system.
func NewFrictionSystem(w *ecs.World, env Environment) *FrictionSystem {
	return &FrictionSystem{
		filter:    ecs.NewFilter4[components.Position, components.Velocity, components.Acceleration, components.Extents](w),
		mu:        env.Friction,
		arenaH:    env.Arena.Height,
		threshold: env.GroundThreshold,
	}
}

// Update runs the friction system and returns how many bodies were in ground contact.
func (s *FrictionSystem) Update() int {
	contacts := 0
	query := s.filter.Query()
	for query.Next() {
		pos, vel, acc, ext := query.Get()
		if !OnGround(pos.Vec2, ext.HalfHeight, s.arenaH, s.threshold) {
			continue
		}
		contacts++
		acc.Add(FrictionAccel(vel.Vec2, s.mu))
	}
	return contacts
}

// DragSystem applies quadratic drag to every body.
type DragSystem struct {
	filter *ecs.Filter3[components.Velocity, components.Acceleration, components.Mass]
	c      float64
}

// NewDragSystem creates a new drag system.
func NewDragSystem(w *ecs.World, env Environment) *DragSystem {
	return &DragSystem{
		filter: ecs.NewFilter3[components.Velocity, components.Acceleration, components.Mass](w),
		c:      env.Drag,
	}
}

// Update runs the drag system.
func (s *DragSystem) Update() {
	query := s.filter.Query()
	for query.Next() {
		vel, acc, mass := query.Get()
		acc.Add(DragAccel(vel.Vec2, s.c, mass.Value))
	}
}
