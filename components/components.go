// Package components defines ECS components for the simulation.
package components

import "github.com/pthm-cable/gust/vmath"

// Position is a body's center in world coordinates (arena centered at origin, y up).
type Position struct {
	vmath.Vec2
}

// Velocity is a body's displacement per tick in world units.
// The integrator stores the dt-scaled value here, so it is not a per-second rate.
type Velocity struct {
	vmath.Vec2
}

// Acceleration is the per-tick accumulator force generators add into.
// Only the integrator clears it.
type Acceleration struct {
	vmath.Vec2
}

// Add accumulates a contribution.
func (a *Acceleration) Add(v vmath.Vec2) {
	a.Vec2 = a.Vec2.Add(v)
}

// Reset clears the accumulator.
func (a *Acceleration) Reset() {
	a.Vec2 = vmath.Zero
}

// Mass is a body's mass. Always positive.
type Mass struct {
	Value float64
}

// Extents are the collision half-sizes of a body's axis-aligned box.
type Extents struct {
	HalfWidth  float64
	HalfHeight float64
}

// Player tags the single controllable body. Debug export follows it.
type Player struct{}

// Seeker holds steering parameters for autonomously-steered bodies.
type Seeker struct {
	MaxForce  float64 // cap on the steering force
	SeekSpeed float64 // desired displacement per tick toward the target
}

// Kind distinguishes body roles in snapshots.
type Kind uint8

const (
	KindPlayer Kind = iota
	KindSeeker
)

// String returns the config name of the kind.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindSeeker:
		return "seeker"
	default:
		return "unknown"
	}
}

// Tag identifies a body for snapshots and telemetry.
type Tag struct {
	Name string
	Kind Kind
}
