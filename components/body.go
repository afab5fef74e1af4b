package components

import (
	"errors"
	"fmt"
	"math"

	"github.com/pthm-cable/gust/config"
	"github.com/pthm-cable/gust/vmath"
)

var (
	// ErrNonPositiveMass is returned when a body is created with mass <= 0.
	ErrNonPositiveMass = errors.New("mass must be positive")
	// ErrNonPositiveExtent is returned when a body has a zero or negative half-size.
	ErrNonPositiveExtent = errors.New("extents must be positive")
	// ErrUnknownKind is returned for a scene kind that is neither player nor seeker.
	ErrUnknownKind = errors.New("unknown body kind")
)

// Body bundles the component values of one simulated body.
// The game spawns entities from these prototypes.
type Body struct {
	Tag     Tag
	Pos     Position
	Vel     Velocity
	Acc     Acceleration
	Mass    Mass
	Extents Extents
	Seeker  Seeker // zero for the player
}

// NewBody validates a scene spec and returns the body at rest at its start position.
func NewBody(spec config.BodySpec) (Body, error) {
	if !(spec.Mass > 0) || math.IsInf(spec.Mass, 0) {
		return Body{}, fmt.Errorf("body %q: %w (got %g)", spec.Name, ErrNonPositiveMass, spec.Mass)
	}
	if !(spec.HalfWidth > 0) || !(spec.HalfHeight > 0) {
		return Body{}, fmt.Errorf("body %q: %w", spec.Name, ErrNonPositiveExtent)
	}

	b := Body{
		Pos:     Position{vmath.V(spec.X, spec.Y)},
		Mass:    Mass{Value: spec.Mass},
		Extents: Extents{HalfWidth: spec.HalfWidth, HalfHeight: spec.HalfHeight},
	}

	switch spec.Kind {
	case config.KindPlayer:
		b.Tag = Tag{Name: spec.Name, Kind: KindPlayer}
	case config.KindSeeker:
		b.Tag = Tag{Name: spec.Name, Kind: KindSeeker}
		b.Seeker = Seeker{MaxForce: spec.MaxForce, SeekSpeed: spec.SeekSpeed}
	default:
		return Body{}, fmt.Errorf("body %q: %w %q", spec.Name, ErrUnknownKind, spec.Kind)
	}

	return b, nil
}

// ApplyForce adds force/mass to the accumulator.
func (b *Body) ApplyForce(force vmath.Vec2) {
	b.Acc.Add(force.Scale(1 / b.Mass.Value))
}
