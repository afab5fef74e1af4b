package systems

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/gust/components"
)

// ResolveBoundary pushes a body back inside the floor and side walls and
// reflects the velocity component on each axis it hit. The top is open.
// Returns the number of reflections (a corner counts twice).
func ResolveBoundary(pos *components.Position, vel *components.Velocity, ext components.Extents, b Bounds) int {
	hits := 0

	if pos.Y-ext.HalfHeight <= b.Floor() {
		pos.Y = b.Floor() + ext.HalfHeight
		vel.Y = -vel.Y
		hits++
	}
	if pos.X+ext.HalfWidth >= b.Right() {
		pos.X = b.Right() - ext.HalfWidth
		vel.X = -vel.X
		hits++
	}
	if pos.X-ext.HalfWidth <= b.Left() {
		pos.X = b.Left() + ext.HalfWidth
		vel.X = -vel.X
		hits++
	}

	return hits
}

// BoundarySystem keeps bodies inside the arena.
type BoundarySystem struct {
	filter *ecs.Filter3[components.Position, components.Velocity, components.Extents]
	bounds Bounds
}

// NewBoundarySystem creates a new boundary system.
func NewBoundarySystem(w *ecs.World, env Environment) *BoundarySystem {
	return &BoundarySystem{
		filter: ecs.NewFilter3[components.Position, components.Velocity, components.Extents](w),
		bounds: env.Arena,
	}
}

// Update runs the boundary system and returns the number of reflections.
func (s *BoundarySystem) Update() int {
	hits := 0
	query := s.filter.Query()
	for query.Next() {
		pos, vel, ext := query.Get()
		hits += ResolveBoundary(pos, vel, *ext, s.bounds)
	}
	return hits
}
