package game

import (
	"github.com/pthm-cable/gust/components"
	"github.com/pthm-cable/gust/vmath"
)

// BodySnapshot is a read-only copy of one body's state for renderers.
type BodySnapshot struct {
	Name       string
	Kind       components.Kind
	Position   vmath.Vec2
	Velocity   vmath.Vec2
	HalfWidth  float64
	HalfHeight float64
}

// Snapshot returns every live body in scene order.
func (g *Game) Snapshot() []BodySnapshot {
	out := make([]BodySnapshot, 0, len(g.entities))
	for _, e := range g.entities {
		if !g.world.Alive(e) {
			continue
		}
		pos, vel, _, _, ext, tag := g.bodyMapper.Get(e)
		out = append(out, BodySnapshot{
			Name:       tag.Name,
			Kind:       tag.Kind,
			Position:   pos.Vec2,
			Velocity:   vel.Vec2,
			HalfWidth:  ext.HalfWidth,
			HalfHeight: ext.HalfHeight,
		})
	}
	return out
}
