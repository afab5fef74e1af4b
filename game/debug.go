package game

import "github.com/pthm-cable/gust/vmath"

// DebugVectors are the player's motion vectors for line drawing.
type DebugVectors struct {
	Position     vmath.Vec2
	Velocity     vmath.Vec2
	Acceleration vmath.Vec2 // accumulated this tick, before integration cleared it
}

// captureDebug stores the player's accumulated acceleration.
func (g *Game) captureDebug() {
	if !g.hasPlayer || !g.world.Alive(g.player) {
		return
	}
	_, _, acc, _, _, _ := g.bodyMapper.Get(g.player)
	g.debugAccel = *acc
}

// DebugVectors returns the player's vectors. ok is false when there is no
// player, in which case debug drawing should be skipped.
func (g *Game) DebugVectors() (dv DebugVectors, ok bool) {
	if !g.hasPlayer || !g.world.Alive(g.player) {
		return DebugVectors{}, false
	}
	pos, vel, _, _, _, _ := g.bodyMapper.Get(g.player)
	return DebugVectors{
		Position:     pos.Vec2,
		Velocity:     vel.Vec2,
		Acceleration: g.debugAccel.Vec2,
	}, true
}
