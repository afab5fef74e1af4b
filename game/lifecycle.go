package game

import (
	"log/slog"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/gust/components"
)

// spawnScene creates one entity per scene prototype, at rest at its start position.
func (g *Game) spawnScene() {
	g.entities = g.entities[:0]
	g.hasPlayer = false
	g.debugAccel.Reset()

	for i := range g.prototypes {
		e := g.spawnBody(g.prototypes[i])
		g.entities = append(g.entities, e)
	}

	slog.Debug("scene spawned", "bodies", len(g.entities), "player", g.hasPlayer)
}

// spawnBody creates an entity from a prototype. Component values are copied,
// so the prototype stays untouched for the next restart.
func (g *Game) spawnBody(proto components.Body) ecs.Entity {
	pos := proto.Pos
	vel := proto.Vel
	acc := proto.Acc
	mass := proto.Mass
	ext := proto.Extents
	tag := proto.Tag

	entity := g.bodyMapper.NewEntity(&pos, &vel, &acc, &mass, &ext, &tag)

	switch tag.Kind {
	case components.KindPlayer:
		g.playerMap.Add(entity, &components.Player{})
		g.player = entity
		g.hasPlayer = true
	case components.KindSeeker:
		seeker := proto.Seeker
		g.seekerMap.Add(entity, &seeker)
	}

	return entity
}

// despawnAll removes every body from the world.
func (g *Game) despawnAll() {
	removed := 0
	for _, e := range g.entities {
		if !g.world.Alive(e) {
			continue
		}
		g.world.RemoveEntity(e)
		removed++
	}

	g.entities = g.entities[:0]
	g.hasPlayer = false

	slog.Debug("scene despawned", "bodies", removed)
}
