package game

import "log/slog"

// State is the simulation lifecycle state.
type State uint8

const (
	// Playing simulates bodies and reads input.
	Playing State = iota
	// Restart is transient: entering it despawns everything and schedules Playing.
	Restart
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Playing:
		return "playing"
	case Restart:
		return "restart"
	default:
		return "unknown"
	}
}

// requestRestart runs Playing -> Restart -> Playing within a single call.
// Leaving Playing destroys every body and entering Playing respawns the scene,
// so the result is indistinguishable from a fresh start.
func (g *Game) requestRestart() {
	g.exitPlaying()

	g.state = Restart
	g.restarts++
	g.collector.RecordRestart()
	slog.Info("state transition", "from", Playing, "to", Restart, "tick", g.tick, "restarts", g.restarts)

	// Restart has no work of its own and always hands back to Playing.
	g.enterPlaying()
	slog.Info("state transition", "from", Restart, "to", Playing, "tick", g.tick, "bodies", len(g.entities))
}

// enterPlaying spawns the initial scene.
func (g *Game) enterPlaying() {
	g.spawnScene()
	g.state = Playing
}

// exitPlaying destroys all simulated bodies.
func (g *Game) exitPlaying() {
	g.despawnAll()
}
