package game

import (
	"math"

	"github.com/pthm-cable/gust/telemetry"
	"github.com/pthm-cable/gust/vmath"
)

// Step advances the simulation by one tick of dt seconds and returns the
// resulting body snapshots.
//
// A restart request replaces the scene and returns it without simulating.
// A dt that is not a positive finite number leaves everything untouched.
func (g *Game) Step(dt float64, in Input) []BodySnapshot {
	if !(dt > 0) || math.IsInf(dt, 0) {
		return g.Snapshot()
	}

	if in.RestartRequested {
		g.requestRestart()
		g.tick++
		return g.Snapshot()
	}

	g.simulationStep(dt, in)
	g.lastDT = dt
	g.tick++

	if g.collector.ShouldFlush() {
		g.flushTelemetry()
	}

	return g.Snapshot()
}

// simulationStep runs a single Playing tick.
func (g *Game) simulationStep(dt float64, in Input) {
	perf := g.perfCollector
	perf.StartTick()

	// 1. Force generators. Each one only adds to the accumulators.
	perf.StartPhase(telemetry.PhaseGravity)
	g.gravitySystem.Update()

	perf.StartPhase(telemetry.PhaseWind)
	g.windSystem.Update(in.WindActive)

	// Friction reads the pre-integration position of this tick.
	perf.StartPhase(telemetry.PhaseFriction)
	contacts := g.frictionSystem.Update()

	perf.StartPhase(telemetry.PhaseDrag)
	g.dragSystem.Update()

	perf.StartPhase(telemetry.PhaseSteering)
	target, ok := g.playerPosition()
	g.steeringSystem.Update(target, ok)

	// 2. Capture the debug vector before the integrator clears it.
	g.captureDebug()

	// 3. Integration and boundary resolution.
	var bounces int
	if g.cfg.Physics.CollideBeforeIntegrate {
		perf.StartPhase(telemetry.PhaseBoundary)
		bounces = g.boundarySystem.Update()
		perf.StartPhase(telemetry.PhaseIntegrate)
		g.physicsSystem.Update(dt)
	} else {
		perf.StartPhase(telemetry.PhaseIntegrate)
		g.physicsSystem.Update(dt)
		perf.StartPhase(telemetry.PhaseBoundary)
		bounces = g.boundarySystem.Update()
	}

	// 4. Counters for the stats window.
	perf.StartPhase(telemetry.PhaseTelemetry)
	g.collector.RecordTick(dt)
	g.collector.RecordBounces(bounces)
	g.collector.RecordGroundContacts(contacts)
	if in.WindActive {
		g.collector.RecordWind()
	}

	perf.EndTick()
}

// playerPosition returns the player's position, if a player exists.
func (g *Game) playerPosition() (vmath.Vec2, bool) {
	if !g.hasPlayer || !g.world.Alive(g.player) {
		return vmath.Zero, false
	}
	pos, _, _, _, _, _ := g.bodyMapper.Get(g.player)
	return pos.Vec2, true
}
