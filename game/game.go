// Package game runs the tick orchestrator: force generators, integration and
// boundary resolution over an ark world, plus the Playing/Restart lifecycle.
package game

import (
	"fmt"
	"log/slog"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/gust/components"
	"github.com/pthm-cable/gust/config"
	"github.com/pthm-cable/gust/systems"
	"github.com/pthm-cable/gust/telemetry"
)

// Options configures optional game features.
type Options struct {
	LogStats      bool                        // log window and perf stats via slog
	OutputDir     string                      // directory for CSV output (empty = disabled)
	StatsCallback func(telemetry.WindowStats) // called after each stats window flush
}

// Game holds the complete simulation state.
type Game struct {
	world *ecs.World
	cfg   *config.Config
	env   systems.Environment

	// Systems, in tick order
	gravitySystem  *systems.GravitySystem
	windSystem     *systems.WindSystem
	frictionSystem *systems.FrictionSystem
	dragSystem     *systems.DragSystem
	steeringSystem *systems.SteeringSystem
	physicsSystem  *systems.PhysicsSystem
	boundarySystem *systems.BoundarySystem

	// Entity mappers
	bodyMapper *ecs.Map6[
		components.Position,
		components.Velocity,
		components.Acceleration,
		components.Mass,
		components.Extents,
		components.Tag,
	]
	playerMap *ecs.Map[components.Player]
	seekerMap *ecs.Map[components.Seeker]

	// Scene
	prototypes []components.Body
	entities   []ecs.Entity // spawn order, used for stable snapshots
	player     ecs.Entity
	hasPlayer  bool

	// State
	state    State
	tick     int32
	restarts int
	lastDT   float64 // dt of the most recent simulated tick

	// Debug export of the player's accumulated acceleration, taken before integration clears it
	debugAccel components.Acceleration

	// Telemetry
	collector     *telemetry.Collector
	perfCollector *telemetry.PerfCollector
	outputManager *telemetry.OutputManager
	logStats      bool
	statsCallback func(telemetry.WindowStats)
}

// NewGame creates a game from cfg and enters Playing, which spawns the initial scene.
// Every body spec is validated up front so a bad scene fails here rather than on restart.
func NewGame(cfg *config.Config, opts Options) (*Game, error) {
	if cfg == nil {
		return nil, fmt.Errorf("nil config")
	}

	prototypes := make([]components.Body, 0, len(cfg.Scene.Bodies))
	for _, spec := range cfg.Scene.Bodies {
		b, err := components.NewBody(spec)
		if err != nil {
			return nil, fmt.Errorf("building scene: %w", err)
		}
		prototypes = append(prototypes, b)
	}

	world := ecs.NewWorld()
	env := systems.NewEnvironment(cfg)

	g := &Game{
		world:  world,
		cfg:    cfg,
		env:    env,
		lastDT: cfg.Physics.DT,

		gravitySystem:  systems.NewGravitySystem(world, env),
		windSystem:     systems.NewWindSystem(world, env),
		frictionSystem: systems.NewFrictionSystem(world, env),
		dragSystem:     systems.NewDragSystem(world, env),
		steeringSystem: systems.NewSteeringSystem(world),
		physicsSystem:  systems.NewPhysicsSystem(world, env),
		boundarySystem: systems.NewBoundarySystem(world, env),

		bodyMapper: ecs.NewMap6[
			components.Position,
			components.Velocity,
			components.Acceleration,
			components.Mass,
			components.Extents,
			components.Tag,
		](world),
		playerMap: ecs.NewMap[components.Player](world),
		seekerMap: ecs.NewMap[components.Seeker](world),

		prototypes: prototypes,

		collector:     telemetry.NewCollector(cfg.Telemetry.StatsWindow),
		perfCollector: telemetry.NewPerfCollector(cfg.Telemetry.PerfWindow),
		logStats:      opts.LogStats,
		statsCallback: opts.StatsCallback,
	}

	if opts.OutputDir != "" {
		om, err := telemetry.NewOutputManager(opts.OutputDir)
		if err != nil {
			return nil, fmt.Errorf("creating output manager: %w", err)
		}
		if err := om.WriteConfig(cfg); err != nil {
			om.Close()
			return nil, fmt.Errorf("writing config: %w", err)
		}
		g.outputManager = om
		slog.Info("output enabled", "dir", om.Dir(), "run_id", om.RunID())
	}

	g.enterPlaying()

	return g, nil
}

// Config returns the configuration the game was built from.
func (g *Game) Config() *config.Config {
	return g.cfg
}

// State returns the current lifecycle state.
func (g *Game) State() State {
	return g.state
}

// Tick returns the number of ticks processed.
func (g *Game) Tick() int32 {
	return g.tick
}

// BodyCount returns the number of live bodies.
func (g *Game) BodyCount() int {
	return len(g.entities)
}

// LastDT returns the dt of the most recent simulated tick, or the configured
// dt before the first one. Velocity is stored per tick, so its cap is
// max_speed*LastDT.
func (g *Game) LastDT() float64 {
	return g.lastDT
}

// Restarts returns how many times the scene has been restarted.
func (g *Game) Restarts() int {
	return g.restarts
}

// RunID returns the telemetry run identifier, or "" when output is disabled.
func (g *Game) RunID() string {
	return g.outputManager.RunID()
}

// RecordFrame records frame timing for graphics mode.
func (g *Game) RecordFrame() {
	g.perfCollector.RecordFrame()
}

// PerfStats returns the rolling performance statistics.
func (g *Game) PerfStats() telemetry.PerfStats {
	return g.perfCollector.Stats()
}

// Close flushes and closes telemetry output.
func (g *Game) Close() error {
	if g.outputManager == nil {
		return nil
	}
	return g.outputManager.Close()
}
