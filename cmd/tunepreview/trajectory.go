package main

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/pthm-cable/gust/components"
	"github.com/pthm-cable/gust/config"
	"github.com/pthm-cable/gust/game"
	"github.com/pthm-cable/gust/vmath"
)

// TuneParams holds the physics values exposed as sliders.
type TuneParams struct {
	WindX        float32
	Friction     float32
	Drag         float32
	GravityY     float32
	WindSeconds  float32 // wind is held for this long, then released
	Seconds      float32 // total simulated time
	CollideFirst bool
}

// paramsFromConfig seeds the sliders from a loaded config.
func paramsFromConfig(cfg *config.Config) TuneParams {
	return TuneParams{
		WindX:        float32(cfg.Physics.Wind.X),
		Friction:     float32(cfg.Physics.Friction),
		Drag:         float32(cfg.Physics.Drag),
		GravityY:     float32(cfg.Physics.Gravity.Y),
		WindSeconds:  2,
		Seconds:      6,
		CollideFirst: cfg.Physics.CollideBeforeIntegrate,
	}
}

// apply returns a copy of base with the slider values written in.
func (p TuneParams) apply(base *config.Config) *config.Config {
	cfg := base.Clone()
	cfg.Physics.Wind.X = float64(p.WindX)
	cfg.Physics.Friction = float64(p.Friction)
	cfg.Physics.Drag = float64(p.Drag)
	cfg.Physics.Gravity.Y = float64(p.GravityY)
	cfg.Physics.CollideBeforeIntegrate = p.CollideFirst
	cfg.Telemetry.StatsWindow = 0
	cfg.Recompute()
	return cfg
}

// Path is the sampled trajectory of one scene body.
type Path struct {
	Name   string
	Player bool
	Points []vmath.Vec2
}

// simulate runs the scene headless at the configured dt and records every
// body's position after each tick.
func simulate(cfg *config.Config, p TuneParams) ([]Path, error) {
	g, err := game.NewGame(cfg, game.Options{})
	if err != nil {
		return nil, err
	}
	defer g.Close()

	dt := cfg.Physics.DT
	ticks := int(float64(p.Seconds)/dt + 0.5)
	windTicks := int(float64(p.WindSeconds)/dt + 0.5)

	start := g.Snapshot()
	paths := make([]Path, len(start))
	for i, b := range start {
		paths[i] = Path{Name: b.Name, Player: b.Kind == components.KindPlayer, Points: make([]vmath.Vec2, 0, ticks+1)}
		paths[i].Points = append(paths[i].Points, b.Position)
	}

	for t := 0; t < ticks; t++ {
		bodies := g.Step(dt, game.Input{WindActive: t < windTicks})
		for i, b := range bodies {
			paths[i].Points = append(paths[i].Points, b.Position)
		}
	}
	return paths, nil
}

// physicsYAML renders the physics section for pasting into a config file.
func physicsYAML(cfg *config.Config) (string, error) {
	out, err := yaml.Marshal(map[string]config.PhysicsConfig{"physics": cfg.Physics})
	if err != nil {
		return "", fmt.Errorf("marshaling physics: %w", err)
	}
	return string(out), nil
}
