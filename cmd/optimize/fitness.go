package main

import (
	"errors"
	"math"
	"sync"

	"gonum.org/v1/gonum/stat"

	"github.com/pthm-cable/gust/components"
	"github.com/pthm-cable/gust/config"
	"github.com/pthm-cable/gust/game"
)

// Targets are the drift speeds (world units per second) the tuner aims for
// while wind is held.
type Targets struct {
	GroundDrift float64 // player resting on the floor, friction active
	AirDrift    float64 // player floating with gravity off, no friction
}

// Trial is the measured outcome of one parameter vector.
type Trial struct {
	GroundDrift float64
	AirDrift    float64
}

// FitnessEvaluator runs headless trials and scores them against targets.
type FitnessEvaluator struct {
	params     *ParamVector
	targets    Targets
	windTicks  int
	baseConfig *config.Config

	// Weight of the pull back toward default values
	regularization float64

	mu        sync.Mutex
	lastTrial Trial
}

// NewFitnessEvaluator creates a new evaluator.
func NewFitnessEvaluator(params *ParamVector, targets Targets, windTicks int, baseCfg *config.Config) *FitnessEvaluator {
	return &FitnessEvaluator{
		params:         params,
		targets:        targets,
		windTicks:      windTicks,
		baseConfig:     baseCfg,
		regularization: 0.01,
	}
}

// LastTrial returns the measurements from the most recent evaluation.
func (fe *FitnessEvaluator) LastTrial() Trial {
	fe.mu.Lock()
	defer fe.mu.Unlock()
	return fe.lastTrial
}

// failFitness is returned when a trial cannot run or produces non-finite drift.
const failFitness = 1e6

// Evaluate scores raw parameter values. Lower is better.
func (fe *FitnessEvaluator) Evaluate(raw []float64) float64 {
	cfg := fe.baseConfig.Clone()
	fe.params.ApplyToConfig(cfg, raw)

	trial, err := RunTrial(cfg, fe.windTicks)
	fe.mu.Lock()
	fe.lastTrial = trial
	fe.mu.Unlock()
	if err != nil {
		return failFitness
	}

	fitness := relErr(trial.GroundDrift, fe.targets.GroundDrift) + relErr(trial.AirDrift, fe.targets.AirDrift)
	if math.IsNaN(fitness) || math.IsInf(fitness, 0) {
		return failFitness
	}

	norm := fe.params.Normalize(fe.params.Clamp(raw))
	def := fe.params.Normalize(fe.params.DefaultVector())
	for i := range norm {
		d := norm[i] - def[i]
		fitness += fe.regularization * d * d
	}
	return fitness
}

func relErr(got, want float64) float64 {
	if want == 0 {
		return got * got
	}
	d := (got - want) / want
	return d * d
}

// RunTrial measures the player's drift under held wind on the floor and in
// free flight. The arena is widened so walls never interfere.
func RunTrial(cfg *config.Config, windTicks int) (Trial, error) {
	idx := cfg.Derived.PlayerIndex
	if idx < 0 {
		return Trial{}, errors.New("scene has no player")
	}
	player := cfg.Scene.Bodies[idx]

	ground := trialConfig(cfg, player)
	ground.Scene.Bodies[0].Y = -cfg.Arena.Height/2 + player.HalfHeight
	ground.Recompute()

	air := trialConfig(cfg, player)
	air.Physics.Gravity = config.Vec{}
	air.Scene.Bodies[0].Y = 0
	air.Recompute()

	var t Trial
	var err error
	if t.GroundDrift, err = measureDrift(ground, windTicks); err != nil {
		return t, err
	}
	if t.AirDrift, err = measureDrift(air, windTicks); err != nil {
		return t, err
	}
	return t, nil
}

func trialConfig(cfg *config.Config, player config.BodySpec) *config.Config {
	c := cfg.Clone()
	c.Arena.Width = 1e6
	player.X = 0
	c.Scene.Bodies = []config.BodySpec{player}
	c.Telemetry.StatsWindow = 0
	return c
}

// measureDrift holds wind for windTicks and returns the mean horizontal
// speed over the last quarter of the run.
func measureDrift(cfg *config.Config, windTicks int) (float64, error) {
	g, err := game.NewGame(cfg, game.Options{})
	if err != nil {
		return 0, err
	}
	defer g.Close()

	dt := cfg.Physics.DT
	tail := windTicks / 4
	if tail < 1 {
		tail = 1
	}
	samples := make([]float64, 0, tail)

	in := game.Input{WindActive: true}
	for i := 0; i < windTicks; i++ {
		bodies := g.Step(dt, in)
		if i < windTicks-tail {
			continue
		}
		for _, b := range bodies {
			if b.Kind == components.KindPlayer {
				// Velocity is stored as per-tick displacement.
				samples = append(samples, b.Velocity.X/dt)
			}
		}
	}
	if len(samples) == 0 {
		return 0, errors.New("no player samples")
	}
	return stat.Mean(samples, nil), nil
}
