// Package config provides configuration loading and validation for the simulation.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pthm-cable/gust/vmath"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Body kinds accepted in scene specs.
const (
	KindPlayer = "player"
	KindSeeker = "seeker"
)

// Config holds all simulation configuration parameters.
// It is read-only once the simulation has started.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Arena     ArenaConfig     `yaml:"arena"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Scene     SceneConfig     `yaml:"scene"`
	Debug     DebugConfig     `yaml:"debug"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// Vec is a YAML-friendly 2D vector.
type Vec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Vec2 converts to the math type.
func (v Vec) Vec2() vmath.Vec2 {
	return vmath.V(v.X, v.Y)
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// ArenaConfig is the fixed rectangle bodies live in, centered at the origin with y up.
type ArenaConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PhysicsConfig holds the force field constants and integration settings.
type PhysicsConfig struct {
	DT                     float64 `yaml:"dt"` // fixed tick length for headless runs
	Gravity                Vec     `yaml:"gravity"`
	Wind                   Vec     `yaml:"wind"`
	Friction               float64 `yaml:"friction"`
	Drag                   float64 `yaml:"drag"`
	MaxSpeed               float64 `yaml:"max_speed"`
	GroundThreshold        float64 `yaml:"ground_threshold"` // friction applies below this height above the floor
	CollideBeforeIntegrate bool    `yaml:"collide_before_integrate"`
}

// SceneConfig describes the bodies created each time Playing is entered.
type SceneConfig struct {
	Bodies []BodySpec `yaml:"bodies"`
}

// BodySpec is the initial state of one body.
type BodySpec struct {
	Name       string  `yaml:"name"`
	Kind       string  `yaml:"kind"`
	X          float64 `yaml:"x"`
	Y          float64 `yaml:"y"`
	Mass       float64 `yaml:"mass"`
	HalfWidth  float64 `yaml:"half_width"`
	HalfHeight float64 `yaml:"half_height"`

	// Seekers only
	MaxForce  float64 `yaml:"max_force,omitempty"`
	SeekSpeed float64 `yaml:"seek_speed,omitempty"`
}

// DebugConfig controls the debug line overlay.
type DebugConfig struct {
	Lines         bool    `yaml:"lines"`
	AccelScale    float64 `yaml:"accel_scale"`    // acceleration line length multiplier
	VelocityScale float64 `yaml:"velocity_scale"` // velocity line length multiplier
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow float64 `yaml:"stats_window"` // seconds of sim time per stats window
	PerfWindow  int     `yaml:"perf_window"`  // ticks in the rolling perf window
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	PlayerIndex int // index of the player in Scene.Bodies, -1 if none
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used. The result is validated.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.computeDerived()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Default returns the embedded defaults. Panics if they do not parse.
func Default() *Config {
	cfg, err := Load("")
	if err != nil {
		panic(fmt.Sprintf("config: embedded defaults: %v", err))
	}
	return cfg
}

// Clone returns a deep copy, for callers that need to tweak a config before a run.
func (c *Config) Clone() *Config {
	out := *c
	out.Scene.Bodies = append([]BodySpec(nil), c.Scene.Bodies...)
	return &out
}

// Recompute refreshes derived values after fields were changed in code.
func (c *Config) Recompute() {
	c.computeDerived()
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.PlayerIndex = -1
	for i, b := range c.Scene.Bodies {
		if b.Kind == KindPlayer {
			c.Derived.PlayerIndex = i
			break
		}
	}

	if c.Debug.AccelScale == 0 {
		c.Debug.AccelScale = 10
	}
	if c.Debug.VelocityScale == 0 {
		c.Debug.VelocityScale = 1
	}
}

// Validate reports every problem found in the configuration.
func (c *Config) Validate() error {
	var errs []error

	if !positive(c.Arena.Width) || !positive(c.Arena.Height) {
		errs = append(errs, fmt.Errorf("arena: size must be positive, got %gx%g", c.Arena.Width, c.Arena.Height))
	}
	if !positive(c.Physics.DT) {
		errs = append(errs, fmt.Errorf("physics.dt must be positive, got %g", c.Physics.DT))
	}
	if !positive(c.Physics.MaxSpeed) {
		errs = append(errs, fmt.Errorf("physics.max_speed must be positive, got %g", c.Physics.MaxSpeed))
	}
	if !nonNegative(c.Physics.Friction) || !nonNegative(c.Physics.Drag) {
		errs = append(errs, fmt.Errorf("physics: friction and drag must be finite and not negative, got %g, %g", c.Physics.Friction, c.Physics.Drag))
	}
	if math.IsNaN(c.Physics.GroundThreshold) || math.IsInf(c.Physics.GroundThreshold, 0) {
		errs = append(errs, fmt.Errorf("physics.ground_threshold must be finite, got %g", c.Physics.GroundThreshold))
	}
	if !c.Physics.Gravity.Vec2().IsFinite() || !c.Physics.Wind.Vec2().IsFinite() {
		errs = append(errs, errors.New("physics: gravity and wind must be finite"))
	}

	players := 0
	for i, b := range c.Scene.Bodies {
		name := b.Name
		if name == "" {
			name = fmt.Sprintf("#%d", i)
		}
		switch b.Kind {
		case KindPlayer:
			players++
		case KindSeeker:
			if b.MaxForce < 0 || b.SeekSpeed < 0 {
				errs = append(errs, fmt.Errorf("scene body %s: max_force and seek_speed must not be negative", name))
			}
		default:
			errs = append(errs, fmt.Errorf("scene body %s: unknown kind %q", name, b.Kind))
		}
		if !positive(b.Mass) {
			errs = append(errs, fmt.Errorf("scene body %s: mass must be positive, got %g", name, b.Mass))
		}
		if !positive(b.HalfWidth) || !positive(b.HalfHeight) {
			errs = append(errs, fmt.Errorf("scene body %s: extents must be positive", name))
		}
	}
	if players > 1 {
		errs = append(errs, fmt.Errorf("scene: at most one player body, got %d", players))
	}

	if c.Telemetry.StatsWindow < 0 {
		errs = append(errs, fmt.Errorf("telemetry.stats_window must not be negative"))
	}

	return errors.Join(errs...)
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}

// nonNegative also rejects NaN, which compares false against everything.
func nonNegative(v float64) bool {
	return v >= 0 && !math.IsInf(v, 0)
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
