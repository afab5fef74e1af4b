package config

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("loading defaults: %v", err)
	}

	if cfg.Arena.Width != 640 || cfg.Arena.Height != 480 {
		t.Errorf("expected 640x480 arena, got %gx%g", cfg.Arena.Width, cfg.Arena.Height)
	}
	if cfg.Physics.Gravity.Y != -10 {
		t.Errorf("expected gravity y -10, got %g", cfg.Physics.Gravity.Y)
	}
	if cfg.Physics.MaxSpeed != 300 {
		t.Errorf("expected max speed 300, got %g", cfg.Physics.MaxSpeed)
	}
	if cfg.Derived.PlayerIndex != 0 {
		t.Errorf("expected player at index 0, got %d", cfg.Derived.PlayerIndex)
	}
}

func TestLoadMergesUserFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	user := `
physics:
  drag: 0.5
scene:
  bodies:
    - name: solo
      kind: player
      x: 10
      y: 20
      mass: 1
      half_width: 4
      half_height: 4
`
	if err := os.WriteFile(path, []byte(user), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("loading: %v", err)
	}

	if cfg.Physics.Drag != 0.5 {
		t.Errorf("expected overridden drag 0.5, got %g", cfg.Physics.Drag)
	}
	if cfg.Physics.Friction != 1.0 {
		t.Errorf("expected default friction to survive merge, got %g", cfg.Physics.Friction)
	}
	if len(cfg.Scene.Bodies) != 1 || cfg.Scene.Bodies[0].Name != "solo" {
		t.Errorf("expected scene replaced by user bodies, got %+v", cfg.Scene.Bodies)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"defaults ok", func(c *Config) {}, ""},
		{"zero mass", func(c *Config) { c.Scene.Bodies[0].Mass = 0 }, "mass must be positive"},
		{"negative mass", func(c *Config) { c.Scene.Bodies[1].Mass = -1 }, "mass must be positive"},
		{"bad kind", func(c *Config) { c.Scene.Bodies[1].Kind = "rock" }, "unknown kind"},
		{"two players", func(c *Config) { c.Scene.Bodies[1].Kind = KindPlayer }, "at most one player"},
		{"zero arena", func(c *Config) { c.Arena.Width = 0 }, "arena"},
		{"zero dt", func(c *Config) { c.Physics.DT = 0 }, "physics.dt"},
		{"zero extents", func(c *Config) { c.Scene.Bodies[0].HalfHeight = 0 }, "extents"},
		{"negative friction", func(c *Config) { c.Physics.Friction = -1 }, "friction and drag"},
		{"nan friction", func(c *Config) { c.Physics.Friction = math.NaN() }, "friction and drag"},
		{"nan drag", func(c *Config) { c.Physics.Drag = math.NaN() }, "friction and drag"},
		{"inf drag", func(c *Config) { c.Physics.Drag = math.Inf(1) }, "friction and drag"},
		{"nan ground threshold", func(c *Config) { c.Physics.GroundThreshold = math.NaN() }, "ground_threshold"},
		{"inf ground threshold", func(c *Config) { c.Physics.GroundThreshold = math.Inf(-1) }, "ground_threshold"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default().Clone()
			tc.mutate(cfg)
			err := cfg.Validate()
			if tc.wantErr == "" {
				if err != nil {
					t.Errorf("expected no error, got %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("expected error containing %q, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestCloneIsIndependent(t *testing.T) {
	base := Default()
	c := base.Clone()
	c.Scene.Bodies[0].X = 999

	if base.Scene.Bodies[0].X == 999 {
		t.Error("clone shares scene bodies with original")
	}
}

func TestWriteYAMLRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")
	cfg := Default()
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("writing: %v", err)
	}

	back, err := Load(path)
	if err != nil {
		t.Fatalf("reloading: %v", err)
	}
	if len(back.Scene.Bodies) != len(cfg.Scene.Bodies) {
		t.Errorf("expected %d bodies after reload, got %d", len(cfg.Scene.Bodies), len(back.Scene.Bodies))
	}
}
