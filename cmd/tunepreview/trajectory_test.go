package main

import (
	"strings"
	"testing"

	"github.com/pthm-cable/gust/config"
)

func TestSimulateRecordsEveryTick(t *testing.T) {
	base := config.Default()
	p := paramsFromConfig(base)
	p.Seconds = 1
	p.WindSeconds = 1

	cfg := p.apply(base)
	paths, err := simulate(cfg, p)
	if err != nil {
		t.Fatalf("simulate: %v", err)
	}
	if len(paths) != len(base.Scene.Bodies) {
		t.Fatalf("expected %d paths, got %d", len(base.Scene.Bodies), len(paths))
	}

	ticks := int(1/cfg.Physics.DT + 0.5)
	players := 0
	for _, path := range paths {
		if len(path.Points) != ticks+1 {
			t.Errorf("%s: expected %d points, got %d", path.Name, ticks+1, len(path.Points))
		}
		if path.Player {
			players++
		}
	}
	if players != 1 {
		t.Errorf("expected one player path, got %d", players)
	}
}

func TestWindMovesPlayerRight(t *testing.T) {
	base := config.Default()
	p := paramsFromConfig(base)
	p.Seconds = 2

	calm := p
	calm.WindSeconds = 0
	windy := p
	windy.WindSeconds = 2

	endX := func(tp TuneParams) float64 {
		paths, err := simulate(tp.apply(base), tp)
		if err != nil {
			t.Fatalf("simulate: %v", err)
		}
		for _, path := range paths {
			if path.Player {
				return path.Points[len(path.Points)-1].X
			}
		}
		t.Fatal("no player path")
		return 0
	}

	if calmX, windyX := endX(calm), endX(windy); windyX <= calmX {
		t.Errorf("expected wind to push player right: calm %f, windy %f", calmX, windyX)
	}
}

func TestApplyLeavesBaseUntouched(t *testing.T) {
	base := config.Default()
	p := paramsFromConfig(base)
	p.Drag = 1.5

	cfg := p.apply(base)
	if cfg.Physics.Drag != float64(float32(1.5)) {
		t.Errorf("expected drag 1.5, got %f", cfg.Physics.Drag)
	}
	if base.Physics.Drag == cfg.Physics.Drag {
		t.Error("apply mutated the base config")
	}
}

func TestPhysicsYAML(t *testing.T) {
	out, err := physicsYAML(config.Default())
	if err != nil {
		t.Fatalf("physicsYAML: %v", err)
	}
	for _, want := range []string{"physics:", "friction:", "drag:", "wind:"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output:\n%s", want, out)
		}
	}
}
