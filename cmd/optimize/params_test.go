package main

import (
	"math"
	"testing"

	"github.com/pthm-cable/gust/config"
)

func TestNormalizeRoundTrip(t *testing.T) {
	pv := NewParamVector()
	raw := pv.DefaultVector()
	back := pv.Denormalize(pv.Normalize(raw))
	for i := range raw {
		if math.Abs(back[i]-raw[i]) > 1e-9 {
			t.Errorf("%s: expected %f, got %f", pv.Specs[i].Name, raw[i], back[i])
		}
	}
}

func TestApplyClampsAndExtracts(t *testing.T) {
	pv := NewParamVector()
	cfg := config.Default()

	pv.ApplyToConfig(cfg, []float64{100, -1, 0.5})
	got := pv.ExtractFromConfig(cfg)
	want := []float64{40, 0, 0.5}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("%s: expected %f, got %f", pv.Specs[i].Path, want[i], got[i])
		}
	}
}

func TestRunTrialWindPushesRight(t *testing.T) {
	cfg := config.Default()
	trial, err := RunTrial(cfg, 120)
	if err != nil {
		t.Fatalf("RunTrial: %v", err)
	}
	if trial.AirDrift <= 0 {
		t.Errorf("expected positive air drift, got %f", trial.AirDrift)
	}
	// Friction only slows the grounded body.
	if trial.GroundDrift >= trial.AirDrift {
		t.Errorf("expected ground drift %f below air drift %f", trial.GroundDrift, trial.AirDrift)
	}
}

func TestRunTrialNeedsPlayer(t *testing.T) {
	cfg := config.Default()
	cfg.Scene.Bodies = cfg.Scene.Bodies[1:]
	cfg.Recompute()
	if _, err := RunTrial(cfg, 10); err == nil {
		t.Error("expected error without a player")
	}
}

func TestEvaluatePrefersTargets(t *testing.T) {
	cfg := config.Default()
	pv := NewParamVector()
	trial, err := RunTrial(cfg, 60)
	if err != nil {
		t.Fatalf("RunTrial: %v", err)
	}

	// Targets equal to the defaults' own outcome score only the zero regularization term.
	fe := NewFitnessEvaluator(pv, Targets{GroundDrift: trial.GroundDrift, AirDrift: trial.AirDrift}, 60, cfg)
	atDefault := fe.Evaluate(pv.DefaultVector())
	if atDefault > 1e-9 {
		t.Errorf("expected ~0 fitness at defaults, got %g", atDefault)
	}
	if other := fe.Evaluate([]float64{30, 5, 1}); other <= atDefault {
		t.Errorf("expected worse fitness away from defaults, got %g <= %g", other, atDefault)
	}
}
