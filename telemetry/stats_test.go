package telemetry

import (
	"math"
	"testing"

	"github.com/pthm-cable/gust/vmath"
)

func TestSpeedStats(t *testing.T) {
	samples := []BodySample{{Speed: 4}, {Speed: 1}, {Speed: 3}, {Speed: 2}}
	mean, p50, p90, top := SpeedStats(samples)

	if math.Abs(mean-2.5) > 1e-9 {
		t.Errorf("expected mean 2.5, got %f", mean)
	}
	if p50 < 1 || p50 > 4 {
		t.Errorf("median out of range: %f", p50)
	}
	if p90 < p50 {
		t.Errorf("expected p90 (%f) >= p50 (%f)", p90, p50)
	}
	if top != 4 {
		t.Errorf("expected max 4, got %f", top)
	}
}

func TestSpeedStatsEmpty(t *testing.T) {
	mean, p50, p90, top := SpeedStats(nil)
	if mean != 0 || p50 != 0 || p90 != 0 || top != 0 {
		t.Error("expected zeros for empty input")
	}
}

func TestKineticEnergy(t *testing.T) {
	got := KineticEnergy([]BodySample{{Speed: 2, Mass: 1}, {Speed: 1, Mass: 4}})
	if math.Abs(got-4) > 1e-9 {
		t.Errorf("expected 4, got %f", got)
	}
}

func TestCollectorWindow(t *testing.T) {
	c := NewCollector(1.0)

	for i := 0; i < 9; i++ {
		c.RecordTick(0.1)
	}
	if c.ShouldFlush() {
		t.Fatal("window should not be complete after 0.9s")
	}

	c.RecordBounces(2)
	c.RecordGroundContacts(3)
	c.RecordWind()
	c.RecordRestart()
	c.RecordTick(0.15)
	if !c.ShouldFlush() {
		t.Fatal("window should be complete after 1.05s")
	}

	stats := c.Flush(10, []BodySample{{Speed: 1, Mass: 2}}, vmath.V(5, -3))
	if stats.Bounces != 2 || stats.GroundContacts != 3 || stats.WindTicks != 1 || stats.Restarts != 1 {
		t.Errorf("unexpected counters %+v", stats)
	}
	if stats.WindowEndTick != 10 || stats.Bodies != 1 {
		t.Errorf("unexpected window %+v", stats)
	}
	if stats.PlayerX != 5 || stats.PlayerY != -3 {
		t.Errorf("expected player (5, -3), got (%f, %f)", stats.PlayerX, stats.PlayerY)
	}

	if c.ShouldFlush() {
		t.Error("expected window reset after flush")
	}
	next := c.Flush(20, nil, vmath.Zero)
	if next.Bounces != 0 || next.WindowStartTick != 10 {
		t.Errorf("expected fresh counters starting at tick 10, got %+v", next)
	}
}

func TestCollectorDisabledWindow(t *testing.T) {
	c := NewCollector(0)
	c.RecordTick(100)
	if c.ShouldFlush() {
		t.Error("zero window duration should never flush")
	}
}
