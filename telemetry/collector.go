package telemetry

import "github.com/pthm-cable/gust/vmath"

// Collector accumulates events within time windows and produces WindowStats.
// Windows are measured in simulated seconds because the host may supply a
// varying dt.
type Collector struct {
	windowDurationSec float64

	// Current window tracking
	windowStartTick int32
	windowElapsed   float64
	simTime         float64

	// Event counters for current window
	bounces        int
	groundContacts int
	windTicks      int
	restarts       int
}

// NewCollector creates a new stats collector.
// windowDurationSec: how long each stats window lasts in simulation seconds.
func NewCollector(windowDurationSec float64) *Collector {
	return &Collector{windowDurationSec: windowDurationSec}
}

// RecordTick advances simulated time by dt.
func (c *Collector) RecordTick(dt float64) {
	c.windowElapsed += dt
	c.simTime += dt
}

// RecordBounces records boundary reflections.
func (c *Collector) RecordBounces(n int) {
	c.bounces += n
}

// RecordGroundContacts records bodies in floor contact this tick.
func (c *Collector) RecordGroundContacts(n int) {
	c.groundContacts += n
}

// RecordWind records a tick with the wind held.
func (c *Collector) RecordWind() {
	c.windTicks++
}

// RecordRestart records a scene restart.
func (c *Collector) RecordRestart() {
	c.restarts++
}

// ShouldFlush returns true once the window has covered its duration.
// A zero duration disables windows.
func (c *Collector) ShouldFlush() bool {
	return c.windowDurationSec > 0 && c.windowElapsed >= c.windowDurationSec
}

// Flush produces a WindowStats and resets counters for the next window.
func (c *Collector) Flush(currentTick int32, samples []BodySample, player vmath.Vec2) WindowStats {
	mean, p50, p90, top := SpeedStats(samples)

	stats := WindowStats{
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   currentTick,
		SimTimeSec:      c.simTime,

		Bounces:        c.bounces,
		GroundContacts: c.groundContacts,
		WindTicks:      c.windTicks,
		Restarts:       c.restarts,

		Bodies:        len(samples),
		SpeedMean:     mean,
		SpeedP50:      p50,
		SpeedP90:      p90,
		SpeedMax:      top,
		KineticEnergy: KineticEnergy(samples),

		PlayerX: player.X,
		PlayerY: player.Y,
	}

	// Reset for next window
	c.windowStartTick = currentTick
	c.windowElapsed = 0
	c.bounces = 0
	c.groundContacts = 0
	c.windTicks = 0
	c.restarts = 0

	return stats
}
