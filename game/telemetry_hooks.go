package game

import (
	"log/slog"

	"github.com/pthm-cable/gust/telemetry"
)

// flushTelemetry closes the current stats window.
func (g *Game) flushTelemetry() {
	samples := g.sampleBodies()
	player, _ := g.playerPosition()

	stats := g.collector.Flush(g.tick, samples, player)
	perfStats := g.perfCollector.Stats()

	// Call stats callback if provided
	if g.statsCallback != nil {
		g.statsCallback(stats)
	}

	// Log stats if enabled (console output)
	if g.logStats {
		slog.Info("window", "stats", stats)
		perfStats.LogStats()
	}

	// Write to CSV if output manager is enabled
	if g.outputManager != nil {
		if err := g.outputManager.WriteTelemetry(stats); err != nil {
			slog.Error("failed to write telemetry", "error", err)
		}
		if err := g.outputManager.WritePerf(perfStats, stats.WindowEndTick); err != nil {
			slog.Error("failed to write perf", "error", err)
		}
	}
}

// sampleBodies collects speed and mass of every live body.
func (g *Game) sampleBodies() []telemetry.BodySample {
	samples := make([]telemetry.BodySample, 0, len(g.entities))
	for _, e := range g.entities {
		if !g.world.Alive(e) {
			continue
		}
		_, vel, _, mass, _, _ := g.bodyMapper.Get(e)
		samples = append(samples, telemetry.BodySample{
			Speed: vel.Length(),
			Mass:  mass.Value,
		})
	}
	return samples
}

