package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated statistics for a time window.
type WindowStats struct {
	RunID           string  `csv:"run_id"`
	WindowStartTick int32   `csv:"-"`
	WindowEndTick   int32   `csv:"window_end"`
	SimTimeSec      float64 `csv:"sim_time"`

	// Events during window
	Bounces        int `csv:"bounces"`
	GroundContacts int `csv:"ground_contacts"` // body-ticks in floor contact
	WindTicks      int `csv:"wind_ticks"`
	Restarts       int `csv:"restarts"`

	// Motion sampled at window end. Speeds are displacement per tick.
	Bodies        int     `csv:"bodies"`
	SpeedMean     float64 `csv:"speed_mean"`
	SpeedP50      float64 `csv:"speed_p50"`
	SpeedP90      float64 `csv:"speed_p90"`
	SpeedMax      float64 `csv:"speed_max"`
	KineticEnergy float64 `csv:"kinetic_energy"`

	PlayerX float64 `csv:"player_x"`
	PlayerY float64 `csv:"player_y"`
}

// BodySample is one body's motion at the end of a window.
type BodySample struct {
	Speed float64
	Mass  float64
}

// SpeedStats returns mean, median, 90th percentile and max of the sample speeds.
func SpeedStats(samples []BodySample) (mean, p50, p90, top float64) {
	if len(samples) == 0 {
		return 0, 0, 0, 0
	}

	speeds := make([]float64, len(samples))
	for i, s := range samples {
		speeds[i] = s.Speed
	}
	sort.Float64s(speeds)

	mean = stat.Mean(speeds, nil)
	p50 = stat.Quantile(0.5, stat.Empirical, speeds, nil)
	p90 = stat.Quantile(0.9, stat.Empirical, speeds, nil)
	top = floats.Max(speeds)
	return mean, p50, p90, top
}

// KineticEnergy sums 0.5*m*v^2 over the samples.
func KineticEnergy(samples []BodySample) float64 {
	var e float64
	for _, s := range samples {
		e += 0.5 * s.Mass * s.Speed * s.Speed
	}
	return e
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("window_start", int(s.WindowStartTick)),
		slog.Int("window_end", int(s.WindowEndTick)),
		slog.Float64("sim_time", s.SimTimeSec),
		slog.Int("bodies", s.Bodies),
		slog.Int("bounces", s.Bounces),
		slog.Int("ground_contacts", s.GroundContacts),
		slog.Int("wind_ticks", s.WindTicks),
		slog.Int("restarts", s.Restarts),
		slog.Float64("speed_mean", s.SpeedMean),
		slog.Float64("speed_p90", s.SpeedP90),
		slog.Float64("speed_max", s.SpeedMax),
		slog.Float64("kinetic_energy", s.KineticEnergy),
	)
}
