package main

import (
	"flag"
	"log/slog"
	"os"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/gust/config"
	"github.com/pthm-cable/gust/game"
	"github.com/pthm-cable/gust/renderer"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	headless := flag.Bool("headless", false, "Run without graphics")
	logStats := flag.Bool("log-stats", false, "Output stats via slog")
	logLevel := flag.String("log-level", "info", "Log level: debug, info, warn, error")
	statsWindow := flag.Float64("stats-window", 0, "Stats window size in seconds (0 = use config)")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	maxTicks := flag.Int("max-ticks", 0, "Stop after N ticks (0 = unlimited)")
	windDuty := flag.Float64("wind-duty", 0, "Headless: fraction of each 2s cycle with wind held")
	restartEvery := flag.Int("restart-every", 0, "Headless: request a restart every N ticks (0 = never)")

	flag.Parse()

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: parseLevel(*logLevel)}))
	slog.SetDefault(logger)

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Use config stats window if not overridden by CLI
	if *statsWindow > 0 {
		cfg.Telemetry.StatsWindow = *statsWindow
	}

	opts := game.Options{
		LogStats:  *logStats,
		OutputDir: *outputDir,
	}

	g, err := game.NewGame(cfg, opts)
	if err != nil {
		slog.Error("failed to create game", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := g.Close(); err != nil {
			slog.Error("failed to close output", "error", err)
		}
	}()

	if *headless {
		runHeadless(g, *maxTicks, *windDuty, *restartEvery)
		return
	}
	runWindowed(g, *maxTicks)
}

// runHeadless steps at the configured dt with scripted input.
func runHeadless(g *game.Game, maxTicks int, windDuty float64, restartEvery int) {
	cfg := g.Config()
	dt := cfg.Physics.DT
	cycle := int(2.0/dt + 0.5)
	windTicks := int(windDuty * float64(cycle))

	slog.Info("starting headless simulation",
		"dt", dt,
		"bodies", g.BodyCount(),
		"max_ticks", maxTicks,
		"wind_duty", windDuty,
		"restart_every", restartEvery,
		"run_id", g.RunID(),
	)

	for {
		tick := int(g.Tick())
		in := game.Input{
			WindActive:       cycle > 0 && tick%cycle < windTicks,
			RestartRequested: restartEvery > 0 && tick > 0 && tick%restartEvery == 0,
		}
		g.Step(dt, in)

		if maxTicks > 0 && int(g.Tick()) >= maxTicks {
			slog.Info("max ticks reached", "tick", g.Tick(), "restarts", g.Restarts())
			return
		}
	}
}

// runWindowed drives the simulation from the raylib frame loop.
func runWindowed(g *game.Game, maxTicks int) {
	cfg := g.Config()

	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), "gust")
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	view := renderer.NewView(g, int32(cfg.Screen.Width), int32(cfg.Screen.Height))

	for !rl.WindowShouldClose() {
		in := view.SampleInput()
		g.Step(view.FrameDT(), in)
		view.RecordFrame()

		rl.BeginDrawing()
		view.Draw()
		rl.EndDrawing()

		if maxTicks > 0 && int(g.Tick()) >= maxTicks {
			break
		}
	}
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
