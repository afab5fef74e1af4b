// Command tunepreview plots body trajectories for adjustable physics values.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/gust/camera"
	"github.com/pthm-cable/gust/config"
	"github.com/pthm-cable/gust/renderer"
)

const (
	windowWidth  = 1000
	windowHeight = 720
	previewW     = 620
	panelWidth   = windowWidth - previewW - 30
)

// slider is one labelled raygui slider bound to a parameter.
type slider struct {
	label    string
	min, max float32
	format   string
	value    func(p *TuneParams) *float32
}

var sliders = []slider{
	{"Wind X (force)", 0, 40, "%.2f", func(p *TuneParams) *float32 { return &p.WindX }},
	{"Friction (mu)", 0, 10, "%.2f", func(p *TuneParams) *float32 { return &p.Friction }},
	{"Drag (c)", 0, 2, "%.3f", func(p *TuneParams) *float32 { return &p.Drag }},
	{"Gravity Y", -40, 0, "%.1f", func(p *TuneParams) *float32 { return &p.GravityY }},
	{"Wind held (s)", 0, 10, "%.1f", func(p *TuneParams) *float32 { return &p.WindSeconds }},
	{"Duration (s)", 1, 20, "%.1f", func(p *TuneParams) *float32 { return &p.Seconds }},
}

func main() {
	configPath := flag.String("config", "", "Base config YAML file (empty = use defaults)")
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, nil)))

	base, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	rl.InitWindow(windowWidth, windowHeight, "gust tuning preview")
	defer rl.CloseWindow()
	rl.SetTargetFPS(30)

	cam := camera.New(previewW, windowHeight-60, float32(base.Arena.Width), float32(base.Arena.Height))
	world := renderer.NewWorldRenderer(cam, base.Arena.Width, base.Arena.Height, base.Physics.GroundThreshold)

	defaults := paramsFromConfig(base)
	params := defaults
	var paths []Path
	var cfg *config.Config
	yamlText := ""
	needsRegen := true

	for !rl.WindowShouldClose() {
		if needsRegen {
			cfg = params.apply(base)
			paths, err = simulate(cfg, params)
			if err != nil {
				slog.Error("simulation failed", "error", err)
			}
			if yamlText, err = physicsYAML(cfg); err != nil {
				slog.Error("yaml render failed", "error", err)
			}
			needsRegen = false
		}

		rl.BeginDrawing()
		rl.ClearBackground(renderer.ColorBackground)

		world.DrawGroundBand()
		world.DrawArena()
		for _, p := range paths {
			drawPath(cam, p)
		}

		// Parameter panel
		panelX := float32(previewW + 20)
		panelY := float32(20)
		rl.DrawText("Physics Parameters", int32(panelX), int32(panelY), 20, rl.LightGray)
		panelY += 35

		for _, s := range sliders {
			v := s.value(&params)
			rl.DrawText(s.label, int32(panelX), int32(panelY), 14, rl.Gray)
			panelY += 18
			nv := gui.SliderBar(
				rl.Rectangle{X: panelX, Y: panelY, Width: panelWidth - 80, Height: 20},
				"", "", *v, s.min, s.max,
			)
			if nv != *v {
				*v = nv
				needsRegen = true
			}
			rl.DrawText(fmt.Sprintf(s.format, *v), int32(panelX+panelWidth-70), int32(panelY+2), 16, rl.LightGray)
			panelY += 32
		}

		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 160, Height: 30}, toggleText(params.CollideFirst, "Collide: before", "Collide: after")) {
			params.CollideFirst = !params.CollideFirst
			needsRegen = true
		}
		if gui.Button(rl.Rectangle{X: panelX + 170, Y: panelY, Width: 120, Height: 30}, "Reset All") {
			params = defaults
			needsRegen = true
		}
		panelY += 45

		rl.DrawText("YAML Config:", int32(panelX), int32(panelY), 16, rl.LightGray)
		panelY += 25
		for _, line := range strings.Split(strings.TrimSpace(yamlText), "\n") {
			rl.DrawText(line, int32(panelX), int32(panelY), 14, rl.Gray)
			panelY += 16
		}

		rl.DrawText("Press C to copy YAML to clipboard", int32(panelX), int32(windowHeight-30), 12, rl.DarkGray)
		if rl.IsKeyPressed(rl.KeyC) {
			rl.SetClipboardText(yamlText)
		}

		rl.EndDrawing()
	}
}

// drawPath draws a trajectory as a polyline, with a box at the final position.
func drawPath(cam *camera.Camera, p Path) {
	color := renderer.ColorSeeker
	if p.Player {
		color = renderer.ColorPlayer
	}
	for i := 1; i < len(p.Points); i++ {
		start, end := renderer.DebugLine(cam, p.Points[i-1], p.Points[i].Sub(p.Points[i-1]), 1)
		rl.DrawLineEx(start, end, 1.5, color)
	}
	if n := len(p.Points); n > 0 {
		x, y := cam.WorldToScreen(float32(p.Points[n-1].X), float32(p.Points[n-1].Y))
		rl.DrawCircleV(rl.Vector2{X: x, Y: y}, 3, color)
	}
}

func toggleText(cond bool, ifTrue, ifFalse string) string {
	if cond {
		return ifTrue
	}
	return ifFalse
}
