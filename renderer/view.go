package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/gust/camera"
	"github.com/pthm-cable/gust/components"
	"github.com/pthm-cable/gust/game"
	"github.com/pthm-cable/gust/systems"
	"github.com/pthm-cable/gust/ui"
)

const controlsWidth = 220

// ControlsLegend is the key help drawn at the bottom of the window.
const ControlsLegend = "W: wind | R: restart | V/A/B/G: debug | I: inspector | P: perf | Arrows/wheel: camera | Home: reset view"

// View owns the window-side state: camera, panels and overlay toggles.
// It needs an open raylib window for drawing and input, but not for construction.
type View struct {
	g   *game.Game
	cam *camera.Camera

	world     *WorldRenderer
	hud       *ui.HUD
	controls  *ui.ControlsPanel
	inspector *ui.Inspector
	perfPanel *ui.PerfPanel
	overlays  *ui.OverlayRegistry
	registry  *systems.SystemRegistry

	screenW, screenH float32

	// Actions from last frame's HUD buttons, consumed by the next SampleInput
	actions ui.ControlActions
}

// NewView creates a view for g sized to the given window.
func NewView(g *game.Game, screenW, screenH int32) *View {
	cfg := g.Config()
	w, h := float32(screenW), float32(screenH)

	cam := camera.New(w-controlsWidth, h, float32(cfg.Arena.Width), float32(cfg.Arena.Height))

	v := &View{
		g:         g,
		cam:       cam,
		world:     NewWorldRenderer(cam, cfg.Arena.Width, cfg.Arena.Height, cfg.Physics.GroundThreshold),
		hud:       ui.NewHUD(),
		controls:  ui.NewControlsPanel(screenW-controlsWidth+10, 10, controlsWidth-20, float32(cfg.Debug.AccelScale)),
		inspector: ui.NewInspector(10, 100, 200),
		perfPanel: ui.NewPerfPanel(10, screenH-220),
		overlays:  ui.NewOverlayRegistry(cfg.Debug.Lines),
		registry:  systems.NewSystemRegistry(),
		screenW:   w,
		screenH:   h,
	}
	v.actions.AccelScale = float32(cfg.Debug.AccelScale)
	return v
}

// Camera returns the view camera.
func (v *View) Camera() *camera.Camera {
	return v.cam
}

// Draw renders one frame. Must be called between rl.BeginDrawing and rl.EndDrawing.
func (v *View) Draw() {
	cfg := v.g.Config()
	rl.ClearBackground(ColorBackground)

	// World
	if v.overlays.IsEnabled(ui.OverlayGroundBand) {
		v.world.DrawGroundBand()
	}
	v.world.DrawArena()

	bodies := v.g.Snapshot()
	v.world.DrawBodies(bodies, v.overlays.IsEnabled(ui.OverlayExtents))

	dv, hasPlayer := v.g.DebugVectors()
	if hasPlayer {
		v.world.DrawDebug(dv, cfg.Debug.VelocityScale, float64(v.actions.AccelScale),
			v.overlays.IsEnabled(ui.OverlayVelocity), v.overlays.IsEnabled(ui.OverlayAcceleration))
	}

	// Panels
	v.hud.Draw(ui.HUDData{
		Title:    "gust",
		State:    v.g.State().String(),
		Bodies:   v.g.BodyCount(),
		Tick:     v.g.Tick(),
		Restarts: v.g.Restarts(),
		FPS:      rl.GetFPS(),
		Wind:     v.windHeld(),
	})
	v.hud.DrawControls(int32(v.screenH), ControlsLegend)

	if v.overlays.IsEnabled(ui.OverlayInspector) {
		v.inspector.Draw(v.inspectorData(bodies, dv, hasPlayer))
	}

	if v.overlays.IsEnabled(ui.OverlayPerf) {
		stats := v.g.PerfStats()
		v.perfPanel.Draw(ui.PerfPanelData{
			SystemTimes: stats.PhaseAvg,
			Total:       stats.AvgTickDuration,
			Registry:    v.registry,
		})
	}

	v.actions = v.controls.Draw(v.overlays)
}

// inspectorData builds the player panel contents.
func (v *View) inspectorData(bodies []game.BodySnapshot, dv game.DebugVectors, hasPlayer bool) ui.InspectorData {
	cfg := v.g.Config()
	data := ui.InspectorData{
		HasPlayer: hasPlayer,
		MaxSpeed:  float32(cfg.Physics.MaxSpeed * v.g.LastDT()),
		Wind:      v.windHeld(),
	}
	if !hasPlayer {
		return data
	}

	data.PosX, data.PosY = float32(dv.Position.X), float32(dv.Position.Y)
	data.VelX, data.VelY = float32(dv.Velocity.X), float32(dv.Velocity.Y)
	data.AccX, data.AccY = float32(dv.Acceleration.X), float32(dv.Acceleration.Y)

	for _, b := range bodies {
		if b.Kind != components.KindPlayer {
			continue
		}
		data.Name = b.Name
		data.OnGround = systems.OnGround(b.Position, b.HalfHeight, cfg.Arena.Height, cfg.Physics.GroundThreshold)
		break
	}
	return data
}

// RecordFrame forwards frame timing to the game's perf collector.
func (v *View) RecordFrame() {
	v.g.RecordFrame()
}

// FrameDT returns the host frame time, falling back to the configured dt
// on the first frame when raylib reports zero.
func (v *View) FrameDT() float64 {
	dt := float64(rl.GetFrameTime())
	if dt <= 0 {
		return v.g.Config().Physics.DT
	}
	// Long stalls (window drag, breakpoints) would otherwise launch bodies.
	if maxDT := 4 * v.g.Config().Physics.DT; dt > maxDT {
		return maxDT
	}
	return dt
}

