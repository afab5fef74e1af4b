// Package renderer draws the arena, bodies and debug lines with raylib and
// samples keyboard and HUD input into game.Input.
package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/gust/camera"
	"github.com/pthm-cable/gust/components"
	"github.com/pthm-cable/gust/game"
	"github.com/pthm-cable/gust/vmath"
)

// Colors
var (
	ColorBackground = rl.Color{R: 18, G: 20, B: 24, A: 255}
	ColorArena      = rl.Color{R: 70, G: 80, B: 90, A: 255}
	ColorGround     = rl.Color{R: 140, G: 120, B: 90, A: 255}
	ColorGroundBand = rl.Color{R: 140, G: 120, B: 90, A: 60}
	ColorPlayer     = rl.Color{R: 80, G: 200, B: 230, A: 255}
	ColorSeeker     = rl.Color{R: 240, G: 150, B: 60, A: 255}
	ColorVelocity   = rl.White
	ColorAccel      = rl.Yellow
)

// WorldRenderer draws simulation state through a camera.
type WorldRenderer struct {
	cam             *camera.Camera
	arenaW, arenaH  float32
	groundThreshold float32
}

// NewWorldRenderer creates a renderer for an arena of the given size.
func NewWorldRenderer(cam *camera.Camera, arenaW, arenaH, groundThreshold float64) *WorldRenderer {
	return &WorldRenderer{
		cam:             cam,
		arenaW:          float32(arenaW),
		arenaH:          float32(arenaH),
		groundThreshold: float32(groundThreshold),
	}
}

// DrawArena draws the arena outline and the floor.
func (w *WorldRenderer) DrawArena() {
	rl.DrawRectangleLinesEx(w.worldRect(0, 0, w.arenaW/2, w.arenaH/2), 1, ColorArena)

	fx0, fy := w.cam.WorldToScreen(-w.arenaW/2, -w.arenaH/2)
	fx1, _ := w.cam.WorldToScreen(w.arenaW/2, -w.arenaH/2)
	rl.DrawLineEx(rl.Vector2{X: fx0, Y: fy}, rl.Vector2{X: fx1, Y: fy}, 3, ColorGround)
}

// DrawGroundBand shades the height band above the floor where friction applies.
func (w *WorldRenderer) DrawGroundBand() {
	if w.groundThreshold <= 0 {
		return
	}
	floor := -w.arenaH / 2
	rl.DrawRectangleRec(w.worldRect(0, floor+w.groundThreshold/2, w.arenaW/2, w.groundThreshold/2), ColorGroundBand)
}

// DrawBodies draws every body as a filled box. With outlines set the
// collision extents are drawn on top.
func (w *WorldRenderer) DrawBodies(bodies []game.BodySnapshot, outlines bool) {
	for _, b := range bodies {
		if !w.cam.IsVisible(float32(b.Position.X), float32(b.Position.Y), float32(b.HalfWidth), float32(b.HalfHeight)) {
			continue
		}
		rect := BodyRect(w.cam, b)
		rl.DrawRectangleRec(rect, BodyColor(b.Kind))
		if outlines {
			rl.DrawRectangleLinesEx(rect, 1, rl.White)
		}
	}
}

// DrawDebug draws the player's velocity and acceleration lines.
func (w *WorldRenderer) DrawDebug(dv game.DebugVectors, velocityScale, accelScale float64, showVelocity, showAccel bool) {
	if showVelocity {
		start, end := DebugLine(w.cam, dv.Position, dv.Velocity, velocityScale)
		rl.DrawLineEx(start, end, 2, ColorVelocity)
	}
	if showAccel {
		start, end := DebugLine(w.cam, dv.Position, dv.Acceleration, accelScale)
		rl.DrawLineEx(start, end, 2, ColorAccel)
	}
}

// worldRect converts a world-space box to a screen rectangle.
func (w *WorldRenderer) worldRect(cx, cy, halfW, halfH float32) rl.Rectangle {
	return screenRect(w.cam, cx, cy, halfW, halfH)
}

// BodyRect returns the screen rectangle covering a body's extents.
func BodyRect(cam *camera.Camera, b game.BodySnapshot) rl.Rectangle {
	return screenRect(cam, float32(b.Position.X), float32(b.Position.Y), float32(b.HalfWidth), float32(b.HalfHeight))
}

func screenRect(cam *camera.Camera, cx, cy, halfW, halfH float32) rl.Rectangle {
	// Top-left in world is (min x, max y) because screen y points down.
	x, y := cam.WorldToScreen(cx-halfW, cy+halfH)
	s := cam.Scale()
	return rl.Rectangle{X: x, Y: y, Width: 2 * halfW * s, Height: 2 * halfH * s}
}

// DebugLine returns screen endpoints of a line from origin along vec*scale.
func DebugLine(cam *camera.Camera, origin, vec vmath.Vec2, scale float64) (start, end rl.Vector2) {
	tip := origin.Add(vec.Scale(scale))
	sx, sy := cam.WorldToScreen(float32(origin.X), float32(origin.Y))
	ex, ey := cam.WorldToScreen(float32(tip.X), float32(tip.Y))
	return rl.Vector2{X: sx, Y: sy}, rl.Vector2{X: ex, Y: ey}
}

// BodyColor returns the fill color for a body kind.
func BodyColor(kind components.Kind) rl.Color {
	switch kind {
	case components.KindPlayer:
		return ColorPlayer
	case components.KindSeeker:
		return ColorSeeker
	default:
		return rl.Gray
	}
}
