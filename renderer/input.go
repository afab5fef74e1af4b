package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/gust/game"
)

// SampleInput reads the keyboard and last frame's HUD buttons into the
// per-tick signals. It also handles view-only keys (overlays, camera, resize).
func (v *View) SampleInput() game.Input {
	v.handleResize()
	v.handleOverlayKeys()
	v.handleCameraInput()

	in := game.Input{
		WindActive:       v.windHeld(),
		RestartRequested: rl.IsKeyPressed(rl.KeyR) || v.actions.Restart,
	}
	v.actions.Restart = false
	return in
}

// windHeld reports whether wind is on: W held or the HUD latch set.
func (v *View) windHeld() bool {
	return rl.IsKeyDown(rl.KeyW) || v.actions.WindLatch
}

// handleOverlayKeys toggles overlays bound to pressed keys.
func (v *View) handleOverlayKeys() {
	for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
		v.overlays.HandleKeyPress(key)
	}
}

// handleResize checks for window resize and propagates new dimensions.
func (v *View) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	w := float32(rl.GetScreenWidth())
	h := float32(rl.GetScreenHeight())
	if w == v.screenW && h == v.screenH {
		return
	}
	v.screenW = w
	v.screenH = h

	v.cam.Resize(w-controlsWidth, h)
	v.controls.SetPosition(int32(w)-controlsWidth+10, 10)
	v.perfPanel.SetPosition(10, int32(h)-220)
}

// handleCameraInput processes camera pan/zoom controls.
func (v *View) handleCameraInput() {
	// Pan speed scales inversely with zoom for natural feel
	panSpeed := float32(8.0) / v.cam.Zoom

	if rl.IsKeyDown(rl.KeyRight) {
		v.cam.Pan(panSpeed, 0)
	}
	if rl.IsKeyDown(rl.KeyLeft) {
		v.cam.Pan(-panSpeed, 0)
	}
	if rl.IsKeyDown(rl.KeyDown) {
		v.cam.Pan(0, panSpeed)
	}
	if rl.IsKeyDown(rl.KeyUp) {
		v.cam.Pan(0, -panSpeed)
	}

	if wheelMove := rl.GetMouseWheelMove(); wheelMove != 0 {
		v.cam.ZoomBy(1.0 + wheelMove*0.1)
	}

	if rl.IsKeyPressed(rl.KeyHome) {
		v.cam.Reset()
	}
}
