package camera

import (
	"math"
	"testing"
)

func near(a, b float32) bool {
	return math.Abs(float64(a-b)) < 0.01
}

func TestNew(t *testing.T) {
	cam := New(672, 512, 640, 480)

	// Should be centered on the arena
	if cam.X != 0 || cam.Y != 0 {
		t.Errorf("expected camera at (0, 0), got (%f, %f)", cam.X, cam.Y)
	}
	if cam.Zoom != 1.0 {
		t.Errorf("expected zoom 1.0, got %f", cam.Zoom)
	}
	// Usable area is exactly 640x480
	if !near(cam.Scale(), 1) {
		t.Errorf("expected scale 1, got %f", cam.Scale())
	}
}

func TestFitPreservesAspect(t *testing.T) {
	// Wide viewport: height is the limiting axis.
	cam := New(2000, 512, 640, 480)
	if !near(cam.Scale(), 1) {
		t.Errorf("expected height-limited scale 1, got %f", cam.Scale())
	}

	// Tall viewport: width is the limiting axis.
	cam = New(352, 2000, 640, 480)
	if !near(cam.Scale(), 0.5) {
		t.Errorf("expected width-limited scale 0.5, got %f", cam.Scale())
	}
}

func TestWorldToScreenFlipsY(t *testing.T) {
	cam := New(672, 512, 640, 480)

	tests := []struct {
		name   string
		wx, wy float32
		sx, sy float32
	}{
		{"origin at screen center", 0, 0, 336, 256},
		{"floor at bottom padding", 0, -240, 336, 496},
		{"up is up", 0, 100, 336, 156},
		{"right wall", 320, 0, 656, 256},
		{"left wall", -320, 0, 16, 256},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sx, sy := cam.WorldToScreen(tt.wx, tt.wy)
			if !near(sx, tt.sx) || !near(sy, tt.sy) {
				t.Errorf("expected (%f, %f), got (%f, %f)", tt.sx, tt.sy, sx, sy)
			}
		})
	}
}

func TestScreenToWorldRoundtrip(t *testing.T) {
	cam := New(1280, 720, 640, 480)
	cam.SetZoom(2)
	cam.Pan(40, -30)

	testCases := []struct{ sx, sy float32 }{
		{640, 360},  // center
		{100, 100},  // top-left
		{1200, 600}, // near bottom-right
	}

	for _, tc := range testCases {
		wx, wy := cam.ScreenToWorld(tc.sx, tc.sy)
		sx, sy := cam.WorldToScreen(wx, wy)
		if !near(sx, tc.sx) || !near(sy, tc.sy) {
			t.Errorf("roundtrip failed: (%f,%f) -> (%f,%f) -> (%f,%f)",
				tc.sx, tc.sy, wx, wy, sx, sy)
		}
	}
}

func TestZoomClamped(t *testing.T) {
	cam := New(1280, 720, 640, 480)

	cam.ZoomBy(100)
	if cam.Zoom != cam.MaxZoom {
		t.Errorf("expected zoom clamped to %f, got %f", cam.MaxZoom, cam.Zoom)
	}
	cam.ZoomBy(0.001)
	if cam.Zoom != cam.MinZoom {
		t.Errorf("expected zoom clamped to %f, got %f", cam.MinZoom, cam.Zoom)
	}
}

func TestPanStaysInArena(t *testing.T) {
	cam := New(672, 512, 640, 480)
	cam.Pan(1e6, 1e6)

	if cam.X != 320 || cam.Y != -240 {
		t.Errorf("expected center clamped to (320, -240), got (%f, %f)", cam.X, cam.Y)
	}

	cam.Reset()
	if cam.X != 0 || cam.Y != 0 || cam.Zoom != 1 {
		t.Errorf("expected reset camera, got %+v", cam)
	}
}

func TestIsVisible(t *testing.T) {
	cam := New(672, 512, 640, 480)
	cam.SetZoom(4)

	if !cam.IsVisible(0, 0, 1, 1) {
		t.Error("expected origin to be visible")
	}
	if cam.IsVisible(300, 200, 8, 8) {
		t.Error("expected far corner to be culled at zoom 4")
	}
}

func TestResize(t *testing.T) {
	cam := New(672, 512, 640, 480)
	cam.Resize(1312, 992)
	if !near(cam.Scale(), 2) {
		t.Errorf("expected scale 2 after resize, got %f", cam.Scale())
	}
}
