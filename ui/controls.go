package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// ControlActions reports what the controls panel asked for this frame.
type ControlActions struct {
	Restart    bool
	WindLatch  bool    // the wind button keeps wind on until clicked again
	AccelScale float32 // acceleration line length multiplier
}

// ControlsPanel renders the right-side controls panel with buttons and overlay toggles.
type ControlsPanel struct {
	renderer *Renderer
	x, y     int32
	width    int32

	windLatch  bool
	accelScale float32
}

// NewControlsPanel creates a new controls panel.
func NewControlsPanel(x, y, width int32, accelScale float32) *ControlsPanel {
	return &ControlsPanel{
		renderer:   NewRenderer(),
		x:          x,
		y:          y,
		width:      width,
		accelScale: accelScale,
	}
}

// SetPosition updates the panel position.
func (c *ControlsPanel) SetPosition(x, y int32) {
	c.x = x
	c.y = y
}

// Draw renders the controls panel and returns the actions requested.
func (c *ControlsPanel) Draw(overlays *OverlayRegistry) ControlActions {
	r := c.renderer
	padding := r.Theme.Padding
	lineHeight := r.Theme.LineHeight

	// Calculate panel height based on content
	categories := overlays.Categories()
	totalItems := 0
	for _, cat := range categories {
		totalItems += len(overlays.ByCategory(cat)) + 1 // +1 for category header
	}
	buttonsHeight := int32(30 + 8 + 20 + 8)
	panelHeight := int32(totalItems)*lineHeight + padding*3 + lineHeight + buttonsHeight + int32(len(categories))*4

	r.DrawPanel(c.x, c.y, c.width, panelHeight)

	x := float32(c.x + padding)
	y := c.y + padding
	inner := float32(c.width - padding*2)

	rl.DrawText("Controls", int32(x), y, 16, rl.White)
	y += lineHeight + 4

	var actions ControlActions

	half := (inner - 8) / 2
	if gui.Button(rl.Rectangle{X: x, Y: float32(y), Width: half, Height: 30}, toggleText(c.windLatch, "Wind: ON", "Wind: OFF")) {
		c.windLatch = !c.windLatch
	}
	if gui.Button(rl.Rectangle{X: x + half + 8, Y: float32(y), Width: half, Height: 30}, "Restart") {
		actions.Restart = true
	}
	y += 30 + 8

	c.accelScale = gui.SliderBar(
		rl.Rectangle{X: x + 40, Y: float32(y), Width: inner - 80, Height: 20},
		"Accel", fmt.Sprintf("%.0f", c.accelScale),
		c.accelScale, 1, 50,
	)
	y += 20 + 8

	for _, category := range categories {
		rl.DrawText(categoryLabel(category), int32(x), y, r.Theme.HeaderFontSize, r.Theme.SectionHeader)
		y += lineHeight

		for _, desc := range overlays.ByCategory(category) {
			c.drawToggle(int32(x), y, desc, overlays.IsEnabled(desc.ID), int32(inner))
			y += lineHeight
		}

		y += 4 // Gap between categories
	}

	actions.WindLatch = c.windLatch
	actions.AccelScale = c.accelScale
	return actions
}

// drawToggle draws a single overlay toggle line.
func (c *ControlsPanel) drawToggle(x, y int32, desc OverlayDescriptor, enabled bool, width int32) {
	r := c.renderer

	statusColor := rl.Color{R: 80, G: 80, B: 80, A: 255}
	if enabled {
		statusColor = rl.Color{R: 100, G: 200, B: 100, A: 255}
	}
	rl.DrawRectangle(x, y+2, 8, 8, statusColor)

	nameColor := r.Theme.LabelColor
	if enabled {
		nameColor = rl.White
	}
	rl.DrawText(desc.Name, x+14, y, r.Theme.FontSize, nameColor)

	// Key binding (right aligned)
	if desc.KeyLabel != "" {
		keyText := fmt.Sprintf("[%s]", desc.KeyLabel)
		keyWidth := rl.MeasureText(keyText, r.Theme.FontSize)
		rl.DrawText(keyText, x+width-keyWidth, y, r.Theme.FontSize, rl.Color{R: 150, G: 150, B: 150, A: 255})
	}
}

// categoryLabel returns a display label for a category.
func categoryLabel(cat string) string {
	switch cat {
	case "debug":
		return "Debug"
	case "panels":
		return "Panels"
	case "forces":
		return "Forces"
	case "motion":
		return "Motion"
	case "internal":
		return "Internal"
	default:
		return cat
	}
}

func toggleText(cond bool, ifTrue, ifFalse string) string {
	if cond {
		return ifTrue
	}
	return ifFalse
}
