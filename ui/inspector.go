package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// InspectorData holds all the data needed to render the inspector panel.
type InspectorData struct {
	Name      string
	HasPlayer bool

	PosX, PosY float32
	VelX, VelY float32
	AccX, AccY float32

	MaxSpeed float32 // per-tick displacement cap, used to scale the velocity bars
	OnGround bool
	Wind     bool
}

// inspectorSections describes the player panel.
var inspectorSections = []SectionDescriptor{
	{
		ID:    "position",
		Title: "Position",
		Fields: []FieldDescriptor{
			{ID: "x", Label: "X", Widget: WidgetText, Format: "%.1f", Getter: func(d any) float32 { return d.(InspectorData).PosX }},
			{ID: "y", Label: "Y", Widget: WidgetText, Format: "%.1f", Getter: func(d any) float32 { return d.(InspectorData).PosY }},
			{ID: "ground", Label: "Ground", Widget: WidgetText, TextGetter: func(d any) string { return yesNo(d.(InspectorData).OnGround) }},
		},
	},
	{
		ID:    "velocity",
		Title: "Velocity (per tick)",
		Fields: []FieldDescriptor{
			{ID: "vx", Label: "VX", Widget: WidgetCenteredBar, Getter: func(d any) float32 { return d.(InspectorData).VelX }},
			{ID: "vy", Label: "VY", Widget: WidgetCenteredBar, Getter: func(d any) float32 { return d.(InspectorData).VelY }},
		},
	},
	{
		ID:    "acceleration",
		Title: "Acceleration",
		Fields: []FieldDescriptor{
			{ID: "ax", Label: "AX", Widget: WidgetText, Format: "%+.2f", Getter: func(d any) float32 { return d.(InspectorData).AccX }},
			{ID: "ay", Label: "AY", Widget: WidgetText, Format: "%+.2f", Getter: func(d any) float32 { return d.(InspectorData).AccY }},
			{ID: "wind", Label: "Wind", Widget: WidgetText, TextGetter: func(d any) string { return yesNo(d.(InspectorData).Wind) }},
		},
	},
}

// Inspector renders the player inspection panel.
type Inspector struct {
	renderer *Renderer
	x, y     int32
	width    int32
}

// NewInspector creates a new inspector panel.
func NewInspector(x, y, width int32) *Inspector {
	return &Inspector{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
		width:    width,
	}
}

// SetPosition updates the inspector position.
func (ins *Inspector) SetPosition(x, y int32) {
	ins.x = x
	ins.y = y
}

// Draw renders the inspector panel for the given data.
func (ins *Inspector) Draw(data InspectorData) int32 {
	r := ins.renderer
	padding := r.Theme.Padding
	contentWidth := ins.width - padding*2

	sections := velocityRanged(data.MaxSpeed)

	panelHeight := padding*2 + r.Theme.LineHeight + 6
	if data.HasPlayer {
		for _, sd := range sections {
			panelHeight += r.SectionHeight(sd, data)
		}
	}
	r.DrawPanel(ins.x, ins.y, ins.width, panelHeight)

	y := ins.y + padding
	x := ins.x + padding

	if !data.HasPlayer {
		rl.DrawText("No player", x, y, 16, rl.Gray)
		return ins.y + panelHeight
	}

	rl.DrawText(fmt.Sprintf("Player: %s", data.Name), x, y, 16, rl.SkyBlue)
	y += r.Theme.LineHeight + 6

	for _, sd := range sections {
		y = r.DrawSection(x, y, sd, data, contentWidth)
	}

	return y
}

// velocityRanged returns the inspector sections with velocity bars scaled to maxSpeed.
func velocityRanged(maxSpeed float32) []SectionDescriptor {
	if maxSpeed <= 0 {
		maxSpeed = 1
	}
	sections := make([]SectionDescriptor, len(inspectorSections))
	copy(sections, inspectorSections)
	for i, sd := range sections {
		if sd.ID != "velocity" {
			continue
		}
		fields := make([]FieldDescriptor, len(sd.Fields))
		copy(fields, sd.Fields)
		for j := range fields {
			fields[j].Range = CenteredRange(maxSpeed)
		}
		sections[i].Fields = fields
	}
	return sections
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
