package ui

import (
	"fmt"
	"sort"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/gust/systems"
)

// HUDData holds all the data needed to render the main HUD.
type HUDData struct {
	Title    string
	State    string
	Bodies   int
	Tick     int32
	Restarts int
	FPS      int32
	Wind     bool
}

// HUD renders the main heads-up display.
type HUD struct {
	renderer *Renderer
}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{
		renderer: NewRenderer(),
	}
}

// Draw renders the HUD.
func (h *HUD) Draw(data HUDData) {
	rl.DrawText(data.Title, 10, 10, 20, rl.White)

	rl.DrawText(
		fmt.Sprintf("State: %s | Bodies: %d | Restarts: %d", data.State, data.Bodies, data.Restarts),
		10, 35, 16, rl.LightGray,
	)

	rl.DrawText(
		fmt.Sprintf("Tick: %d | FPS: %d", data.Tick, data.FPS),
		10, 55, 16, rl.LightGray,
	)

	if data.Wind {
		rl.DrawText("WIND", 10, 75, 16, rl.Yellow)
	}
}

// DrawControls renders the control legend at the bottom of the screen.
func (h *HUD) DrawControls(screenHeight int32, controls string) {
	rl.DrawText(controls, 10, screenHeight-25, 14, rl.Gray)
}

// PerfPanelData holds performance metrics for display.
type PerfPanelData struct {
	SystemTimes map[string]time.Duration
	Total       time.Duration
	Registry    *systems.SystemRegistry
}

// PerfPanel renders the system performance panel.
type PerfPanel struct {
	renderer *Renderer
	x, y     int32
}

// NewPerfPanel creates a new performance panel.
func NewPerfPanel(x, y int32) *PerfPanel {
	return &PerfPanel{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
	}
}

// SetPosition updates the panel position.
func (p *PerfPanel) SetPosition(x, y int32) {
	p.x = x
	p.y = y
}

// Draw renders the performance panel, one block per registry category.
func (p *PerfPanel) Draw(data PerfPanelData) {
	x := p.x
	y := p.y

	rl.DrawText("System Performance", x, y, 16, rl.White)
	y += 20

	rl.DrawText(fmt.Sprintf("Total: %s", data.Total.Round(time.Microsecond)), x, y, 14, rl.Yellow)
	y += 16

	for _, group := range PerfGroups(data) {
		if group.Category != "" {
			y += 4
			rl.DrawText(categoryLabel(group.Category), x, y, 12, rl.Gray)
			y += 14
		}
		for _, line := range group.Lines {
			color := rl.LightGray
			if line.Pct > 40 {
				color = rl.Red
			} else if line.Pct > 20 {
				color = rl.Orange
			}

			rl.DrawText(
				fmt.Sprintf("  %-10s %8s %5.1f%%", line.Name, line.Avg.Round(time.Microsecond), line.Pct),
				x, y, 12, color,
			)
			y += 14
		}
	}
}

// PerfLine is one row of the performance panel.
type PerfLine struct {
	Name string
	Avg  time.Duration
	Pct  float64
}

// PerfGroup is the rows of one system category.
type PerfGroup struct {
	Category string
	Lines    []PerfLine
}

// PerfGroups groups timings by registry category in registration order and
// resolves display names. Systems with no samples and empty categories are
// skipped. Without a registry all timings land in one unnamed group, sorted by ID.
func PerfGroups(data PerfPanelData) []PerfGroup {
	if data.Registry == nil {
		ids := make([]string, 0, len(data.SystemTimes))
		for id := range data.SystemTimes {
			ids = append(ids, id)
		}
		sort.Strings(ids)

		group := PerfGroup{}
		for _, id := range ids {
			group.Lines = append(group.Lines, perfLine(id, data.SystemTimes[id], data.Total))
		}
		if len(group.Lines) == 0 {
			return nil
		}
		return []PerfGroup{group}
	}

	var groups []PerfGroup
	for _, cat := range data.Registry.Categories() {
		group := PerfGroup{Category: cat}
		for _, info := range data.Registry.ByCategory(cat) {
			avg, ok := data.SystemTimes[info.ID]
			if !ok {
				continue
			}
			group.Lines = append(group.Lines, perfLine(info.Name, avg, data.Total))
		}
		if len(group.Lines) > 0 {
			groups = append(groups, group)
		}
	}
	return groups
}

func perfLine(name string, avg, total time.Duration) PerfLine {
	pct := float64(0)
	if total > 0 {
		pct = float64(avg) / float64(total) * 100
	}
	return PerfLine{Name: name, Avg: avg, Pct: pct}
}
