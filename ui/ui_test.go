package ui

import (
	"testing"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/gust/systems"
)

func TestOverlayRegistryDefaults(t *testing.T) {
	reg := NewOverlayRegistry(true)

	if !reg.IsEnabled(OverlayVelocity) || !reg.IsEnabled(OverlayAcceleration) {
		t.Error("expected debug lines enabled")
	}
	if reg.IsEnabled(OverlayExtents) {
		t.Error("expected collision boxes disabled by default")
	}

	off := NewOverlayRegistry(false)
	if off.IsEnabled(OverlayVelocity) {
		t.Error("expected debug lines disabled")
	}

	cats := reg.Categories()
	if len(cats) != 2 || cats[0] != "debug" || cats[1] != "panels" {
		t.Errorf("unexpected categories %v", cats)
	}
}

func TestOverlayKeyToggle(t *testing.T) {
	reg := NewOverlayRegistry(false)

	id, state, ok := reg.HandleKeyPress(rl.KeyB)
	if !ok || id != OverlayExtents || !state {
		t.Fatalf("expected extents toggled on, got %s %v %v", id, state, ok)
	}
	if _, _, ok := reg.HandleKeyPress(rl.KeyZ); ok {
		t.Error("expected unbound key to be ignored")
	}

	reg.Toggle(OverlayExtents)
	if reg.IsEnabled(OverlayExtents) {
		t.Error("expected extents toggled off")
	}
}

func TestOverlayExclusive(t *testing.T) {
	reg := NewOverlayRegistry(false)
	reg.Register(OverlayDescriptor{ID: "a", Category: "test", Exclusive: []OverlayID{"b"}})
	reg.Register(OverlayDescriptor{ID: "b", Category: "test"})

	reg.SetEnabled("b", true)
	reg.SetEnabled("a", true)
	if reg.IsEnabled("b") {
		t.Error("expected b disabled when a is enabled")
	}
}

func TestCenteredFraction(t *testing.T) {
	tests := []struct {
		name          string
		value, lo, hi float32
		want          float32
	}{
		{"zero", 0, -5, 5, 0},
		{"half positive", 2.5, -5, 5, 0.5},
		{"half negative", -2.5, -5, 5, -0.5},
		{"clamped", 50, -5, 5, 1},
		{"clamped negative", -50, -5, 5, -1},
		{"degenerate range", 1, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CenteredFraction(tt.value, tt.lo, tt.hi); got != tt.want {
				t.Errorf("expected %f, got %f", tt.want, got)
			}
		})
	}
}

func TestFieldText(t *testing.T) {
	data := InspectorData{PosX: 12.345, OnGround: true}

	fx := FieldDescriptor{Format: "%.1f", Getter: func(d any) float32 { return d.(InspectorData).PosX }}
	if got := FieldText(fx, data); got != "12.3" {
		t.Errorf("expected 12.3, got %q", got)
	}

	fg := FieldDescriptor{TextGetter: func(d any) string { return yesNo(d.(InspectorData).OnGround) }}
	if got := FieldText(fg, data); got != "yes" {
		t.Errorf("expected yes, got %q", got)
	}
}

func TestVelocityRangedDoesNotMutateDescriptors(t *testing.T) {
	sections := velocityRanged(4)

	for _, sd := range sections {
		if sd.ID != "velocity" {
			continue
		}
		for _, fd := range sd.Fields {
			if fd.Range.Max != 4 || fd.Range.Min != -4 {
				t.Errorf("expected range [-4, 4], got %+v", fd.Range)
			}
		}
	}
	for _, sd := range inspectorSections {
		for _, fd := range sd.Fields {
			if fd.Range.Max != 0 {
				t.Errorf("expected shared descriptors untouched, got %+v", fd.Range)
			}
		}
	}
}

func TestSectionHeight(t *testing.T) {
	r := NewRenderer()
	sd := SectionDescriptor{
		Title: "T",
		Fields: []FieldDescriptor{
			{Widget: WidgetText},
			{Widget: WidgetCenteredBar},
			{Widget: WidgetText, Visible: func(any) bool { return false }},
		},
	}

	lh := r.Theme.LineHeight
	want := lh + lh + (lh + 2) + 4
	if got := r.SectionHeight(sd, nil); got != want {
		t.Errorf("expected %d, got %d", want, got)
	}
}

func TestPerfGroupsFollowRegistryCategories(t *testing.T) {
	reg := systems.NewSystemRegistry()
	data := PerfPanelData{
		SystemTimes: map[string]time.Duration{
			"boundary":  1 * time.Microsecond,
			"gravity":   2 * time.Microsecond,
			"integrate": 1 * time.Microsecond,
		},
		Total:    4 * time.Microsecond,
		Registry: reg,
	}

	groups := PerfGroups(data)
	if len(groups) != 2 {
		t.Fatalf("expected forces and motion groups, got %+v", groups)
	}
	if groups[0].Category != "forces" || groups[1].Category != "motion" {
		t.Errorf("expected categories in tick order, got %q, %q", groups[0].Category, groups[1].Category)
	}

	forces, motion := groups[0].Lines, groups[1].Lines
	if len(forces) != 1 || forces[0].Name != "Gravity" {
		t.Errorf("expected only Gravity under forces, got %+v", forces)
	}
	if len(motion) != 2 || motion[0].Name != "Integrate" || motion[1].Name != "Boundary" {
		t.Errorf("expected Integrate then Boundary under motion, got %+v", motion)
	}
	if forces[0].Pct != 50 {
		t.Errorf("expected 50%%, got %f", forces[0].Pct)
	}
}

func TestPerfGroupsWithoutRegistry(t *testing.T) {
	data := PerfPanelData{
		SystemTimes: map[string]time.Duration{
			"wind":    1 * time.Microsecond,
			"gravity": 1 * time.Microsecond,
		},
		Total: 2 * time.Microsecond,
	}

	groups := PerfGroups(data)
	if len(groups) != 1 || groups[0].Category != "" {
		t.Fatalf("expected one unnamed group, got %+v", groups)
	}
	lines := groups[0].Lines
	if len(lines) != 2 || lines[0].Name != "gravity" || lines[1].Name != "wind" {
		t.Errorf("expected IDs sorted, got %+v", lines)
	}

	if got := PerfGroups(PerfPanelData{}); got != nil {
		t.Errorf("expected no groups for empty timings, got %+v", got)
	}
}

func TestCategoryLabel(t *testing.T) {
	tests := map[string]string{
		"debug":    "Debug",
		"forces":   "Forces",
		"motion":   "Motion",
		"internal": "Internal",
		"other":    "other",
	}
	for in, want := range tests {
		if got := categoryLabel(in); got != want {
			t.Errorf("categoryLabel(%q) = %q, want %q", in, got, want)
		}
	}
}
