package systems

import (
	"reflect"
	"testing"

	"github.com/pthm-cable/gust/telemetry"
)

func TestRegistryCategories(t *testing.T) {
	reg := NewSystemRegistry()

	want := []string{"forces", "motion", "internal"}
	if got := reg.Categories(); !reflect.DeepEqual(got, want) {
		t.Errorf("expected categories %v, got %v", want, got)
	}
}

func TestRegistryByCategory(t *testing.T) {
	reg := NewSystemRegistry()

	tests := []struct {
		category string
		ids      []string
	}{
		{"forces", []string{"gravity", "wind", "friction", "drag", "steering"}},
		{"motion", []string{"integrate", "boundary"}},
		{"internal", []string{"telemetry"}},
		{"missing", nil},
	}

	for _, tc := range tests {
		t.Run(tc.category, func(t *testing.T) {
			var ids []string
			for _, info := range reg.ByCategory(tc.category) {
				ids = append(ids, info.ID)
			}
			if !reflect.DeepEqual(ids, tc.ids) {
				t.Errorf("expected %v, got %v", tc.ids, ids)
			}
		})
	}
}

func TestRegistryCoversPerfPhases(t *testing.T) {
	reg := NewSystemRegistry()

	registered := make(map[string]bool)
	for _, cat := range reg.Categories() {
		for _, info := range reg.ByCategory(cat) {
			registered[info.ID] = true
		}
	}
	for _, phase := range telemetry.AllPhases {
		if !registered[phase] {
			t.Errorf("perf phase %q has no registry entry", phase)
		}
	}
}
