package vmath

import (
	"math"
	"testing"
)

const eps = 1e-9

func approxEq(a, b float64) bool {
	return math.Abs(a-b) < eps
}

func TestAddSubScale(t *testing.T) {
	a := V(1, 2)
	b := V(3, -4)

	if got := a.Add(b); got != V(4, -2) {
		t.Errorf("Add: expected (4, -2), got %v", got)
	}
	if got := a.Sub(b); got != V(-2, 6) {
		t.Errorf("Sub: expected (-2, 6), got %v", got)
	}
	if got := b.Scale(0.5); got != V(1.5, -2) {
		t.Errorf("Scale: expected (1.5, -2), got %v", got)
	}
	if got := a.Neg(); got != V(-1, -2) {
		t.Errorf("Neg: expected (-1, -2), got %v", got)
	}
}

func TestLength(t *testing.T) {
	v := V(3, 4)
	if !approxEq(v.Length(), 5) {
		t.Errorf("expected length 5, got %f", v.Length())
	}
	if !approxEq(v.LengthSquared(), 25) {
		t.Errorf("expected length squared 25, got %f", v.LengthSquared())
	}
}

func TestNormalizeOrZero(t *testing.T) {
	tests := []struct {
		name string
		in   Vec2
		want Vec2
	}{
		{"zero stays zero", Zero, Zero},
		{"axis", V(0, -7), V(0, -1)},
		{"diagonal", V(3, 4), V(0.6, 0.8)},
		{"infinite collapses", V(math.Inf(1), 0), Zero},
		{"nan collapses", V(math.NaN(), 1), Zero},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.in.NormalizeOrZero()
			if !got.IsFinite() {
				t.Fatalf("expected finite result, got %v", got)
			}
			if !approxEq(got.X, tc.want.X) || !approxEq(got.Y, tc.want.Y) {
				t.Errorf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestClampLength(t *testing.T) {
	tests := []struct {
		name    string
		in      Vec2
		max     float64
		wantLen float64
	}{
		{"under cap unchanged", V(0, -10), 300, 10},
		{"exactly at cap", V(300, 0), 300, 300},
		{"over cap scaled", V(600, 800), 300, 300},
		{"zero cap", V(1, 1), 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.in.ClampLength(tc.max)
			if !approxEq(got.Length(), tc.wantLen) {
				t.Errorf("expected length %f, got %f", tc.wantLen, got.Length())
			}
			if tc.wantLen > 0 {
				// direction preserved
				d := got.NormalizeOrZero().Sub(tc.in.NormalizeOrZero())
				if d.Length() > 1e-6 {
					t.Errorf("direction changed: %v -> %v", tc.in, got)
				}
			}
		})
	}

	if got := V(0, -10).ClampLength(300); got != V(0, -10) {
		t.Errorf("expected vector under the cap to be returned as-is, got %v", got)
	}
}

func TestLerp(t *testing.T) {
	if got := Lerp(0, 10, 0.25); !approxEq(got, 2.5) {
		t.Errorf("expected 2.5, got %f", got)
	}
	if got := Lerp(4, 8, 1); !approxEq(got, 8) {
		t.Errorf("expected 8, got %f", got)
	}
}
