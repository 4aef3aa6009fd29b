package utils

import "testing"

// TestAxisX verifies horizontal axis derivation from held keys.
func TestAxisX(t *testing.T) {
	cases := []struct {
		name        string
		left, right bool
		want        float64
	}{
		{"none", false, false, 0},
		{"left", true, false, -1},
		{"right", false, true, 1},
		{"both cancel", true, true, 0},
	}
	for _, tc := range cases {
		s := &InputState{Left: tc.left, Right: tc.right}
		if got := s.AxisX(); got != tc.want {
			t.Errorf("%s: AxisX() = %v, want %v", tc.name, got, tc.want)
		}
	}
}

// TestAxisY verifies vertical axis derivation (screen coordinates, Y down).
func TestAxisY(t *testing.T) {
	cases := []struct {
		name     string
		up, down bool
		want     float64
	}{
		{"none", false, false, 0},
		{"up", true, false, -1},
		{"down", false, true, 1},
		{"both cancel", true, true, 0},
	}
	for _, tc := range cases {
		s := &InputState{Up: tc.up, Down: tc.down}
		if got := s.AxisY(); got != tc.want {
			t.Errorf("%s: AxisY() = %v, want %v", tc.name, got, tc.want)
		}
	}
}
