package core

import (
	"image/color"
	"math"
	"testing"
)

func TestRectEdges(t *testing.T) {
	r := NewRect(2, 3, 10, 4)
	if r.Right() != 12 || r.Bottom() != 7 {
		t.Errorf("edges = %d,%d, expected 12,7", r.Right(), r.Bottom())
	}
}

func TestMax(t *testing.T) {
	if Max(3, 7) != 7 || Max(7, 3) != 7 || Max(-1, -2) != -1 {
		t.Error("Max returned the smaller value")
	}
}

func TestBoxAround(t *testing.T) {
	b := BoxAround(30, 100, 16, 16)
	if b.Left != 22 || b.Right != 38 || b.Top != 92 || b.Bottom != 108 {
		t.Errorf("BoxAround() = %+v, expected {22 92 38 108}", b)
	}
}

func TestBoxOverlapsX(t *testing.T) {
	actor := BoxAround(30, 0, 16, 16) // spans 22..38

	tests := []struct {
		name        string
		left, right float64
		expected    bool
	}{
		{"pipe covering lane", 20, 60, true},
		{"pipe ending at actor left edge", 0, 22, false},
		{"pipe starting at actor right edge", 38, 78, false},
		{"pipe barely inside", 37.5, 77.5, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			pipe := Box{Left: tc.left, Right: tc.right, Top: 0, Bottom: 100}
			if got := actor.OverlapsX(pipe); got != tc.expected {
				t.Errorf("OverlapsX() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestIsFinite(t *testing.T) {
	if !IsFinite(1.5) {
		t.Error("1.5 should be finite")
	}
	if IsFinite(math.NaN()) {
		t.Error("NaN should not be finite")
	}
	if IsFinite(math.Inf(1)) || IsFinite(math.Inf(-1)) {
		t.Error("Inf should not be finite")
	}
}

func TestRoundPx(t *testing.T) {
	tests := []struct {
		in       float64
		expected int
	}{
		{10.4, 10},
		{10.5, 11},
		{-0.4, 0},
		{-2.5, -3},
	}

	for _, tc := range tests {
		if got := RoundPx(tc.in); got != tc.expected {
			t.Errorf("RoundPx(%v) = %d, expected %d", tc.in, got, tc.expected)
		}
	}
}

func TestDistance(t *testing.T) {
	if d := Distance(0, 0, 3, 4); d != 5 {
		t.Errorf("Distance() = %v, expected 5", d)
	}
}

func TestNearestColor(t *testing.T) {
	tests := []struct {
		name     string
		in       color.RGBA
		expected Color
	}{
		{"pipe green", color.RGBA{0x22, 0xc5, 0x5e, 0xff}, ColorGreen},
		{"coin gold", color.RGBA{0xff, 0xd7, 0x00, 0xff}, ColorYellow},
		{"white", color.RGBA{0xff, 0xff, 0xff, 0xff}, ColorBrightWhite},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := NearestColor(tc.in); got != tc.expected {
				t.Errorf("NearestColor(%v) = %d, expected %d", tc.in, got, tc.expected)
			}
		})
	}
}
