package core

import (
	"math"
	"testing"
)

func TestRectFContainsStrict(t *testing.T) {
	r := RectF{X: 30, Y: 30, W: 75, H: 20}

	tests := []struct {
		name     string
		p        Vec
		expected bool
	}{
		{"center", V(67, 40), true},
		{"left edge excluded", V(30, 40), false},
		{"right edge excluded", V(105, 40), false},
		{"top edge excluded", V(50, 30), false},
		{"just inside bottom", V(50, 49.9), true},
		{"outside", V(10, 10), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.ContainsStrict(tc.p); got != tc.expected {
				t.Errorf("ContainsStrict(%v) = %v, expected %v", tc.p, got, tc.expected)
			}
		})
	}
}

func TestVecWithLen(t *testing.T) {
	v := V(3, 4).WithLen(10)
	if math.Abs(v.Len()-10) > 1e-9 {
		t.Errorf("WithLen(10) length = %f, expected 10", v.Len())
	}
	if math.Abs(v.X-6) > 1e-9 || math.Abs(v.Y-8) > 1e-9 {
		t.Errorf("WithLen(10) = %v, expected (6, 8)", v)
	}

	zero := Vec{}.WithLen(5)
	if zero != (Vec{}) {
		t.Errorf("zero vector should stay zero, got %v", zero)
	}
}

func TestVecStepToward(t *testing.T) {
	start := V(0, 0)
	target := V(10, 0)

	got := start.StepToward(target, 2)
	if got != V(2, 0) {
		t.Errorf("StepToward = %v, expected (2, 0)", got)
	}

	if same := target.StepToward(target, 2); same != target {
		t.Errorf("StepToward onto itself = %v, expected %v", same, target)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}

	if got := ClampF(-1.5, 0, 1); got != 0 {
		t.Errorf("ClampF(-1.5, 0, 1) = %f, expected 0", got)
	}
}
