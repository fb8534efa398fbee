package core

import "testing"

func TestRectEdges(t *testing.T) {
	r := NewRect(2, 3, 10, 4)
	if r.Right() != 12 {
		t.Errorf("Right() = %d, expected 12", r.Right())
	}
	if r.Bottom() != 7 {
		t.Errorf("Bottom() = %d, expected 7", r.Bottom())
	}
}

func TestRectInner(t *testing.T) {
	tests := []struct {
		name string
		r    Rect
		want Rect
	}{
		{"normal", NewRect(0, 0, 10, 5), NewRect(1, 1, 8, 3)},
		{"too small", NewRect(4, 4, 1, 1), NewRect(5, 5, 0, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.Inner(); got != tt.want {
				t.Errorf("Inner() = %+v, expected %+v", got, tt.want)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(0, 0, 3, 3)
	if !r.Contains(2, 2) {
		t.Error("expected (2,2) inside")
	}
	if r.Contains(3, 0) {
		t.Error("expected (3,0) outside")
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, want int
	}{
		{5, 0, 10, 5},
		{-1, 0, 10, 0},
		{11, 0, 10, 10},
	}
	for _, tt := range tests {
		if got := Clamp(tt.val, tt.lo, tt.hi); got != tt.want {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tt.val, tt.lo, tt.hi, got, tt.want)
		}
	}
}

func TestActionString(t *testing.T) {
	if ActionPause.String() != "Pause" {
		t.Errorf("ActionPause.String() = %q", ActionPause.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("Action(99).String() = %q", Action(99).String())
	}
}
