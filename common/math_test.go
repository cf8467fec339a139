package common

import (
	"testing"

	"github.com/chewxy/math32"
)

func TestWrapAngle(t *testing.T) {
	cases := []struct {
		in, want float32
	}{
		{0, 0},
		{math32.Pi, math32.Pi},
		{-math32.Pi, math32.Pi},
		{3 * math32.Pi / 2, -math32.Pi / 2},
		{-5 * math32.Pi / 2, -math32.Pi / 2},
	}
	for _, c := range cases {
		if got := WrapAngle(c.in); math32.Abs(got-c.want) > 1e-5 {
			t.Fatalf("WrapAngle(%v): expected %v, got %v", c.in, c.want, got)
		}
	}
}

func TestLerpAngleTakesShortArc(t *testing.T) {
	a := float32(3.0)
	b := float32(-3.0)
	got := LerpAngle(a, b, 0.5)
	if math32.Abs(math32.Abs(got)-math32.Pi) > 1e-4 {
		t.Fatalf("expected the midpoint across pi, got %v", got)
	}
	if got := Lerp(0, 10, 0.25); got != 2.5 {
		t.Fatalf("Lerp: expected 2.5, got %v", got)
	}
}
