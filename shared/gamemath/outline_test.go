package gamemath

import (
	"testing"

	"github.com/yohamta/donburi/features/math"
)

func TestCentroid(t *testing.T) {
	if c := Centroid(nil); !c.IsZero() {
		t.Errorf("empty centroid = %+v", c)
	}
	c := Centroid([]math.Vec2{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}, {X: 0, Y: 4}})
	if !c.Equal(math.NewVec2(2, 2)) {
		t.Errorf("square centroid = %+v, want (2, 2)", c)
	}
}

func TestExpand(t *testing.T) {
	diamond := []math.Vec2{{X: -1, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: -1}}
	out := Expand(diamond, 2)
	if len(out) != len(diamond) {
		t.Fatalf("expected %d points, got %d", len(diamond), len(out))
	}
	for i, p := range out {
		if !near(p.Magnitude(), 3) {
			t.Errorf("point %d at distance %v, want 3", i, p.Magnitude())
		}
	}
	// Input is untouched
	if !diamond[0].Equal(math.NewVec2(-1, 0)) {
		t.Errorf("input modified: %+v", diamond[0])
	}
}

func TestExpand_PointOnCentroid(t *testing.T) {
	out := Expand([]math.Vec2{{X: 1, Y: 1}}, 5)
	if !out[0].Equal(math.NewVec2(1, 1)) {
		t.Errorf("point on centroid moved to %+v", out[0])
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		v, want float64
	}{
		{-1, 0},
		{0.5, 0.5},
		{2, 1},
	}
	for _, tt := range tests {
		if got := Clamp(tt.v, 0, 1); got != tt.want {
			t.Errorf("Clamp(%v) = %v, want %v", tt.v, got, tt.want)
		}
	}
}
