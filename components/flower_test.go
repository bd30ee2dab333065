package components

import (
	"math"
	"testing"

	math2 "github.com/yohamta/donburi/features/math"
)

func TestFlower_GrowsToTarget(t *testing.T) {
	f := &FlowerData{TargetScale: 0.73, GrowthRate: 0.03}
	for i := 0; i < 100; i++ {
		f.Advance()
		if f.Scale > f.TargetScale {
			t.Fatalf("scale %v overshot target %v", f.Scale, f.TargetScale)
		}
	}
	if f.Scale != f.TargetScale {
		t.Errorf("scale = %v, want %v", f.Scale, f.TargetScale)
	}
	if f.Removed {
		t.Error("growing flower marked removed")
	}
}

func TestFlower_SinksToExactlyZero(t *testing.T) {
	f := &FlowerData{Scale: 0.77, TargetScale: 0.77, GrowthRate: 0.013, Sinking: true}
	for i := 0; i < 1000 && !f.Removed; i++ {
		f.Advance()
	}
	if !f.Removed {
		t.Fatal("sinking flower never removed")
	}
	if f.Scale != 0 {
		t.Errorf("scale = %v, want 0", f.Scale)
	}

	// Removal latches
	f.Sinking = false
	f.Advance()
	if !f.Removed {
		t.Error("removed flag cleared")
	}
}

func TestFlower_SwayBounded(t *testing.T) {
	f := &FlowerData{Anchor: math2.Vec2{X: 321}}
	for ms := 0.0; ms < 20000; ms += 97 {
		if s := f.Sway(ms); math.Abs(s) > 0.05+1e-12 {
			t.Fatalf("sway %v at %vms exceeds amplitude", s, ms)
		}
	}
}

func TestFlower_TransformPlacesOriginAtAnchor(t *testing.T) {
	f := &FlowerData{Anchor: math2.Vec2{X: 100, Y: 100}, Scale: 0.5, Rotation: 0.2}
	g := f.Transform(1234)
	x, y := g.Apply(0, 0)
	if math.Abs(x-100) > 1e-9 || math.Abs(y-100) > 1e-9 {
		t.Errorf("origin maps to (%v, %v), want (100, 100)", x, y)
	}
}

func TestPetal_Outline(t *testing.T) {
	p := Petal{Length: 50, Width: 40, ControlDist1: 0.8, ControlDist2: 0.6}
	pts := p.Outline(8)
	if len(pts) != 16 {
		t.Fatalf("expected 16 points, got %d", len(pts))
	}
	if pts[0] != (math2.Vec2{}) {
		t.Errorf("outline starts at %+v, want origin", pts[0])
	}
	tip := pts[8]
	if math.Abs(tip.X) > 1e-9 || math.Abs(tip.Y-50) > 1e-9 {
		t.Errorf("tip = %+v, want (0, 50)", tip)
	}
	for i, pt := range pts {
		if pt.Y < -1e-9 || pt.Y > 50+1e-9 {
			t.Errorf("point %d outside petal length: %+v", i, pt)
		}
	}
}
